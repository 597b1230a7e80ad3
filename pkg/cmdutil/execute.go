package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/iotcore-tools/iotctl/pkg/api"
	"github.com/spf13/cobra"
)

type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
	ExitAuth  ExitCode = 4
)

var errorColor = color.New(color.FgRed)

func permissionError(cmd *cobra.Command, err *api.Error) error {
	var result *multierror.Error
	switch err.StatusCode {
	case http.StatusForbidden:
		result = multierror.Append(result, errors.New("The caller is missing a Cloud IoT permission on this project or registry"))
	case http.StatusUnauthorized:
		result = multierror.Append(result, fmt.Errorf("Run 'gcloud auth application-default login' or set GOOGLE_APPLICATION_CREDENTIALS before running '%s'", caller(cmd)))
	default:
		return nil
	}
	if err.RequestURL != nil {
		result = multierror.Append(result, errors.New(*err.RequestURL))
	}
	return result
}

func caller(cmd *cobra.Command) string {
	if cmd != nil {
		return cmd.Root().Name()
	}
	return GetCaller()
}

func printError(w io.Writer, err error) {
	if IsTTY(w) {
		errorColor.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, err)
}

func ExecuteCommand(cmd *cobra.Command) ExitCode {
	cmd, err := cmd.ExecuteC()
	if err == nil {
		return ExitOK
	}

	var result *multierror.Error

	// api errors, HTTP 400-599, are resolved into their nested messages
	// so they can be listed one per line.
	var ae *api.Error
	if errors.As(err, &ae) {
		result = multierror.Append(result, permissionError(cmd, ae))
		for _, e := range ae.Errors {
			result = multierror.Append(result, e)
		}
	}
	// flatten one level of nested multierrors, otherwise keep the error as is
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			result = multierror.Append(result, e)
		}
	} else {
		result = multierror.Append(result, err)
	}

	if errors.Is(err, ErrNoCredentials) {
		result = multierror.Append(result, errors.New("Set GOOGLE_APPLICATION_CREDENTIALS to the path of your JSON credentials"))
	}

	printError(cmd.ErrOrStderr(), result.ErrorOrNil())

	if errors.Is(err, ErrNoCredentials) || (ae != nil && ae.StatusCode == http.StatusUnauthorized) {
		return ExitAuth
	}
	// only show usage prompt if we get invalid args / flags
	var flagErr *FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintln(cmd.ErrOrStderr())
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	}
	return ExitError
}
