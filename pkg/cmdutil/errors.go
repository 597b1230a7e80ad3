package cmdutil

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNoCredentials signals that no application default credentials could be found
var ErrNoCredentials = errors.New("no application default credentials found")

// FlagError marks a failure caused by invalid command line flags or arguments.
// Only errors of this type make ExecuteCommand print the usage text.
type FlagError struct {
	Err error
}

func (fe *FlagError) Error() string {
	return fe.Err.Error()
}

func (fe *FlagError) Unwrap() error {
	return fe.Err
}

// FlagErrorWrap returns err wrapped in a FlagError, or nil.
func FlagErrorWrap(err error) error {
	if err == nil {
		return nil
	}
	return &FlagError{Err: err}
}

// FlagErrorArgs wraps a positional argument validator so its failures are reported as FlagError.
func FlagErrorArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return FlagErrorWrap(fn(cmd, args))
	}
}

// MaximumNArgs is cobra.MaximumNArgs reporting its failure as a FlagError.
func MaximumNArgs(n int) cobra.PositionalArgs {
	return FlagErrorArgs(cobra.MaximumNArgs(n))
}
