package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/iotcore-tools/iotctl/pkg/api"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCommandErrorHandling(t *testing.T) {
	type args struct {
		cmd *cobra.Command
	}
	tests := []struct {
		name         string
		args         args
		want         ExitCode
		wantedOutput string
	}{
		{
			name: "test no error",
			args: args{
				cmd: &cobra.Command{RunE: func(cmd *cobra.Command, args []string) error { return nil }},
			},
			want: ExitOK,
		},
		{
			name: "no credentials",
			args: args{
				cmd: &cobra.Command{RunE: func(cmd *cobra.Command, args []string) error {
					return fmt.Errorf("%w: google: could not find default credentials", ErrNoCredentials)
				}},
			},
			want: ExitAuth,
			wantedOutput: `2 errors occurred:
	* no application default credentials found: google: could not find default credentials
	* Set GOOGLE_APPLICATION_CREDENTIALS to the path of your JSON credentials


`,
		},
		{
			name: "context DeadlineExceeded error",
			args: args{
				cmd: &cobra.Command{RunE: func(cmd *cobra.Command, args []string) error {
					return context.DeadlineExceeded
				}},
			},
			want: ExitError,
			wantedOutput: `1 error occurred:
	* context deadline exceeded


`,
		},
		{
			name: "test wrapped api error",
			args: args{
				cmd: &cobra.Command{RunE: func(cmd *cobra.Command, args []string) error {
					response := &http.Response{
						StatusCode: http.StatusForbidden,
						Request: &http.Request{
							Method: http.MethodGet,
							URL: &url.URL{
								Scheme: "https",
								Host:   "cloudiot.googleapis.com",
								Path:   "v1/projects/p/locations/l/registries",
							},
							Close: true,
						},
					}
					response.Body = io.NopCloser(strings.NewReader(`{
                        "error": {
                            "code": 403,
                            "message": "Permission denied on resource project p.",
                            "status": "PERMISSION_DENIED"
                        }
                    }`))
					ae := api.HTTPErrorResponse(response, errors.New("403 Forbidden"))
					return fmt.Errorf("list registries %w", ae)
				}},
			},
			want: ExitError,
			wantedOutput: `4 errors occurred:
	* The caller is missing a Cloud IoT permission on this project or registry
	* HTTP GET https://cloudiot.googleapis.com/v1/projects/p/locations/l/registries
	* Permission denied on resource project p.
	* list registries HTTP 403 - 403 Forbidden


`,
		},
		{
			name: "unauthorized api error",
			args: args{
				cmd: &cobra.Command{Use: "iotctl", RunE: func(cmd *cobra.Command, args []string) error {
					response := &http.Response{StatusCode: http.StatusUnauthorized}
					response.Body = io.NopCloser(strings.NewReader(`{"error": {"code": 401, "message": "Request had invalid authentication credentials.", "status": "UNAUTHENTICATED"}}`))
					return api.HTTPErrorResponse(response, errors.New("401 Unauthorized"))
				}},
			},
			want: ExitAuth,
			wantedOutput: `3 errors occurred:
	* Run 'gcloud auth application-default login' or set GOOGLE_APPLICATION_CREDENTIALS before running 'iotctl'
	* Request had invalid authentication credentials.
	* HTTP 401 - 401 Unauthorized


`,
		},
		{
			name: "http 502 no json response body",
			args: args{
				cmd: &cobra.Command{RunE: func(cmd *cobra.Command, args []string) error {
					response := &http.Response{StatusCode: http.StatusBadGateway}
					response.Body = io.NopCloser(strings.NewReader(`<html>
                    <head>
                      <title>502 Bad Gateway</title>
                    </head>
                    </html>`))
					return api.HTTPErrorResponse(response, errors.New("502 Bad Gateway"))
				}},
			},
			want: ExitError,
			wantedOutput: `1 error occurred:
	* HTTP 502 - 502 Bad Gateway


`,
		},
		{
			name: "wrapped multierror",
			args: args{
				cmd: &cobra.Command{RunE: func(cmd *cobra.Command, args []string) error {
					var result error
					result = multierror.Append(result, errors.New("golang"))
					result = multierror.Append(result, errors.New("python"))

					return fmt.Errorf("root message %w", result)
				}},
			},
			want: ExitError,
			wantedOutput: `2 errors occurred:
	* golang
	* python


`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			cmd := tt.args.cmd
			cmd.SetArgs([]string{})
			cmd.SetOut(io.Discard)
			cmd.SilenceErrors = true
			cmd.SetErr(stdout)
			if got := ExecuteCommand(tt.args.cmd); got != tt.want {
				t.Errorf("executeCommand() = %+v, want %+v", got, tt.want)
			}

			if diff := cmp.Diff(tt.wantedOutput, stdout.String()); diff != "" {
				t.Fatalf("Diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUsageOnlyOnFlagError(t *testing.T) {
	tests := []struct {
		name      string
		cmd       func() *cobra.Command
		args      []string
		wantUsage bool
	}{
		{
			name: "too many arguments",
			cmd: func() *cobra.Command {
				return &cobra.Command{
					Use:  "list_registries",
					Args: MaximumNArgs(1),
					RunE: func(cmd *cobra.Command, args []string) error { return nil },
				}
			},
			args:      []string{"us-central1", "extra"},
			wantUsage: true,
		},
		{
			name: "unknown flag",
			cmd: func() *cobra.Command {
				c := &cobra.Command{
					Use:  "list_registries",
					RunE: func(cmd *cobra.Command, args []string) error { return nil },
				}
				c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
					return FlagErrorWrap(err)
				})
				return c
			},
			args:      []string{"--nope"},
			wantUsage: true,
		},
		{
			name: "api error mentioning flag and command",
			cmd: func() *cobra.Command {
				return &cobra.Command{
					Use: "create_registry",
					RunE: func(cmd *cobra.Command, args []string) error {
						response := &http.Response{StatusCode: http.StatusBadRequest}
						response.Body = io.NopCloser(strings.NewReader(`{"error": {"code": 400, "message": "Invalid value for flag in command request.", "status": "INVALID_ARGUMENT"}}`))
						return api.HTTPErrorResponse(response, errors.New("400 Bad Request"))
					},
				}
			},
			wantUsage: false,
		},
		{
			name: "plain error mentioning arg(s)",
			cmd: func() *cobra.Command {
				return &cobra.Command{
					Use: "get_device",
					RunE: func(cmd *cobra.Command, args []string) error {
						return errors.New("device command rejected 2 arg(s)")
					},
				}
			},
			wantUsage: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			cmd := tt.cmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(stderr)
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			assert.Equal(t, ExitError, ExecuteCommand(cmd))
			if tt.wantUsage {
				assert.Contains(t, stderr.String(), "Usage:")
			} else {
				assert.NotContains(t, stderr.String(), "Usage:")
			}
		})
	}
}

func TestFlagErrorWrap(t *testing.T) {
	assert.NoError(t, FlagErrorWrap(nil))

	err := FlagErrorWrap(context.Canceled)
	var flagErr *FlagError
	assert.ErrorAs(t, err, &flagErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, context.Canceled.Error(), err.Error())
}
