package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const environmentHelpLong = `
All commands read the project from GOOGLE_CLOUD_PROJECT and authenticate with
Google application default credentials.

The IOTCTL_ environment variables take precedence over the values in the config file,
The default path to the config file is "$XDG_CONFIG_HOME/iotctl/config.json" or "$HOME/.config/iotctl/config.json" on UNIX

GOOGLE_CLOUD_PROJECT: ID of the Google Cloud project owning the registries. Can be overridden with --project.

GOOGLE_APPLICATION_CREDENTIALS: path to a service account JSON key file. When unset the credentials
    of 'gcloud auth application-default login' or the metadata server are used.

IOTCTL_CREDENTIALS: path to a service account JSON key file used instead of application default credentials.

IOTCTL_ENDPOINT: base URL of the Cloud IoT API, default to https://cloudiot.googleapis.com/
    Example usage:
        IOTCTL_ENDPOINT=http://localhost:8085/ \
        GOOGLE_CLOUD_PROJECT=my-project \
        iotctl list_registries us-central1

IOTCTL_CONFIG_DIR: the directory iotctl reads config.json from. Default:
"$XDG_CONFIG_HOME/iotctl" or "$HOME/.config/iotctl" on UNIX.

IOTCTL_DEBUG: same as --debug, log and dump every HTTP request and response.

IOTCTL_LOG_LEVEL: application log level, default to ERROR

IOTCTL_LOG_FILE: append JSON formatted log entries to this file.

HTTPS_PROXY: HTTPS Proxy for the client
    Example:  HTTPS_PROXY="http://proxyIp:proxyPort"

`

func NewHelpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "environment",
		Short:  "Environment variables that can be used with iotctl",
		Long:   environmentHelpLong,
		Hidden: true,
	}
	cmd.SetHelpFunc(func(command *cobra.Command, strings []string) {
		fmt.Fprintln(command.OutOrStdout(), command.Long)
	})
	return cmd
}
