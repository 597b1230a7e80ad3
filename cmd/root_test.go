package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/configuration"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(configuration.ConfigDirEnv, dir)
	t.Setenv(configuration.ProjectEnv, "")
	for _, key := range []string{"IOTCTL_CREDENTIALS", "IOTCTL_ENDPOINT", "IOTCTL_DEBUG", "IOTCTL_LOG_LEVEL", "IOTCTL_LOG_FILE"} {
		t.Setenv(key, "")
	}
	return dir
}

func TestUsage(t *testing.T) {
	commandLines := []string{
		`create_registry <location> <registry_id> <pubsub_topic> +Create a device registry\.`,
		`delete_registry <location> <registry_id> +Delete a device registry\.`,
		`get_registry <location> <registry_id> +Get the provided device registry\.`,
		`get_iam_policy <location> <registry_id> +Get the IAM policy for a registry\.`,
		`list_registries <location> +List the device registries in the provided region\.`,
		`set_iam_policy <location> <registry_id> <member> <role> +Set the IAM policy for a registry to a single member / role\.`,
		`create_es_device <location> <registry_id> <device_id> <public_key_path> +Create a device with an ES256 credential`,
		`create_rsa_device <location> <registry_id> <device_id> <public_key_path> +Create a device with an RSA credential`,
		`create_unauth_device <location> <registry_id> <device_id> +Create a device without credentials`,
		`delete_device <location> <registry_id> <device_id> +Delete a device from a registry`,
		`get_device <location> <registry_id> <device_id> +Gets a device from a registry\.`,
		`get_device_configs <location> <registry_id> <device_id> +List device configurations\.`,
		`get_device_states <location> <registry_id> <device_id> +List device state history\.`,
		`list_devices <location> <registry_id> +List the devices in the provided registry\.`,
		`patch_es_device <location> <registry_id> <device_id> <public_key_path> +Patch a device with an ES256 credential`,
		`patch_rsa_device <location> <registry_id> <device_id> <public_key_path> +Patch a device with an RSA credential`,
		`send_configuration <location> <registry_id> <device_id> <data> +Set a device configuration\.`,
	}
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no command",
			args: []string{},
		},
		{
			name: "unknown command",
			args: []string{"make_coffee", "us-central1"},
		},
		{
			name: "unknown command with flag",
			args: []string{"make_coffee", "--strong"},
		},
		{
			name: "unknown flag only",
			args: []string{"--verbose"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			root := NewCmdRoot()
			stdout := &bytes.Buffer{}
			root.SetOut(stdout)
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(tt.args)

			assert.Equal(t, cmdutil.ExitOK, cmdutil.ExecuteCommand(root))
			out := stdout.String()
			assert.Regexp(t, `^Usage: iotctl \[command\] \[arguments\]`, out)
			assert.Contains(t, out, "\nRegistry Management Commands:\n")
			assert.Contains(t, out, "\nDevice Management Commands:\n")
			for _, line := range commandLines {
				assert.Regexp(t, regexp.MustCompile(`(?m)^  `+line+`$`), out)
			}
			assert.Contains(t, out, "GOOGLE_CLOUD_PROJECT must be set to your Google Cloud project ID")
			assert.Contains(t, out, "GOOGLE_APPLICATION_CREDENTIALS set to the path to your JSON credentials")
			assert.NotContains(t, out, "completion")
		})
	}
}

func TestMissingProjectFailsLocally(t *testing.T) {
	isolateConfig(t)
	root := NewCmdRoot()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs([]string{"list_devices", "us-central1", "my-registry"})

	assert.Equal(t, cmdutil.ExitError, cmdutil.ExecuteCommand(root))
	assert.Contains(t, stderr.String(), "project id is required")
}

func TestUnknownFlagOnCommand(t *testing.T) {
	isolateConfig(t)
	root := NewCmdRoot()
	stderr := &bytes.Buffer{}
	root.SetOut(&bytes.Buffer{})
	root.SetErr(stderr)
	root.SetArgs([]string{"list_registries", "us-central1", "--nope"})

	assert.Equal(t, cmdutil.ExitError, cmdutil.ExecuteCommand(root))
	assert.Contains(t, stderr.String(), "unknown flag: --nope")
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestInvalidEndpointFailsLocally(t *testing.T) {
	isolateConfig(t)
	t.Setenv(configuration.ProjectEnv, "my-project")
	t.Setenv("IOTCTL_ENDPOINT", "not-a-url")
	root := NewCmdRoot()
	stderr := &bytes.Buffer{}
	root.SetOut(&bytes.Buffer{})
	root.SetErr(stderr)
	root.SetArgs([]string{"list_registries", "us-central1"})

	assert.Equal(t, cmdutil.ExitError, cmdutil.ExecuteCommand(root))
	assert.Contains(t, stderr.String(), `invalid endpoint "not-a-url"`)
	assert.NotContains(t, stderr.String(), "Usage:")
}

func TestHelpEnvironment(t *testing.T) {
	isolateConfig(t)
	root := NewCmdRoot()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetArgs([]string{"help", "environment"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "IOTCTL_ENDPOINT")
	assert.Contains(t, stdout.String(), "GOOGLE_APPLICATION_CREDENTIALS")
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		env   map[string]string
		flags []string
		want  configuration.Config
	}{
		{
			name: "project from environment",
			env: map[string]string{
				configuration.ProjectEnv: "env-project",
			},
			want: configuration.Config{
				Project:  "env-project",
				LogLevel: configuration.DefaultLogLevel,
			},
		},
		{
			name: "config file",
			file: `{"project": "file-project", "endpoint": "http://localhost:8085/", "log_level": "debug"}`,
			want: configuration.Config{
				Project:  "file-project",
				Endpoint: "http://localhost:8085/",
				LogLevel: "debug",
			},
		},
		{
			name: "environment overrides config file",
			file: `{"project": "file-project", "endpoint": "http://localhost:8085/"}`,
			env: map[string]string{
				configuration.ProjectEnv: "env-project",
				"IOTCTL_ENDPOINT":        "http://localhost:9000/",
				"IOTCTL_LOG_FILE":        "/tmp/iotctl.log",
			},
			want: configuration.Config{
				Project:  "env-project",
				Endpoint: "http://localhost:9000/",
				LogLevel: configuration.DefaultLogLevel,
				LogFile:  "/tmp/iotctl.log",
			},
		},
		{
			name: "flag overrides environment",
			env: map[string]string{
				configuration.ProjectEnv: "env-project",
			},
			flags: []string{"--project", "flag-project", "--debug"},
			want: configuration.Config{
				Project:  "flag-project",
				Debug:    true,
				LogLevel: configuration.DefaultLogLevel,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateConfig(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if len(tt.file) > 0 {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(tt.file), 0600))
			}

			v := viper.New()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("project", "", "")
			flags.Bool("debug", false, "")
			require.NoError(t, flags.Parse(tt.flags))
			v.BindPFlag("project", flags.Lookup("project"))
			v.BindPFlag("debug", flags.Lookup("debug"))

			require.NoError(t, initConfig(v, ""))
			got := configuration.Config{}
			require.NoError(t, v.Unmarshal(&got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	dir := isolateConfig(t)
	err := initConfig(viper.New(), filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestGenerateDocs(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	root := NewCmdRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "markdown", "--dir", dir})
	require.NoError(t, root.Execute())
	assert.FileExists(t, filepath.Join(dir, "docs", "iotctl.md"))
	assert.FileExists(t, filepath.Join(dir, "docs", "iotctl_list_devices.md"))

	root = NewCmdRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "html", "--dir", dir})
	require.NoError(t, root.Execute())
	content, err := os.ReadFile(filepath.Join(dir, "docs", "iotctl_list_devices.html"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "iotctl Reference Guide")
}
