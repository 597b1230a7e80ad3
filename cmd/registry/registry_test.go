package registry

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iotcore-tools/iotctl/pkg/api"
	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/configuration"
	"github.com/iotcore-tools/iotctl/pkg/factory"
	"github.com/iotcore-tools/iotctl/pkg/httpmock"
	"github.com/iotcore-tools/iotctl/pkg/registry"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	registriesPath = "/v1/projects/my-project/locations/us-central1/registries"
	registryPath   = registriesPath + "/my-registry"
	fixtures       = "../../pkg/registry/fixtures/"
)

func setupRegistryTest(t *testing.T) (*httpmock.Registry, *RegistryOptions, *bytes.Buffer) {
	t.Helper()
	mock := httpmock.NewRegistry(t)

	stdout := &bytes.Buffer{}
	f := &factory.Factory{
		Config: &configuration.Config{
			Project: "my-project",
		},
		IOOutWriter: stdout,
	}
	f.APIClient = func(c *configuration.Config) (*cloudiot.APIClient, error) {
		return mock.Client, nil
	}
	f.Registries = func(c *configuration.Config) (*registry.RegistryAPI, error) {
		api, _ := f.APIClient(c)
		return registry.NewRegistryAPI(api.RegistriesAPI), nil
	}
	return mock, NewRegistryOptions(f), stdout
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	_, err := cmd.ExecuteC()
	return err
}

func TestCreateRegistry(t *testing.T) {
	mock, opts, out := setupRegistryTest(t)
	mock.Register(registriesPath, httpmock.JSONResponse(fixtures+"registry.json"))
	mock.Serve()
	defer mock.Teardown()

	err := execute(t, NewCreateRegistryCmd(opts), "us-central1", "my-registry", "projects/my-project/topics/device-events")
	require.NoError(t, err)
	assert.Equal(t, "Created registry: projects/my-project/locations/us-central1/registries/my-registry\n", out.String())

	requests := mock.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	want := []byte(`{"id":"my-registry","eventNotificationConfigs":[{"pubsubTopicName":"projects/my-project/topics/device-events"}]}`)
	if diff := cmp.Diff(want, requests[0].Body, httpmock.TransformJSONFilter); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateRegistryWithOptions(t *testing.T) {
	mock, opts, _ := setupRegistryTest(t)
	mock.Register(registriesPath, httpmock.JSONResponse(fixtures+"registry.json"))
	mock.Serve()
	defer mock.Teardown()

	err := execute(t, NewCreateRegistryCmd(opts),
		"us-central1", "my-registry", "projects/my-project/topics/device-events",
		"--state-topic", "projects/my-project/topics/device-state",
		"--http=false",
	)
	require.NoError(t, err)

	requests := mock.Requests()
	require.Len(t, requests, 1)
	var got cloudiot.DeviceRegistry
	require.NoError(t, json.Unmarshal(requests[0].Body, &got))
	require.NotNil(t, got.StateNotificationConfig)
	assert.Equal(t, "projects/my-project/topics/device-state", got.StateNotificationConfig.PubsubTopicName)
	assert.Equal(t, cloudiot.HTTPDisabled, got.HTTPConfig.GetHTTPEnabledState())
	assert.Nil(t, got.MqttConfig)
}

func TestDeleteRegistry(t *testing.T) {
	mock, opts, out := setupRegistryTest(t)
	mock.Register(registryPath, httpmock.JSONBody(`{}`))
	mock.Serve()
	defer mock.Teardown()

	require.NoError(t, execute(t, NewDeleteRegistryCmd(opts), "us-central1", "my-registry"))
	assert.Equal(t, "Deleted registry: my-registry\n", out.String())
	requests := mock.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodDelete, requests[0].Method)
}

func TestGetRegistry(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		id      string
		want    string
	}{
		{
			name:    "with topics",
			fixture: "registry.json",
			id:      "my-registry",
			want: `my-registry:
	HTTP Config: HTTP_ENABLED
	MQTT Config: MQTT_ENABLED
	Name: projects/my-project/locations/us-central1/registries/my-registry
	Topic: projects/my-project/topics/device-events
`,
		},
		{
			name:    "without topics",
			fixture: "registry_no_topics.json",
			id:      "quiet-registry",
			want: `quiet-registry:
	HTTP Config: HTTP_ENABLED
	MQTT Config: MQTT_DISABLED
	Name: projects/my-project/locations/us-central1/registries/quiet-registry
	Topic: no associated topics
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, opts, out := setupRegistryTest(t)
			mock.Register(registriesPath+"/"+tt.id, httpmock.JSONResponse(fixtures+tt.fixture))
			mock.Serve()
			defer mock.Teardown()

			require.NoError(t, execute(t, NewGetRegistryCmd(opts), "us-central1", tt.id))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestGetRegistryJSON(t *testing.T) {
	mock, opts, out := setupRegistryTest(t)
	mock.Register(registryPath, httpmock.JSONResponse(fixtures+"registry.json"))
	mock.Serve()
	defer mock.Teardown()

	require.NoError(t, execute(t, NewGetRegistryCmd(opts), "us-central1", "my-registry", "--json"))
	assert.True(t, util.IsJSON(out.String()))
}

func TestListRegistries(t *testing.T) {
	tests := []struct {
		name      string
		fixture   string
		args      []string
		wantQuery string
		want      string
	}{
		{
			name:    "registries found",
			fixture: "registry_list.json",
			args:    []string{"us-central1"},
			want: `Registries:
	my-registry
	quiet-registry
`,
		},
		{
			name:      "none found",
			fixture:   "registry_list_empty.json",
			args:      []string{"us-central1", "--page-size", "5"},
			wantQuery: "pageSize=5",
			want: `Registries:
	No device registries found in this region for your project.
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, opts, out := setupRegistryTest(t)
			mock.Register(registriesPath, httpmock.JSONResponse(fixtures+tt.fixture))
			mock.Serve()
			defer mock.Teardown()

			require.NoError(t, execute(t, NewListRegistriesCmd(opts), tt.args...))
			assert.Equal(t, tt.want, out.String())
			requests := mock.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, tt.wantQuery, requests[0].Query)
		})
	}
}

func TestGetIamPolicy(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		want    string
	}{
		{
			name:    "first member of each binding",
			fixture: "policy.json",
			want: `Role: roles/viewer Member: user:a@example.com
Role: roles/cloudiot.provisioner Member: serviceAccount:provisioner@my-project.iam.gserviceaccount.com
`,
		},
		{
			name:    "no bindings",
			fixture: "policy_empty.json",
			want:    "No bindings\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, opts, out := setupRegistryTest(t)
			mock.Register(registryPath+":getIamPolicy", httpmock.JSONResponse(fixtures+tt.fixture))
			mock.Serve()
			defer mock.Teardown()

			require.NoError(t, execute(t, NewGetIamPolicyCmd(opts), "us-central1", "my-registry"))
			assert.Equal(t, tt.want, out.String())
			requests := mock.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, http.MethodPost, requests[0].Method)
		})
	}
}

func TestSetIamPolicy(t *testing.T) {
	mock, opts, out := setupRegistryTest(t)
	mock.Register(registryPath+":setIamPolicy", httpmock.JSONResponse(fixtures+"policy_set.json"))
	mock.Serve()
	defer mock.Teardown()

	require.NoError(t, execute(t, NewSetIamPolicyCmd(opts), "us-central1", "my-registry", "user:a@example.com", "roles/viewer"))
	assert.Equal(t, "Binding set:\n\tRole: roles/viewer Member: user:a@example.com\n", out.String())

	requests := mock.Requests()
	require.Len(t, requests, 1)
	var got cloudiot.SetIamPolicyRequest
	require.NoError(t, json.Unmarshal(requests[0].Body, &got))
	require.NotNil(t, got.Policy)
	require.Len(t, got.Policy.Bindings, 1)
	assert.Equal(t, "roles/viewer", got.Policy.Bindings[0].Role)
	assert.Equal(t, []string{"user:a@example.com"}, got.Policy.Bindings[0].Members)
}

func TestSetIamPolicyNoBindings(t *testing.T) {
	mock, opts, out := setupRegistryTest(t)
	mock.Register(registryPath+":setIamPolicy", httpmock.JSONResponse(fixtures+"policy_empty.json"))
	mock.Serve()
	defer mock.Teardown()

	require.NoError(t, execute(t, NewSetIamPolicyCmd(opts), "us-central1", "my-registry", "user:a@example.com", "roles/viewer"))
	assert.Equal(t, "No bindings\n", out.String())
}

func TestMissingIdentifiersMakeNoRemoteCall(t *testing.T) {
	tests := []struct {
		name    string
		project string
		cmd     func(*RegistryOptions) *cobra.Command
		args    []string
		wantErr error
	}{
		{
			name:    "list without project",
			cmd:     NewListRegistriesCmd,
			args:    []string{"us-central1"},
			wantErr: resource.ErrMissingProject,
		},
		{
			name:    "list without location",
			project: "my-project",
			cmd:     NewListRegistriesCmd,
			wantErr: resource.ErrMissingLocation,
		},
		{
			name:    "get without registry",
			project: "my-project",
			cmd:     NewGetRegistryCmd,
			args:    []string{"us-central1"},
			wantErr: resource.ErrMissingRegistry,
		},
		{
			name:    "set iam policy without registry",
			project: "my-project",
			cmd:     NewSetIamPolicyCmd,
			args:    []string{"us-central1"},
			wantErr: resource.ErrMissingRegistry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, opts, out := setupRegistryTest(t)
			mock.Serve()
			defer mock.Teardown()
			opts.Config.Project = tt.project

			err := execute(t, tt.cmd(opts), tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, mock.Requests())
			assert.Empty(t, out.String())
		})
	}
}

func TestRegistryRemoteError(t *testing.T) {
	mock, opts, out := setupRegistryTest(t)
	mock.Register(registryPath, httpmock.StatusResponse(http.StatusNotFound, `{"error": {"code": 404, "message": "Registry not found", "status": "NOT_FOUND"}}`))
	mock.Serve()
	defer mock.Teardown()

	err := execute(t, NewDeleteRegistryCmd(opts), "us-central1", "my-registry")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Status)
	require.Len(t, apiErr.Errors, 1)
	assert.EqualError(t, apiErr.Errors[0], "Registry not found")
	assert.Empty(t, out.String())
}
