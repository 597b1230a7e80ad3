package factory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/configuration"
	"github.com/iotcore-tools/iotctl/pkg/device"
	"github.com/iotcore-tools/iotctl/pkg/registry"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type Factory struct {
	HTTPClient  func() (*http.Client, error)
	APIClient   func(c *configuration.Config) (*cloudiot.APIClient, error)
	Registries  func(c *configuration.Config) (*registry.RegistryAPI, error)
	Devices     func(c *configuration.Config) (*device.DeviceAPI, error)
	Config      *configuration.Config
	IOOutWriter io.Writer
	StdErr      io.Writer
}

func New(appVersion string, config *configuration.Config) *Factory {
	f := &Factory{}
	f.Config = config
	f.HTTPClient = httpClientFunc(f)           // depends on config
	f.APIClient = apiClientFunc(f, appVersion) // depends on config
	f.Registries = registriesFunc(f)           // depends on config
	f.Devices = devicesFunc(f)                 // depends on config
	f.IOOutWriter = os.Stdout
	f.StdErr = os.Stderr
	return f
}

// findCredentials prefers an explicitly configured service account file and
// otherwise falls back to application default credentials, which honour
// GOOGLE_APPLICATION_CREDENTIALS.
func findCredentials(ctx context.Context, cfg *configuration.Config) (*google.Credentials, error) {
	if len(cfg.CredentialsFile) > 0 {
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("could not read credentials file: %w", err)
		}
		return google.CredentialsFromJSON(ctx, b, cloudiot.CloudPlatformScope)
	}
	creds, err := google.FindDefaultCredentials(ctx, cloudiot.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cmdutil.ErrNoCredentials, err)
	}
	return creds, nil
}

func httpClientFunc(f *Factory) func() (*http.Client, error) {
	return func() (*http.Client, error) {
		ctx := context.Background()
		creds, err := findCredentials(ctx, f.Config)
		if err != nil {
			return nil, err
		}
		log.WithField("project", creds.ProjectID).Debug("using application credentials")
		return oauth2.NewClient(ctx, creds.TokenSource), nil
	}
}

func apiClientFunc(f *Factory, appVersion string) func(c *configuration.Config) (*cloudiot.APIClient, error) {
	return func(cfg *configuration.Config) (*cloudiot.APIClient, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		hc, err := f.HTTPClient()
		if err != nil {
			return nil, err
		}
		clientCfg := &cloudiot.Configuration{
			BasePath:   cfg.GetEndpoint(),
			Debug:      cfg.Debug,
			UserAgent:  "iotctl/" + appVersion + "/go",
			HTTPClient: hc,
		}
		return cloudiot.NewAPIClient(clientCfg), nil
	}
}

func registriesFunc(f *Factory) func(c *configuration.Config) (*registry.RegistryAPI, error) {
	return func(cfg *configuration.Config) (*registry.RegistryAPI, error) {
		c, err := f.APIClient(cfg)
		if err != nil {
			return nil, err
		}
		return registry.NewRegistryAPI(c.RegistriesAPI), nil
	}
}

func devicesFunc(f *Factory) func(c *configuration.Config) (*device.DeviceAPI, error) {
	return func(cfg *configuration.Config) (*device.DeviceAPI, error) {
		c, err := f.APIClient(cfg)
		if err != nil {
			return nil, err
		}
		return device.NewDeviceAPI(c.DevicesAPI), nil
	}
}
