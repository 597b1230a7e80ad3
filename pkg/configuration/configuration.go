package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/util"
)

const (
	ProjectEnv      = "GOOGLE_CLOUD_PROJECT"
	CredentialsEnv  = "GOOGLE_APPLICATION_CREDENTIALS"
	ConfigDirEnv    = "IOTCTL_CONFIG_DIR"
	EnvPrefix       = "IOTCTL"
	configDirName   = "iotctl"
	ConfigFileName  = "config"
	ConfigFileType  = "json"
	DefaultLogLevel = "error"
)

var ErrInvalidEndpoint = errors.New("invalid endpoint")

type Config struct {
	Project         string `mapstructure:"project"`
	CredentialsFile string `mapstructure:"credentials"` // explicit service account file, ADC is used when empty
	Endpoint        string `mapstructure:"endpoint"`
	Debug           bool   `mapstructure:"debug"` // dump HTTP requests and responses
	LogLevel        string `mapstructure:"log_level"`
	LogFile         string `mapstructure:"log_file"`
}

// GetEndpoint returns the service base URL, falling back to the public
// cloudiot endpoint.
func (c *Config) GetEndpoint() string {
	if len(c.Endpoint) > 0 {
		return c.Endpoint
	}
	return cloudiot.DefaultBasePath
}

// Validate rejects an endpoint override that is not an absolute URL.
func (c *Config) Validate() error {
	if len(c.Endpoint) > 0 && !util.IsValidURL(c.Endpoint) {
		return fmt.Errorf("%w %q, expected an absolute URL such as %s", ErrInvalidEndpoint, c.Endpoint, cloudiot.DefaultBasePath)
	}
	return nil
}

// ConfigDir path precedence
// 1. IOTCTL_CONFIG_DIR
// 2. XDG_CONFIG_HOME (or the platform equivalent resolved by xdg)
func ConfigDir() string {
	if a := os.Getenv(ConfigDirEnv); a != "" {
		return a
	}
	return filepath.Join(xdg.ConfigHome, configDirName)
}
