package credentials

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	log "github.com/sirupsen/logrus"
)

// ErrKeyEncoding is returned for key files that are not valid UTF-8 text,
// such as DER encoded keys. They cannot be carried in a JSON string unchanged.
var ErrKeyEncoding = errors.New("public key file is not UTF-8 text, expected a PEM encoded key")

// Format selects the public key material attached to a device.
type Format int

const (
	Unauthenticated Format = iota
	ES256PEM
	RSAX509PEM
)

func (f Format) String() string {
	switch f {
	case ES256PEM:
		return cloudiot.KeyFormatES256PEM
	case RSAX509PEM:
		return cloudiot.KeyFormatRSAX509PEM
	}
	return "unauthenticated"
}

// Load reads the key file at path and returns the device credentials for
// format. The key is the exact content of the file. Unauthenticated returns
// nil so that no credentials field is sent.
func Load(format Format, path string) ([]cloudiot.DeviceCredential, error) {
	if format == Unauthenticated {
		return nil, nil
	}
	key, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read public key: %w", err)
	}
	if !utf8.Valid(key) {
		return nil, fmt.Errorf("%s: %w", path, ErrKeyEncoding)
	}
	log.WithFields(log.Fields{"path": path, "format": format.String()}).Debug("loaded public key")
	return []cloudiot.DeviceCredential{
		{
			PublicKey: &cloudiot.PublicKeyCredential{
				Format: format.String(),
				Key:    string(key),
			},
		},
	}, nil
}
