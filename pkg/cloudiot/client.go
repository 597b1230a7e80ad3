package cloudiot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultBasePath = "https://cloudiot.googleapis.com/"
	apiVersion      = "v1"
	// CloudPlatformScope is the OAuth2 scope required by every call.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

type Configuration struct {
	BasePath   string
	UserAgent  string
	Debug      bool
	HTTPClient *http.Client
}

func NewConfiguration() *Configuration {
	return &Configuration{
		BasePath:  DefaultBasePath,
		UserAgent: "iotctl/go",
	}
}

// APIClient talks to the cloudiot v1 REST surface. Every method performs
// exactly one request and returns the raw *http.Response alongside the
// decoded body so callers can build richer errors.
type APIClient struct {
	cfg *Configuration

	RegistriesAPI *RegistriesService
	DevicesAPI    *DevicesService
}

type service struct {
	client *APIClient
}

func NewAPIClient(cfg *Configuration) *APIClient {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	c := &APIClient{cfg: cfg}
	c.RegistriesAPI = &RegistriesService{client: c}
	c.DevicesAPI = &DevicesService{client: c}
	return c
}

// GenericAPIError carries the undecoded response body of a failed call.
type GenericAPIError struct {
	body  []byte
	error string
}

func (e GenericAPIError) Error() string {
	return e.error
}

func (e GenericAPIError) Body() []byte {
	return e.body
}

func (c *APIClient) url(path, verb string, query url.Values) string {
	u := strings.TrimSuffix(c.cfg.BasePath, "/") + "/" + apiVersion + "/" + path
	if len(verb) > 0 {
		u += ":" + verb
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *APIClient) call(ctx context.Context, method, path, verb string, query url.Values, body, out interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, verb, query), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(c.cfg.UserAgent) > 0 {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	log.WithFields(log.Fields{"method": method, "url": req.URL.String()}).Debug("sending request")
	if c.cfg.Debug {
		dump, err := httputil.DumpRequestOut(req, true)
		if err != nil {
			return nil, err
		}
		log.Debugf("\n%s\n", string(dump))
	}

	response, err := c.cfg.HTTPClient.Do(req)
	if err != nil || response == nil {
		return response, err
	}

	responseBody, err := io.ReadAll(response.Body)
	response.Body.Close()
	response.Body = io.NopCloser(bytes.NewBuffer(responseBody))
	if err != nil {
		return response, err
	}
	if c.cfg.Debug {
		log.Debugf("\n%s %s\n%s\n", response.Proto, response.Status, string(responseBody))
	}

	if response.StatusCode >= 300 {
		return response, GenericAPIError{
			body:  responseBody,
			error: response.Status,
		}
	}
	if out == nil || len(responseBody) == 0 {
		return response, nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return response, GenericAPIError{
			body:  responseBody,
			error: fmt.Sprintf("failed to decode response: %s", err),
		}
	}
	return response, nil
}
