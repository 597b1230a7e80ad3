package httpmock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
)

var TransformJSONFilter = cmp.FilterValues(func(x, y []byte) bool {
	// https://github.com/google/go-cmp/issues/224#issuecomment-650429859
	return json.Valid(x) && json.Valid(y)
}, cmp.Transformer("ParseJSON", func(in []byte) (out interface{}) {
	if err := json.Unmarshal(in, &out); err != nil {
		panic(err) // should never occur given previous filter to ensure valid JSON
	}
	return out
}))

// Request is a copy of a request received by the fake service.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

type Registry struct {
	Client   *cloudiot.APIClient
	Mux      *http.ServeMux
	server   *httptest.Server
	Port     int
	URL      string
	Teardown func()
	stubs    []*Stub

	mu       sync.Mutex
	requests []Request
}

type Stub struct {
	URL       string
	Responder http.HandlerFunc
}

func NewRegistry(t *testing.T) *Registry {
	t.Helper()
	r := &Registry{
		Mux: http.NewServeMux(),
	}
	r.server = httptest.NewServer(http.HandlerFunc(r.record))
	r.URL = r.server.URL
	r.Port = r.server.Listener.Addr().(*net.TCPAddr).Port
	r.Teardown = r.server.Close

	cfg := cloudiot.NewConfiguration()
	// toggle this if you want to see request and response dumps in test
	// cfg.Debug = true
	cfg.BasePath = r.server.URL + "/"
	cfg.HTTPClient = r.server.Client()
	r.Client = cloudiot.NewAPIClient(cfg)
	return r
}

func (r *Registry) record(rw http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	r.mu.Lock()
	r.requests = append(r.requests, Request{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.RawQuery,
		Body:   body,
	})
	r.mu.Unlock()
	r.Mux.ServeHTTP(rw, req)
}

func (r *Registry) Register(url string, resp http.HandlerFunc) {
	r.stubs = append(r.stubs, &Stub{
		URL:       url,
		Responder: resp,
	})
}

func (r *Registry) Serve() {
	for _, stub := range r.stubs {
		r.Mux.HandleFunc(stub.URL, stub.Responder)
	}
}

// Requests returns every request received so far, in arrival order.
func (r *Registry) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out
}

func JSONResponse(filename string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		content, err := os.ReadFile(filename)
		if err != nil {
			panic(fmt.Sprintf("Internal testing error: could not read %q", filename))
		}
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusOK)
		rw.Write(content)
	}
}

func JSONBody(body string) http.HandlerFunc {
	return StatusResponse(http.StatusOK, body)
}

func StatusResponse(status int, body string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(status)
		fmt.Fprint(rw, body)
	}
}
