package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
)

// GenericErrorResponse is the error envelope returned by Google REST APIs.
type GenericErrorResponse struct {
	Error struct {
		Code    int      `json:"code,omitempty"`
		Message string   `json:"message,omitempty"`
		Status  string   `json:"status,omitempty"`
		Errors  []Errors `json:"errors,omitempty"`
	} `json:"error"`
}

type Errors struct {
	Message string `json:"message,omitempty"`
	Domain  string `json:"domain,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type Error struct {
	StatusCode int
	Status     string
	Err        error
	RequestURL *string
	Errors     []error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d - %s", e.StatusCode, e.Err.Error())
	}
	if len(e.Errors) > 0 {
		return stderrors.Join(e.Errors...).Error()
	}
	return "Internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPErrorResponse converts a failed call into an *Error, resolving the
// nested messages of the service's JSON error body when there is one.
func HTTPErrorResponse(response *http.Response, err error) error {
	if response == nil {
		return fmt.Errorf("No response %w", err)
	}
	ae := &Error{StatusCode: response.StatusCode, Err: err}

	if response.Request != nil {
		var ptr = new(string)
		*ptr = fmt.Sprintf("HTTP %s %s", response.Request.Method, response.Request.URL)
		ae.RequestURL = ptr
	}
	if response.Body == nil {
		return ae
	}

	responseBody, errRead := io.ReadAll(response.Body)
	if errRead != nil {
		return ae
	}
	errBody := GenericErrorResponse{}
	if errMarshal := json.Unmarshal(responseBody, &errBody); errMarshal != nil {
		return ae
	}

	ae.Status = errBody.Error.Status
	if len(errBody.Error.Message) > 0 {
		ae.Errors = append(ae.Errors, stderrors.New(errBody.Error.Message))
	}
	for _, e := range errBody.Error.Errors {
		if e.Message == errBody.Error.Message {
			continue
		}
		ae.Errors = append(ae.Errors, fmt.Errorf("%s %s", e.Reason, e.Message))
	}
	return ae
}
