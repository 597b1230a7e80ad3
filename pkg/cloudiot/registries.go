package cloudiot

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type RegistriesService service

// Create posts registry to collection, which must be a
// projects/*/locations/*/registries path.
func (s *RegistriesService) Create(ctx context.Context, collection string, registry DeviceRegistry) (*DeviceRegistry, *http.Response, error) {
	result := &DeviceRegistry{}
	response, err := s.client.call(ctx, http.MethodPost, collection, "", nil, registry, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *RegistriesService) Delete(ctx context.Context, name string) (*http.Response, error) {
	return s.client.call(ctx, http.MethodDelete, name, "", nil, nil, nil)
}

func (s *RegistriesService) Get(ctx context.Context, name string) (*DeviceRegistry, *http.Response, error) {
	result := &DeviceRegistry{}
	response, err := s.client.call(ctx, http.MethodGet, name, "", nil, nil, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

// List reads a single page of registries. A pageSize of zero leaves the
// page size to the service.
func (s *RegistriesService) List(ctx context.Context, collection string, pageSize int) (*ListDeviceRegistriesResponse, *http.Response, error) {
	query := url.Values{}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	result := &ListDeviceRegistriesResponse{}
	response, err := s.client.call(ctx, http.MethodGet, collection, "", query, nil, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *RegistriesService) GetIamPolicy(ctx context.Context, resource string) (*Policy, *http.Response, error) {
	result := &Policy{}
	response, err := s.client.call(ctx, http.MethodPost, resource, "getIamPolicy", nil, GetIamPolicyRequest{}, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *RegistriesService) SetIamPolicy(ctx context.Context, resource string, request SetIamPolicyRequest) (*Policy, *http.Response, error) {
	result := &Policy{}
	response, err := s.client.call(ctx, http.MethodPost, resource, "setIamPolicy", nil, request, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}
