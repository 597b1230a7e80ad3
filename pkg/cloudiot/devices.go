package cloudiot

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type DevicesService service

// Create posts device to collection, which must be a
// projects/*/locations/*/registries/*/devices path.
func (s *DevicesService) Create(ctx context.Context, collection string, device Device) (*Device, *http.Response, error) {
	result := &Device{}
	response, err := s.client.call(ctx, http.MethodPost, collection, "", nil, device, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *DevicesService) Delete(ctx context.Context, name string) (*http.Response, error) {
	return s.client.call(ctx, http.MethodDelete, name, "", nil, nil, nil)
}

func (s *DevicesService) Get(ctx context.Context, name string) (*Device, *http.Response, error) {
	result := &Device{}
	response, err := s.client.call(ctx, http.MethodGet, name, "", nil, nil, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

// Patch replaces only the fields of device named by updateMask.
func (s *DevicesService) Patch(ctx context.Context, name string, device Device, updateMask string) (*Device, *http.Response, error) {
	query := url.Values{}
	query.Set("updateMask", updateMask)
	result := &Device{}
	response, err := s.client.call(ctx, http.MethodPatch, name, "", query, device, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *DevicesService) List(ctx context.Context, collection string, pageSize int) (*ListDevicesResponse, *http.Response, error) {
	query := url.Values{}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	result := &ListDevicesResponse{}
	response, err := s.client.call(ctx, http.MethodGet, collection, "", query, nil, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *DevicesService) ListConfigVersions(ctx context.Context, name string, numVersions int) (*ListDeviceConfigVersionsResponse, *http.Response, error) {
	query := url.Values{}
	if numVersions > 0 {
		query.Set("numVersions", strconv.Itoa(numVersions))
	}
	result := &ListDeviceConfigVersionsResponse{}
	response, err := s.client.call(ctx, http.MethodGet, name+"/configVersions", "", query, nil, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *DevicesService) ListStates(ctx context.Context, name string, numStates int) (*ListDeviceStatesResponse, *http.Response, error) {
	query := url.Values{}
	if numStates > 0 {
		query.Set("numStates", strconv.Itoa(numStates))
	}
	result := &ListDeviceStatesResponse{}
	response, err := s.client.call(ctx, http.MethodGet, name+"/states", "", query, nil, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}

func (s *DevicesService) ModifyCloudToDeviceConfig(ctx context.Context, name string, request ModifyCloudToDeviceConfigRequest) (*DeviceConfig, *http.Response, error) {
	result := &DeviceConfig{}
	response, err := s.client.call(ctx, http.MethodPost, name, "modifyCloudToDeviceConfig", nil, request, result)
	if err != nil {
		return nil, response, err
	}
	return result, response, nil
}
