package registry

import (
	"context"

	"github.com/iotcore-tools/iotctl/pkg/api"
	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
)

type RegistryAPI struct {
	client *cloudiot.RegistriesService
}

func NewRegistryAPI(client *cloudiot.RegistriesService) *RegistryAPI {
	return &RegistryAPI{
		client: client,
	}
}

func (r *RegistryAPI) Create(ctx context.Context, collection string, registry cloudiot.DeviceRegistry) (*cloudiot.DeviceRegistry, error) {
	created, response, err := r.client.Create(ctx, collection, registry)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return created, nil
}

func (r *RegistryAPI) Delete(ctx context.Context, name string) error {
	response, err := r.client.Delete(ctx, name)
	if err != nil {
		return api.HTTPErrorResponse(response, err)
	}
	return nil
}

func (r *RegistryAPI) Read(ctx context.Context, name string) (*cloudiot.DeviceRegistry, error) {
	registry, response, err := r.client.Get(ctx, name)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return registry, nil
}

func (r *RegistryAPI) List(ctx context.Context, collection string, pageSize int) ([]cloudiot.DeviceRegistry, error) {
	list, response, err := r.client.List(ctx, collection, pageSize)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return list.DeviceRegistries, nil
}

func (r *RegistryAPI) GetIamPolicy(ctx context.Context, resource string) (*cloudiot.Policy, error) {
	policy, response, err := r.client.GetIamPolicy(ctx, resource)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return policy, nil
}

func (r *RegistryAPI) SetIamPolicy(ctx context.Context, resource string, policy *cloudiot.Policy) (*cloudiot.Policy, error) {
	result, response, err := r.client.SetIamPolicy(ctx, resource, cloudiot.SetIamPolicyRequest{Policy: policy})
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return result, nil
}
