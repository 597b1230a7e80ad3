package device

import (
	"context"
	"strconv"

	"github.com/iotcore-tools/iotctl/pkg/api"
	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
)

// CredentialsMask restricts a patch to the device credentials.
const CredentialsMask = "credentials"

type DeviceAPI struct {
	client *cloudiot.DevicesService
}

func NewDeviceAPI(client *cloudiot.DevicesService) *DeviceAPI {
	return &DeviceAPI{
		client: client,
	}
}

func (d *DeviceAPI) Create(ctx context.Context, collection string, device cloudiot.Device) (*cloudiot.Device, error) {
	created, response, err := d.client.Create(ctx, collection, device)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return created, nil
}

func (d *DeviceAPI) Delete(ctx context.Context, name string) error {
	response, err := d.client.Delete(ctx, name)
	if err != nil {
		return api.HTTPErrorResponse(response, err)
	}
	return nil
}

func (d *DeviceAPI) Read(ctx context.Context, name string) (*cloudiot.Device, error) {
	device, response, err := d.client.Get(ctx, name)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return device, nil
}

func (d *DeviceAPI) List(ctx context.Context, collection string, pageSize int) ([]cloudiot.Device, error) {
	list, response, err := d.client.List(ctx, collection, pageSize)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return list.Devices, nil
}

// PatchCredentials replaces the credentials of the device and nothing else.
func (d *DeviceAPI) PatchCredentials(ctx context.Context, name string, credentials []cloudiot.DeviceCredential) (*cloudiot.Device, error) {
	body := cloudiot.Device{Credentials: credentials}
	device, response, err := d.client.Patch(ctx, name, body, CredentialsMask)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return device, nil
}

func (d *DeviceAPI) ListConfigVersions(ctx context.Context, name string, numVersions int) ([]cloudiot.DeviceConfig, error) {
	list, response, err := d.client.ListConfigVersions(ctx, name, numVersions)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return list.DeviceConfigs, nil
}

func (d *DeviceAPI) ListStates(ctx context.Context, name string, numStates int) ([]cloudiot.DeviceState, error) {
	list, response, err := d.client.ListStates(ctx, name, numStates)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return list.DeviceStates, nil
}

func (d *DeviceAPI) SendConfiguration(ctx context.Context, name string, data []byte, versionToUpdate int64) (*cloudiot.DeviceConfig, error) {
	request := cloudiot.ModifyCloudToDeviceConfigRequest{BinaryData: data}
	if versionToUpdate > 0 {
		request.VersionToUpdate = strconv.FormatInt(versionToUpdate, 10)
	}
	config, response, err := d.client.ModifyCloudToDeviceConfig(ctx, name, request)
	if err != nil {
		return nil, api.HTTPErrorResponse(response, err)
	}
	return config, nil
}
