package device

import (
	"io"

	"github.com/iotcore-tools/iotctl/pkg/configuration"
	"github.com/iotcore-tools/iotctl/pkg/device"
	"github.com/iotcore-tools/iotctl/pkg/factory"
	"github.com/spf13/cobra"
)

const GroupID = "device"

type DeviceOptions struct {
	Config  *configuration.Config
	Out     io.Writer
	Devices func(c *configuration.Config) (*device.DeviceAPI, error)
	useJSON bool
}

// Group is the heading device commands are listed under in the usage text.
func Group() *cobra.Group {
	return &cobra.Group{ID: GroupID, Title: "Device Management Commands:"}
}

func NewDeviceOptions(f *factory.Factory) *DeviceOptions {
	return &DeviceOptions{
		Config:  f.Config,
		Out:     f.IOOutWriter,
		Devices: f.Devices,
	}
}

// NewDeviceCmds returns the device commands in usage order.
func NewDeviceCmds(f *factory.Factory) []*cobra.Command {
	return []*cobra.Command{
		NewCreateESDeviceCmd(NewDeviceOptions(f)),
		NewCreateRSADeviceCmd(NewDeviceOptions(f)),
		NewCreateUnauthDeviceCmd(NewDeviceOptions(f)),
		NewDeleteDeviceCmd(NewDeviceOptions(f)),
		NewGetDeviceCmd(NewDeviceOptions(f)),
		NewGetDeviceConfigsCmd(NewDeviceOptions(f)),
		NewGetDeviceStatesCmd(NewDeviceOptions(f)),
		NewListDevicesCmd(NewDeviceOptions(f)),
		NewPatchESDeviceCmd(NewDeviceOptions(f)),
		NewPatchRSADeviceCmd(NewDeviceOptions(f)),
		NewSendConfigurationCmd(NewDeviceOptions(f)),
	}
}
