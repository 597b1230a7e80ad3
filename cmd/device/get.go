package device

import (
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewGetDeviceCmd(opts *DeviceOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get_device <location> <registry_id> <device_id>",
		GroupID: GroupID,
		Short:   docs.GetDeviceDoc.Short,
		Long:    docs.GetDeviceDoc.Long,
		Example: docs.GetDeviceDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resource.Device(opts.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1), util.ArgAt(args, 2))
			if err != nil {
				return err
			}
			api, err := opts.Devices(opts.Config)
			if err != nil {
				return err
			}
			d, err := api.Read(cmd.Context(), name)
			if err != nil {
				return err
			}
			return printDevice(opts, d, true)
		},
	}
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}
