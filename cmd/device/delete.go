package device

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewDeleteDeviceCmd(opts *DeviceOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete_device <location> <registry_id> <device_id>",
		GroupID: GroupID,
		Short:   docs.DeleteDeviceDoc.Short,
		Long:    docs.DeleteDeviceDoc.Long,
		Example: docs.DeleteDeviceDoc.ExampleString(),
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
			if err := api.Delete(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintln(opts.Out, "Deleted device.")
			return nil
		},
	}
}
