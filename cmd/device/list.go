package device

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewListDevicesCmd(opts *DeviceOptions) *cobra.Command {
	var pageSize int
	cmd := &cobra.Command{
		Use:     "list_devices <location> <registry_id>",
		GroupID: GroupID,
		Short:   docs.ListDevicesDoc.Short,
		Long:    docs.ListDevicesDoc.Long,
		Example: docs.ListDevicesDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, err := resource.DevicesCollection(opts.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1))
			if err != nil {
				return err
			}
			api, err := opts.Devices(opts.Config)
			if err != nil {
				return err
			}
			devices, err := api.List(cmd.Context(), parent, pageSize)
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, devices)
			}

			fmt.Fprintln(opts.Out, "Devices:")
			if len(devices) == 0 {
				fmt.Fprintln(opts.Out, "\tNo device registries found in this region for your project.")
				return nil
			}
			for _, d := range devices {
				fmt.Fprintf(opts.Out, "\t%s\n", d.ID)
			}
			return nil
		},
	}
	cmdutil.AddPageSizeFlag(cmd.Flags(), &pageSize, "devices")
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}
