package device

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewGetDeviceConfigsCmd(opts *DeviceOptions) *cobra.Command {
	var numVersions int
	cmd := &cobra.Command{
		Use:     "get_device_configs <location> <registry_id> <device_id>",
		GroupID: GroupID,
		Short:   docs.GetDeviceConfigsDoc.Short,
		Long:    docs.GetDeviceConfigsDoc.Long,
		Example: docs.GetDeviceConfigsDoc.ExampleString(),
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
			configs, err := api.ListConfigVersions(cmd.Context(), name, numVersions)
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, configs)
			}
			if len(configs) == 0 {
				fmt.Fprintln(opts.Out, "No configuration versions")
				return nil
			}
			for _, c := range configs {
				fmt.Fprintf(opts.Out, "Version [%s]: %s\n", c.Version, c.BinaryData)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&numVersions, "num-versions", 0, "Number of configuration versions to list, the service returns up to 10 when 0")
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}

func NewGetDeviceStatesCmd(opts *DeviceOptions) *cobra.Command {
	var numStates int
	cmd := &cobra.Command{
		Use:     "get_device_states <location> <registry_id> <device_id>",
		GroupID: GroupID,
		Short:   docs.GetDeviceStatesDoc.Short,
		Long:    docs.GetDeviceStatesDoc.Long,
		Example: docs.GetDeviceStatesDoc.ExampleString(),
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
			states, err := api.ListStates(cmd.Context(), name, numStates)
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, states)
			}
			if len(states) == 0 {
				fmt.Fprintln(opts.Out, "No state messages")
				return nil
			}
			for _, s := range states {
				fmt.Fprintf(opts.Out, "%s: %s\n", s.UpdateTime, s.BinaryData)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&numStates, "num-states", 0, "Number of state messages to list, the service returns up to 10 when 0")
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}
