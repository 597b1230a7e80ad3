package device

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewSendConfigurationCmd(opts *DeviceOptions) *cobra.Command {
	var versionToUpdate int64
	cmd := &cobra.Command{
		Use:     "send_configuration <location> <registry_id> <device_id> <data>",
		GroupID: GroupID,
		Short:   docs.SendConfigurationDoc.Short,
		Long:    docs.SendConfigurationDoc.Long,
		Example: docs.SendConfigurationDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resource.Device(opts.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1), util.ArgAt(args, 2))
			if err != nil {
				return err
			}
			api, err := opts.Devices(opts.Config)
			if err != nil {
				return err
			}
			data := util.ArgAt(args, 3)
			log.WithFields(log.Fields{"device": name, "bytes": len(data), "version": versionToUpdate}).Info("sending configuration")
			config, err := api.SendConfiguration(cmd.Context(), name, []byte(data), versionToUpdate)
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, config)
			}
			fmt.Fprintln(opts.Out, "Configuration updated!")
			return nil
		},
	}
	cmd.Flags().Int64Var(&versionToUpdate, "version-to-update", 0, "Only update when this is the current configuration version, 0 always updates")
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}
