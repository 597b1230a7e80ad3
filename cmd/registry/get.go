package registry

import (
	"fmt"
	"io"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewGetRegistryCmd(opts *RegistryOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get_registry <location> <registry_id>",
		GroupID: GroupID,
		Short:   docs.GetRegistryDoc.Short,
		Long:    docs.GetRegistryDoc.Long,
		Example: docs.GetRegistryDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resource.Registry(opts.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1))
			if err != nil {
				return err
			}
			api, err := opts.Registries(opts.Config)
			if err != nil {
				return err
			}
			r, err := api.Read(cmd.Context(), name)
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, r)
			}
			printRegistry(opts.Out, r)
			return nil
		},
	}
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}

func printRegistry(out io.Writer, r *cloudiot.DeviceRegistry) {
	fmt.Fprintf(out, "%s:\n", r.ID)
	fmt.Fprintf(out, "\tHTTP Config: %s\n", r.HTTPConfig.GetHTTPEnabledState())
	fmt.Fprintf(out, "\tMQTT Config: %s\n", r.MqttConfig.GetMqttEnabledState())
	fmt.Fprintf(out, "\tName: %s\n", r.Name)
	if len(r.EventNotificationConfigs) == 0 {
		fmt.Fprintln(out, "\tTopic: no associated topics")
		return
	}
	for _, c := range r.EventNotificationConfigs {
		fmt.Fprintf(out, "\tTopic: %s\n", c.PubsubTopicName)
	}
}
