package registry

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewListRegistriesCmd(opts *RegistryOptions) *cobra.Command {
	var pageSize int
	cmd := &cobra.Command{
		Use:     "list_registries <location>",
		GroupID: GroupID,
		Short:   docs.ListRegistriesDoc.Short,
		Long:    docs.ListRegistriesDoc.Long,
		Example: docs.ListRegistriesDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, err := resource.RegistriesCollection(opts.Config.Project, util.ArgAt(args, 0))
			if err != nil {
				return err
			}
			api, err := opts.Registries(opts.Config)
			if err != nil {
				return err
			}
			registries, err := api.List(cmd.Context(), parent, pageSize)
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, registries)
			}

			fmt.Fprintln(opts.Out, "Registries:")
			if len(registries) == 0 {
				fmt.Fprintln(opts.Out, "\tNo device registries found in this region for your project.")
				return nil
			}
			for _, r := range registries {
				fmt.Fprintf(opts.Out, "\t%s\n", r.ID)
			}
			return nil
		},
	}
	cmdutil.AddPageSizeFlag(cmd.Flags(), &pageSize, "registries")
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}
