package registry

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewDeleteRegistryCmd(opts *RegistryOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete_registry <location> <registry_id>",
		GroupID: GroupID,
		Short:   docs.DeleteRegistryDoc.Short,
		Long:    docs.DeleteRegistryDoc.Long,
		Example: docs.DeleteRegistryDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registryID := util.ArgAt(args, 1)
			name, err := resource.Registry(opts.Config.Project, util.ArgAt(args, 0), registryID)
			if err != nil {
				return err
			}
			api, err := opts.Registries(opts.Config)
			if err != nil {
				return err
			}
			if err := api.Delete(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(opts.Out, "Deleted registry: %s\n", registryID)
			return nil
		},
	}
}
