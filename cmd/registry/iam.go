package registry

import (
	"fmt"
	"io"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/iam"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewGetIamPolicyCmd(opts *RegistryOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get_iam_policy <location> <registry_id>",
		GroupID: GroupID,
		Short:   docs.GetIamPolicyDoc.Short,
		Long:    docs.GetIamPolicyDoc.Long,
		Example: docs.GetIamPolicyDoc.ExampleString(),
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
			policy, err := api.GetIamPolicy(cmd.Context(), name)
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, policy)
			}
			printBindings(opts.Out, policy, "")
			return nil
		},
	}
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}

func NewSetIamPolicyCmd(opts *RegistryOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set_iam_policy <location> <registry_id> <member> <role>",
		GroupID: GroupID,
		Short:   docs.SetIamPolicyDoc.Short,
		Long:    docs.SetIamPolicyDoc.Long,
		Example: docs.SetIamPolicyDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resource.Registry(opts.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1))
			if err != nil {
				return err
			}
			member, role := util.ArgAt(args, 2), util.ArgAt(args, 3)
			api, err := opts.Registries(opts.Config)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"resource": name, "member": member, "role": role}).Info("replacing iam policy")
			policy, err := api.SetIamPolicy(cmd.Context(), name, iam.SingleBindingPolicy(member, role))
			if err != nil {
				return err
			}
			if opts.useJSON {
				return util.PrintJSON(opts.Out, policy)
			}
			if len(policy.Bindings) > 0 {
				fmt.Fprintln(opts.Out, "Binding set:")
			}
			printBindings(opts.Out, policy, "\t")
			return nil
		},
	}
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}

func printBindings(out io.Writer, policy *cloudiot.Policy, indent string) {
	if len(policy.Bindings) == 0 {
		fmt.Fprintln(out, "No bindings")
		return
	}
	for _, b := range policy.Bindings {
		fmt.Fprintf(out, "%s%s\n", indent, iam.FormatBinding(b))
	}
}
