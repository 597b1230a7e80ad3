package device

import (
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/credentials"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

func NewPatchESDeviceCmd(opts *DeviceOptions) *cobra.Command {
	return newPatchCmd(opts, credentials.ES256PEM, "patch_es_device <location> <registry_id> <device_id> <public_key_path>", docs.PatchESDeviceDoc)
}

func NewPatchRSADeviceCmd(opts *DeviceOptions) *cobra.Command {
	return newPatchCmd(opts, credentials.RSAX509PEM, "patch_rsa_device <location> <registry_id> <device_id> <public_key_path>", docs.PatchRSADeviceDoc)
}

func newPatchCmd(opts *DeviceOptions, format credentials.Format, use string, doc docs.CommandDoc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		GroupID: GroupID,
		Short:   doc.Short,
		Long:    doc.Long,
		Example: doc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resource.Device(opts.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1), util.ArgAt(args, 2))
			if err != nil {
				return err
			}
			creds, err := credentials.Load(format, util.ArgAt(args, 3))
			if err != nil {
				return err
			}
			api, err := opts.Devices(opts.Config)
			if err != nil {
				return err
			}
			d, err := api.PatchCredentials(cmd.Context(), name, creds)
			if err != nil {
				return err
			}
			return printDevice(opts, d, true)
		},
	}
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}
