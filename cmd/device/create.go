package device

import (
	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/credentials"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewCreateESDeviceCmd(opts *DeviceOptions) *cobra.Command {
	return newCreateCmd(opts, credentials.ES256PEM, "create_es_device <location> <registry_id> <device_id> <public_key_path>", docs.CreateESDeviceDoc)
}

func NewCreateRSADeviceCmd(opts *DeviceOptions) *cobra.Command {
	return newCreateCmd(opts, credentials.RSAX509PEM, "create_rsa_device <location> <registry_id> <device_id> <public_key_path>", docs.CreateRSADeviceDoc)
}

func NewCreateUnauthDeviceCmd(opts *DeviceOptions) *cobra.Command {
	return newCreateCmd(opts, credentials.Unauthenticated, "create_unauth_device <location> <registry_id> <device_id>", docs.CreateUnauthDeviceDoc)
}

func newCreateCmd(opts *DeviceOptions, format credentials.Format, use string, doc docs.CommandDoc) *cobra.Command {
	maxArgs := 4
	if format == credentials.Unauthenticated {
		maxArgs = 3
	}
	cmd := &cobra.Command{
		Use:     use,
		GroupID: GroupID,
		Short:   doc.Short,
		Long:    doc.Long,
		Example: doc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(maxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, err := resource.DevicesCollection(opts.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1))
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
			deviceID := util.ArgAt(args, 2)
			log.WithFields(log.Fields{"parent": parent, "device": deviceID, "format": format.String()}).Info("creating device")
			d, err := api.Create(cmd.Context(), parent, cloudiot.Device{
				ID:          deviceID,
				Credentials: creds,
			})
			if err != nil {
				return err
			}
			return printDevice(opts, d, false)
		},
	}
	cmdutil.AddJSONFlag(cmd.Flags(), &opts.useJSON)
	return cmd
}
