package registry

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type createOptions struct {
	*RegistryOptions
	location    string
	registryID  string
	pubsubTopic string
	stateTopic  string
	mqtt        bool
	http        bool
	setMqtt     bool
	setHTTP     bool
}

func NewCreateRegistryCmd(parentOpts *RegistryOptions) *cobra.Command {
	opts := &createOptions{RegistryOptions: parentOpts}
	cmd := &cobra.Command{
		Use:     "create_registry <location> <registry_id> <pubsub_topic>",
		GroupID: GroupID,
		Short:   docs.CreateRegistryDoc.Short,
		Long:    docs.CreateRegistryDoc.Long,
		Example: docs.CreateRegistryDoc.ExampleString(),
		Args:    cmdutil.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.location = util.ArgAt(args, 0)
			opts.registryID = util.ArgAt(args, 1)
			opts.pubsubTopic = util.ArgAt(args, 2)
			opts.setMqtt = cmd.Flags().Changed("mqtt")
			opts.setHTTP = cmd.Flags().Changed("http")
			return createRun(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.stateTopic, "state-topic", "", "Pub/Sub topic receiving device state changes")
	flags.BoolVar(&opts.mqtt, "mqtt", true, "Enable the MQTT protocol bridge for the registry")
	flags.BoolVar(&opts.http, "http", true, "Enable the HTTP protocol bridge for the registry")
	cmdutil.AddJSONFlag(flags, &opts.useJSON)
	return cmd
}

func (opts *createOptions) deviceRegistry() cloudiot.DeviceRegistry {
	r := cloudiot.DeviceRegistry{
		ID: opts.registryID,
		EventNotificationConfigs: []cloudiot.EventNotificationConfig{
			{PubsubTopicName: opts.pubsubTopic},
		},
	}
	if len(opts.stateTopic) > 0 {
		r.StateNotificationConfig = &cloudiot.StateNotificationConfig{PubsubTopicName: opts.stateTopic}
	}
	if opts.setMqtt {
		state := cloudiot.MqttDisabled
		if opts.mqtt {
			state = cloudiot.MqttEnabled
		}
		r.MqttConfig = &cloudiot.MqttConfig{MqttEnabledState: state}
	}
	if opts.setHTTP {
		state := cloudiot.HTTPDisabled
		if opts.http {
			state = cloudiot.HTTPEnabled
		}
		r.HTTPConfig = &cloudiot.HTTPConfig{HTTPEnabledState: state}
	}
	return r
}

func createRun(cmd *cobra.Command, opts *createOptions) error {
	parent, err := resource.RegistriesCollection(opts.Config.Project, opts.location)
	if err != nil {
		return err
	}
	api, err := opts.Registries(opts.Config)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"parent": parent, "registry": opts.registryID}).Info("creating registry")
	created, err := api.Create(cmd.Context(), parent, opts.deviceRegistry())
	if err != nil {
		return err
	}
	if opts.useJSON {
		return util.PrintJSON(opts.Out, created)
	}
	fmt.Fprintf(opts.Out, "Created registry: %s\n", created.Name)
	return nil
}
