package docs

var (
	CreateRegistryDoc = CommandDoc{
		Short: "Create a device registry.",
		Long: `Create a device registry in the given region. Telemetry events published by
devices are forwarded to the Pub/Sub topic, which must already exist and be
given as a full resource name.`,
		Examples: []ExampleDoc{
			{
				Description: "create a registry forwarding events to a topic",
				Command:     "iotctl create_registry us-central1 my-registry projects/my-project/topics/device-events",
				Output:      "Created registry: projects/my-project/locations/us-central1/registries/my-registry",
			},
			{
				Description: "also forward device state and disable the HTTP bridge",
				Command:     "iotctl create_registry us-central1 my-registry projects/my-project/topics/device-events --state-topic projects/my-project/topics/device-state --http=false",
			},
		},
	}
	DeleteRegistryDoc = CommandDoc{
		Short: "Delete a device registry.",
		Long:  `Delete a device registry. The registry must not contain any devices.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl delete_registry us-central1 my-registry",
				Output:  "Deleted registry: my-registry",
			},
		},
	}
	GetRegistryDoc = CommandDoc{
		Short: "Get the provided device registry.",
		Examples: []ExampleDoc{
			{
				Command: "iotctl get_registry us-central1 my-registry",
				Output: `my-registry:
	HTTP Config: HTTP_ENABLED
	MQTT Config: MQTT_ENABLED
	Name: projects/my-project/locations/us-central1/registries/my-registry
	Topic: projects/my-project/topics/device-events`,
			},
		},
	}
	GetIamPolicyDoc = CommandDoc{
		Short: "Get the IAM policy for a registry.",
		Long:  `Print the role and first member of every binding in the IAM policy attached to a registry.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl get_iam_policy us-central1 my-registry",
				Output:  "Role: roles/viewer Member: group:dpebot@google.com",
			},
		},
	}
	ListRegistriesDoc = CommandDoc{
		Short: "List the device registries in the provided region.",
		Long: `List the device registries in the provided region. Only the first page of
results is read, use '--page-size' to change how many registries it holds.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl list_registries us-central1",
			},
			{
				Description: "print the full registry resources in JSON format",
				Command:     "iotctl list_registries us-central1 --json",
			},
		},
	}
	SetIamPolicyDoc = CommandDoc{
		Short: "Set the IAM policy for a registry to a single member / role.",
		Long: `Replace the IAM policy of a registry with a policy holding exactly one
binding of the member to the role. Existing bindings are removed.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl set_iam_policy us-central1 my-registry group:dpebot@google.com roles/viewer",
				Output: `Binding set:
	Role: roles/viewer Member: group:dpebot@google.com`,
			},
		},
	}
)
