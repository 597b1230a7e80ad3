package docs

var (
	CreateESDeviceDoc = CommandDoc{
		Short: "Create a device with an ES256 credential",
		Long: `Create a device authenticated by an ES256 public key. The key file is
sent as is and must hold a PEM encoded public key.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl create_es_device us-central1 my-registry my-device ec_public.pem",
			},
		},
	}
	CreateRSADeviceDoc = CommandDoc{
		Short: "Create a device with an RSA credential",
		Long: `Create a device authenticated by an RSA key. The key file is sent as is
and must hold a PEM encoded X.509 certificate.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl create_rsa_device us-central1 my-registry my-device rsa_cert.pem",
			},
		},
	}
	CreateUnauthDeviceDoc = CommandDoc{
		Short: "Create a device without credentials",
		Examples: []ExampleDoc{
			{
				Command: "iotctl create_unauth_device us-central1 my-registry my-device",
				Output: `Device: my-device
	Blocked: false
	Last Event Time: 
	Last State Time: 
	Name: projects/my-project/locations/us-central1/registries/my-registry/devices/2820040150457052`,
			},
		},
	}
	DeleteDeviceDoc = CommandDoc{
		Short: "Delete a device from a registry",
		Examples: []ExampleDoc{
			{
				Command: "iotctl delete_device us-central1 my-registry my-device",
				Output:  "Deleted device.",
			},
		},
	}
	GetDeviceDoc = CommandDoc{
		Short: "Gets a device from a registry.",
		Examples: []ExampleDoc{
			{
				Command: "iotctl get_device us-central1 my-registry my-device",
			},
			{
				Description: "print the full device resource in JSON format",
				Command:     "iotctl get_device us-central1 my-registry my-device --json",
			},
		},
	}
	GetDeviceConfigsDoc = CommandDoc{
		Short: "List device configurations.",
		Long:  `List the most recent configuration versions of a device, newest first.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl get_device_configs us-central1 my-registry my-device --num-versions 3",
			},
		},
	}
	GetDeviceStatesDoc = CommandDoc{
		Short: "List device state history.",
		Long:  `List the most recent state messages reported by a device, newest first.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl get_device_states us-central1 my-registry my-device",
				Output:  "2019-02-11T17:33:01.201Z: temp=21",
			},
		},
	}
	ListDevicesDoc = CommandDoc{
		Short: "List the devices in the provided registry.",
		Long: `List the devices in the provided registry. Only the first page of results
is read, use '--page-size' to change how many devices it holds.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl list_devices us-central1 my-registry",
			},
		},
	}
	PatchESDeviceDoc = CommandDoc{
		Short: "Patch a device with an ES256 credential",
		Long:  `Replace every credential of a device with a single ES256 public key.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl patch_es_device us-central1 my-registry my-device ec_public.pem",
			},
		},
	}
	PatchRSADeviceDoc = CommandDoc{
		Short: "Patch a device with an RSA credential",
		Long:  `Replace every credential of a device with a single RSA X.509 certificate.`,
		Examples: []ExampleDoc{
			{
				Command: "iotctl patch_rsa_device us-central1 my-registry my-device rsa_cert.pem",
			},
		},
	}
	SendConfigurationDoc = CommandDoc{
		Short: "Set a device configuration.",
		Long: `Push a new configuration to a device. The data argument is sent verbatim
as the configuration payload. With '--version-to-update' the update only
succeeds if the current configuration version matches.`,
		Examples: []ExampleDoc{
			{
				Command: `iotctl send_configuration us-central1 my-registry my-device '{"fan": "on"}'`,
				Output:  "Configuration updated!",
			},
			{
				Description: "only update if version 3 is the latest configuration",
				Command:     "iotctl send_configuration us-central1 my-registry my-device 'fan=off' --version-to-update 3",
			},
		},
	}
)
