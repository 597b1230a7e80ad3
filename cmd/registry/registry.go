package registry

import (
	"io"

	"github.com/iotcore-tools/iotctl/pkg/configuration"
	"github.com/iotcore-tools/iotctl/pkg/factory"
	"github.com/iotcore-tools/iotctl/pkg/registry"
	"github.com/spf13/cobra"
)

const GroupID = "registry"

type RegistryOptions struct {
	Config     *configuration.Config
	Out        io.Writer
	Registries func(c *configuration.Config) (*registry.RegistryAPI, error)
	useJSON    bool
}

// Group is the heading registry commands are listed under in the usage text.
func Group() *cobra.Group {
	return &cobra.Group{ID: GroupID, Title: "Registry Management Commands:"}
}

func NewRegistryOptions(f *factory.Factory) *RegistryOptions {
	return &RegistryOptions{
		Config:     f.Config,
		Out:        f.IOOutWriter,
		Registries: f.Registries,
	}
}

// NewRegistryCmds returns the registry and IAM commands in usage order.
func NewRegistryCmds(f *factory.Factory) []*cobra.Command {
	return []*cobra.Command{
		NewCreateRegistryCmd(NewRegistryOptions(f)),
		NewDeleteRegistryCmd(NewRegistryOptions(f)),
		NewGetRegistryCmd(NewRegistryOptions(f)),
		NewGetIamPolicyCmd(NewRegistryOptions(f)),
		NewListRegistriesCmd(NewRegistryOptions(f)),
		NewSetIamPolicyCmd(NewRegistryOptions(f)),
	}
}
