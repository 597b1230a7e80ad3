package cmd

import (
	"fmt"
	"strings"

	"github.com/iotcore-tools/iotctl/pkg/configuration"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/spf13/cobra"
)

// usage lists every grouped command with its arguments, followed by the
// environment the commands depend on.
func usage(cmd *cobra.Command) string {
	root := cmd.Root()
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [command] [arguments]\n", root.Name())
	for _, g := range root.Groups() {
		fmt.Fprintf(&b, "\n%s\n", g.Title)
		p := util.NewPrinter(&b, 1)
		for _, c := range root.Commands() {
			if c.GroupID != g.ID || c.Hidden {
				continue
			}
			p.AddLine("  "+c.Use, c.Short)
		}
		p.Print()
	}
	fmt.Fprintf(&b, "\nEnvironment variables:\n")
	fmt.Fprintf(&b, "  %s must be set to your Google Cloud project ID\n", configuration.ProjectEnv)
	fmt.Fprintf(&b, "  %s set to the path to your JSON credentials\n", configuration.CredentialsEnv)
	return b.String()
}
