package cmd

import (
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/docs"
	"github.com/spf13/cobra"
)

// NewCmdCompletion represents the completion command
func NewCmdCompletion() *cobra.Command {
	var completionCmd = &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     docs.CompletionDocs.Short,
		Long:      docs.CompletionDocs.Long,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cmdutil.FlagErrorArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		Example:   docs.CompletionDocs.ExampleString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return completionCmd
}
