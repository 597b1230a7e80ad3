package docs

var (
	CompletionDocs = CommandDoc{
		Short: "Generate shell completion scripts",
		Long:  `iotctl can generate autocompletion scripts for your current shell. See examples for more details on your specific shell.`,
		Examples: []ExampleDoc{
			{
				Description: "Bash:",
				Command: `mkdir -p ~/.local/share/bash-completion
iotctl completion bash | tee ~/.local/share/bash-completion/iotctl`,
			},
			{
				Description: `ZSH:
If shell completion is not already enabled in your environment,
you will need to enable it.  You can execute the following once:`,
				Command: `echo "autoload -U compinit; compinit" >> ~/.zshrc`,
			},
			{
				Description: "Fish:",
				Command:     "iotctl completion fish | tee ~/.config/fish/completions/iotctl.fish",
			},
			{
				Description: "PowerShell:",
				Command:     "iotctl completion powershell | Out-String | Invoke-Expression",
			},
		},
	}
)
