package cmdutil

import "github.com/spf13/pflag"

// AddJSONFlag registers the --json output switch shared by every resource command.
func AddJSONFlag(flags *pflag.FlagSet, target *bool) {
	flags.BoolVar(target, "json", false, "Display the response resource in JSON format")
}

func AddPageSizeFlag(flags *pflag.FlagSet, target *int, resource string) {
	flags.IntVar(target, "page-size", 0, "Maximum number of "+resource+" to read, the service default is used when 0")
}
