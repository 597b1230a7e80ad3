package main

import (
	"os"

	"github.com/iotcore-tools/iotctl/cmd"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
)

func main() {
	os.Exit(int(cmdutil.ExecuteCommand(cmd.NewCmdRoot())))
}
