package cmd

import (
	"fmt"
	"io"
	"net/url"

	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/factory"
	"github.com/iotcore-tools/iotctl/pkg/resource"
	"github.com/iotcore-tools/iotctl/pkg/util"
	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const consoleHost = "console.cloud.google.com"

// NewOpenCmd return a new open command
func NewOpenCmd(f *factory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "open [location] [registry_id]",
		Short: "Open the Cloud IoT console in your default browser",
		Args:  cmdutil.MaximumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			addr, err := consoleURL(f.Config.Project, util.ArgAt(args, 0), util.ArgAt(args, 1))
			if err != nil {
				return err
			}
			browser.Stderr = io.Discard
			browser.Stdout = io.Discard
			if err := browser.OpenURL(addr); err != nil {
				log.Warnf("could not open %s in your default browser.", addr)
				fmt.Fprintln(f.IOOutWriter, addr)
			}
			return nil
		},
	}
}

// consoleURL links to the registry list of the project, or to a single
// registry when both location and registry are known.
func consoleURL(project, location, registry string) (string, error) {
	if project == "" {
		return "", resource.ErrMissingProject
	}
	u := url.URL{
		Scheme: "https",
		Host:   consoleHost,
		Path:   "/iot/registries",
	}
	if location != "" && registry != "" {
		u.Path = fmt.Sprintf("/iot/locations/%s/registries/%s", location, registry)
	}
	q := u.Query()
	q.Set("project", project)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
