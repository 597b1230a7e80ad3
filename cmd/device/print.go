package device

import (
	"fmt"
	"io"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/iotcore-tools/iotctl/pkg/util"
)

func printSummary(out io.Writer, d *cloudiot.Device) {
	fmt.Fprintf(out, "Device: %s\n", d.ID)
	fmt.Fprintf(out, "\tBlocked: %t\n", d.Blocked)
	fmt.Fprintf(out, "\tLast Event Time: %s\n", d.LastEventTime)
	fmt.Fprintf(out, "\tLast State Time: %s\n", d.LastStateTime)
	fmt.Fprintf(out, "\tName: %s\n", d.Name)
}

func printCertificateFormats(out io.Writer, d *cloudiot.Device) {
	fmt.Fprintln(out, "\tCertificate formats:")
	if len(d.Credentials) == 0 {
		fmt.Fprintln(out, "\t\tNo certificates for device")
		return
	}
	for _, c := range d.Credentials {
		fmt.Fprintf(out, "\t\t%s\n", c.GetFormat())
	}
}

// printDevice writes the device as JSON or as the text summary, optionally
// followed by the certificate formats.
func printDevice(opts *DeviceOptions, d *cloudiot.Device, withCredentials bool) error {
	if opts.useJSON {
		return util.PrintJSON(opts.Out, d)
	}
	printSummary(opts.Out, d)
	if withCredentials {
		printCertificateFormats(opts.Out, d)
	}
	return nil
}
