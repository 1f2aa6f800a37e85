package cli

import (
	"fmt"
	"io"

	"github.com/andrei-cloud/dhcp_o82/pkg/option82"
)

var subOptionDescriptions = map[option82.SubOptionID]string{
	option82.CircuitID:    "vlan-module-port tuple or text",
	option82.RemoteID:     "hardware address or text",
	option82.SubscriberID: "text, truncated to 50 characters",
}

// PrintSubOptions writes the recognized sub-options in ascending id order.
func PrintSubOptions(w io.Writer) {
	fmt.Fprintln(w, "Supported sub-options:")
	fmt.Fprintln(w, "----------------------")
	for _, id := range option82.KnownSubOptions() {
		fmt.Fprintf(w, "%d (%#x) %s: %s\n", int(id), int(id), id, subOptionDescriptions[id])
	}
}
