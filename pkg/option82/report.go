package option82

import (
	"fmt"
	"strings"
)

// String returns the diagnostic listing: the hex encoding, a blank line, then
// one block per sub-option in ascending id order.
func (c *Container) String() string {
	var sb strings.Builder

	sb.WriteString(formatHex(c.wire(), true))
	sb.WriteString("\n\n")

	for _, e := range c.Entries() {
		length := len(e.Value)
		if e.ID.Framed() {
			length += 2
		}

		fmt.Fprintf(&sb, "sub-option: %d (%#x), name: %s, length: %d (%#x)\n",
			int(e.ID), int(e.ID), e.ID.String(), length, length)
		if e.ID.Framed() {
			fmt.Fprintf(&sb, "  type: %d (%#x), length: %d (%#x)\n",
				int(e.Tag), int(e.Tag), length-2, length-2)
		}
		fmt.Fprintf(&sb, "  val: %s\n", formatHex(e.Value, false))

		if e.ID == CircuitID {
			if s, ok := c.CircuitID(FormatCircuitID); ok {
				fmt.Fprintf(&sb, "  vlan-module-port: %s\n", s)
			}
			if s, ok := c.CircuitID(FormatString); ok {
				fmt.Fprintf(&sb, "  string: %s\n", s)
			}
		} else if s, ok := c.Value(e.ID, FormatString); ok && s != "" {
			fmt.Fprintf(&sb, "  string: %s\n", s)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
