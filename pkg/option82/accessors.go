package option82

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Format selects how an accessor renders a sub-option value.
type Format int

const (
	// FormatCircuitID renders a 4-byte circuit id as vlan-module-port.
	FormatCircuitID Format = iota
	// FormatHex renders the value as lowercase colon-delimited hex.
	FormatHex
	// FormatString renders the value as text when every byte is printable ASCII.
	FormatString
)

var formatNames = map[Format]string{
	FormatCircuitID: "vlan-module-port",
	FormatHex:       "hex",
	FormatString:    "string",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	if name == "circuit-id" {
		return FormatCircuitID, nil
	}

	return 0, fmt.Errorf("unknown format %q", name)
}

// Value renders sub-option id in format f. The boolean is false when the
// sub-option is absent or has no representation in that format.
func (c *Container) Value(id SubOptionID, f Format) (string, bool) {
	e, ok := c.subOptions[id]
	if !ok {
		return "", false
	}

	switch f {
	case FormatHex:
		return formatHex(e.Value, false), true
	case FormatString:
		return printable(e.Value)
	case FormatCircuitID:
		if id != CircuitID || len(e.Value) != 4 {
			return "", false
		}
		vlan := binary.BigEndian.Uint16(e.Value[0:2])

		return fmt.Sprintf("%d-%d-%d", vlan, e.Value[2], e.Value[3]), true
	}

	return "", false
}

// CircuitID renders the circuit id.
func (c *Container) CircuitID(f Format) (string, bool) {
	return c.Value(CircuitID, f)
}

// RemoteID renders the remote id.
func (c *Container) RemoteID(f Format) (string, bool) {
	return c.Value(RemoteID, f)
}

// SubscriberID renders the subscriber id.
func (c *Container) SubscriberID(f Format) (string, bool) {
	return c.Value(SubscriberID, f)
}

func printable(b []byte) (string, bool) {
	for _, ch := range b {
		if ch < 0x20 || ch > 0x7e {
			return "", false
		}
	}

	return string(b), true
}
