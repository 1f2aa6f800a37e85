// Package cli contains utilities for CLI operations.
package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/andrei-cloud/dhcp_o82/pkg/option82"
)

// ErrNoSubOptions is returned when no sub-option value is supplied.
var ErrNoSubOptions = errors.New(
	"at least one option (circuit, remote, or subscriber id) must be passed",
)

var circuitTuplePattern = regexp.MustCompile(`^(\d*)-(\d*)-(\d*)`)

// Circuit is a parsed circuit id argument: either a vlan-module-port tuple or text.
type Circuit struct {
	Vlan   uint16
	Module uint8
	Port   uint8
	Text   string
	Tuple  bool
}

// ParseCircuitArg interprets "vlan-module-port" (e.g. 548-1-6) as a tuple and
// anything else as literal text.
func ParseCircuitArg(s string) (Circuit, error) {
	m := circuitTuplePattern.FindStringSubmatch(s)
	if m == nil || m[1] == "" || m[2] == "" || m[3] == "" {
		return Circuit{Text: s}, nil
	}

	vlan, err := strconv.ParseUint(m[1], 10, 16)
	if err != nil {
		return Circuit{}, fmt.Errorf("%w: vlan %s out of range", option82.ErrUnsupportedValue, m[1])
	}
	module, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return Circuit{}, fmt.Errorf("%w: module %s out of range", option82.ErrUnsupportedValue, m[2])
	}
	port, err := strconv.ParseUint(m[3], 10, 8)
	if err != nil {
		return Circuit{}, fmt.Errorf("%w: port %s out of range", option82.ErrUnsupportedValue, m[3])
	}

	return Circuit{Vlan: uint16(vlan), Module: uint8(module), Port: uint8(port), Tuple: true}, nil
}

// Apply stores the circuit id in c.
func (ci Circuit) Apply(c *option82.Container) *option82.Container {
	if ci.Tuple {
		return c.SetCircuitID(ci.Vlan, ci.Module, ci.Port)
	}

	return c.SetCircuitIDText(ci.Text)
}

// Encode builds a container from the textual sub-option values. Empty values
// are skipped; at least one must be present.
func Encode(circuitID, remoteID, subscriberID string) (*option82.Container, error) {
	if circuitID == "" && remoteID == "" && subscriberID == "" {
		return nil, ErrNoSubOptions
	}

	c := option82.New()
	if circuitID != "" {
		ci, err := ParseCircuitArg(circuitID)
		if err != nil {
			return nil, err
		}
		ci.Apply(c)
	}
	if remoteID != "" {
		c.SetRemoteID(remoteID)
	}
	if subscriberID != "" {
		c.SetSubscriberID(subscriberID)
	}

	if err := c.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// EncodeHex is Encode followed by serialization.
func EncodeHex(circuitID, remoteID, subscriberID string) (string, error) {
	c, err := Encode(circuitID, remoteID, subscriberID)
	if err != nil {
		return "", err
	}

	return c.Hex()
}
