package option82

import (
	"encoding/binary"
	"fmt"
)

// MaxSubscriberIDLen is the number of bytes of a subscriber id that are kept.
// Most relay agents truncate at this length.
const MaxSubscriberIDLen = 50

// SetCircuitID stores the circuit id as vlan (two bytes, big endian), module
// and port. Nothing is stored unless all three are non-zero.
func (c *Container) SetCircuitID(vlan uint16, module, port uint8) *Container {
	if vlan == 0 || module == 0 || port == 0 {
		return c
	}

	value := binary.BigEndian.AppendUint16(make([]byte, 0, 4), vlan)
	value = append(value, module, port)
	c.record(c.Set(CircuitID, TagStructured, value))

	return c
}

// SetCircuitIDText stores the circuit id as literal text.
func (c *Container) SetCircuitIDText(s string) *Container {
	c.record(c.setText(CircuitID, s))
	return c
}

// SetRemoteID stores the remote id as a 6-byte hardware address when s parses
// as one, otherwise as literal text.
func (c *Container) SetRemoteID(s string) *Container {
	if addr, ok := ParseHardwareAddr(s); ok {
		c.record(c.Set(RemoteID, TagStructured, addr))
		return c
	}
	c.record(c.setText(RemoteID, s))

	return c
}

// SetSubscriberID stores the first MaxSubscriberIDLen bytes of s as text.
func (c *Container) SetSubscriberID(s string) *Container {
	if len(s) > MaxSubscriberIDLen {
		s = s[:MaxSubscriberIDLen]
	}
	c.record(c.setText(SubscriberID, s))

	return c
}

func (c *Container) setText(id SubOptionID, s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return fmt.Errorf("%w: sub-option %d: non-ASCII text %q", ErrUnsupportedValue, id, s)
		}
	}

	return c.Set(id, TagText, []byte(s))
}
