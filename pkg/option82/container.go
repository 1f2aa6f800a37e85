package option82

import (
	"fmt"
	"slices"

	"github.com/u-root/uio/uio"
)

// Entry is a single decoded sub-option.
type Entry struct {
	ID    SubOptionID
	Tag   FormatTag
	Value []byte
}

// Container holds the sub-options of one relay agent information option.
// Sub-options are always serialized in ascending id order.
//
// Setters record the first error they hit and keep returning the container so
// calls can be chained; the error surfaces from Err, Bytes and Hex.
type Container struct {
	subOptions map[SubOptionID]Entry
	err        error
}

// Option configures a Container built with New.
type Option func(*Container)

// WithCircuitTuple sets the circuit id from vlan, module and port.
func WithCircuitTuple(vlan uint16, module, port uint8) Option {
	return func(c *Container) { c.SetCircuitID(vlan, module, port) }
}

// WithCircuitText sets the circuit id to literal text.
func WithCircuitText(s string) Option {
	return func(c *Container) { c.SetCircuitIDText(s) }
}

// WithRemoteID sets the remote id, as a hardware address when s parses as one.
func WithRemoteID(s string) Option {
	return func(c *Container) { c.SetRemoteID(s) }
}

// WithSubscriberID sets the subscriber id.
func WithSubscriberID(s string) Option {
	return func(c *Container) { c.SetSubscriberID(s) }
}

// New returns a container with the given sub-options applied in order.
func New(opts ...Option) *Container {
	c := &Container{subOptions: make(map[SubOptionID]Entry)}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Set stores a raw sub-option, replacing any previous value for id.
// Values that cannot be framed with one-byte lengths are rejected.
func (c *Container) Set(id SubOptionID, tag FormatTag, value []byte) error {
	if limit := id.maxValueLen(); len(value) > limit {
		return fmt.Errorf(
			"%w: sub-option %d value is %d bytes, limit is %d",
			ErrUnsupportedValue, id, len(value), limit,
		)
	}

	v := make([]byte, len(value))
	copy(v, value)
	c.subOptions[id] = Entry{ID: id, Tag: tag, Value: v}

	return nil
}

// Entry returns the sub-option stored under id.
func (c *Container) Entry(id SubOptionID) (Entry, bool) {
	e, ok := c.subOptions[id]
	return e, ok
}

// Entries returns a copy of all sub-options in ascending id order.
func (c *Container) Entries() []Entry {
	ids := make([]SubOptionID, 0, len(c.subOptions))
	for id := range c.subOptions {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		e := c.subOptions[id]
		e.Value = slices.Clone(e.Value)
		entries = append(entries, e)
	}

	return entries
}

// Len returns the number of sub-options.
func (c *Container) Len() int {
	return len(c.subOptions)
}

// Err returns the first error recorded by a setter.
func (c *Container) Err() error {
	return c.err
}

func (c *Container) record(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// Bytes returns the wire encoding of the container.
func (c *Container) Bytes() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	for _, e := range c.Entries() {
		if limit := e.ID.maxValueLen(); len(e.Value) > limit {
			return nil, fmt.Errorf(
				"%w: sub-option %d value is %d bytes, limit is %d",
				ErrUnsupportedValue, e.ID, len(e.Value), limit,
			)
		}
	}

	return c.wire(), nil
}

// Hex returns the wire encoding as uppercase colon-delimited byte pairs.
func (c *Container) Hex() (string, error) {
	b, err := c.Bytes()
	if err != nil {
		return "", err
	}

	return formatHex(b, true), nil
}

// wire serializes without validation; lengths are truncated to one byte.
func (c *Container) wire() []byte {
	buf := uio.NewBigEndianBuffer(nil)
	for _, e := range c.Entries() {
		buf.Write8(uint8(e.ID))
		if e.ID.Framed() {
			buf.Write8(uint8(len(e.Value) + 2))
			buf.Write8(uint8(e.Tag))
		}
		buf.Write8(uint8(len(e.Value)))
		buf.WriteBytes(e.Value)
	}

	return buf.Data()
}

// Parse decodes a hex string. Pairs may be separated by ':', '-', '.', '\'
// or whitespace. An empty string yields an empty container.
func Parse(s string) (*Container, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}

	return ParseBytes(b)
}

// ParseBytes decodes the wire encoding of the sub-options.
func ParseBytes(b []byte) (*Container, error) {
	c := New()
	buf := uio.NewBigEndianBuffer(b)

	for buf.Len() > 0 {
		offset := len(b) - buf.Len()
		id := SubOptionID(buf.Read8())

		header := 1
		if id.Framed() {
			header = 3
		}
		if buf.Len() < header {
			return nil, fmt.Errorf(
				"%w: sub-option %d at offset %d: header needs %d bytes, have %d",
				ErrTruncatedInput, id, offset, header, buf.Len(),
			)
		}

		tag := TagText
		if id.Framed() {
			// outer length; the inner length below is authoritative.
			buf.Read8()
			tag = FormatTag(buf.Read8())
		}

		n := int(buf.Read8())
		if limit := id.maxValueLen(); n > limit {
			return nil, fmt.Errorf(
				"%w: sub-option %d at offset %d: value is %d bytes, limit is %d",
				ErrUnsupportedValue, id, offset, n, limit,
			)
		}
		if buf.Len() < n {
			return nil, fmt.Errorf(
				"%w: sub-option %d at offset %d: value needs %d bytes, have %d",
				ErrTruncatedInput, id, offset, n, buf.Len(),
			)
		}

		value := make([]byte, n)
		buf.ReadBytes(value)
		c.subOptions[id] = Entry{ID: id, Tag: tag, Value: value}
	}

	if err := buf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedInput, err)
	}

	return c, nil
}
