package option82_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei-cloud/dhcp_o82/pkg/option82"
)

const (
	circuitAndMAC = "01:06:00:04:02:24:02:06:02:08:00:06:4C:71:0C:45:63:00"
	textCircuit   = "01:19:00:17:54:77:6F:47:69:67:61:62:69:74:45:74:68:65:72:6E:65:74:32:2F:30:2F:36" +
		":02:12:00:10:73:76:6C:67:6F:6C:64:33:31:2D:6F:74:2D:73:77:31"
)

func TestRemoteIDHardwareAddressForms(t *testing.T) {
	t.Parallel()

	want := "01:06:00:04:02:24:02:01:02:08:00:06:4C:71:0C:45:63:00"
	for _, remote := range []string{"4c71.0c45.6300", "4c710c456300", "4c:71:0c:45:63:00"} {
		t.Run(remote, func(t *testing.T) {
			t.Parallel()

			got, err := option82.New(
				option82.WithCircuitTuple(548, 2, 1),
				option82.WithRemoteID(remote),
			).Hex()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCircuitIDFormats(t *testing.T) {
	t.Parallel()

	c, err := option82.Parse(circuitAndMAC)
	require.NoError(t, err)

	cid, ok := c.CircuitID(option82.FormatCircuitID)
	require.True(t, ok)
	assert.Equal(t, "548-2-6", cid)

	cid, ok = c.CircuitID(option82.FormatHex)
	require.True(t, ok)
	assert.Equal(t, "02:24:02:06", cid)

	_, ok = c.CircuitID(option82.FormatString)
	assert.False(t, ok, "packed circuit id is not printable")
}

func TestTextSubOptions(t *testing.T) {
	t.Parallel()

	c, err := option82.Parse(textCircuit)
	require.NoError(t, err)

	cid, ok := c.CircuitID(option82.FormatString)
	require.True(t, ok)
	assert.Equal(t, "TwoGigabitEthernet2/0/6", cid)

	_, ok = c.CircuitID(option82.FormatCircuitID)
	assert.False(t, ok, "only 4-byte values have a vlan-module-port form")

	rid, ok := c.RemoteID(option82.FormatHex)
	require.True(t, ok)
	assert.Equal(t, "73:76:6c:67:6f:6c:64:33:31:2d:6f:74:2d:73:77:31", rid)

	rid, ok = c.RemoteID(option82.FormatString)
	require.True(t, ok)
	assert.Equal(t, "svlgold31-ot-sw1", rid)

	e, ok := c.Entry(option82.RemoteID)
	require.True(t, ok)
	assert.Equal(t, option82.TagText, e.Tag)
}

func TestSubscriberID(t *testing.T) {
	t.Parallel()

	got, err := option82.New(option82.WithSubscriberID("SID")).Hex()
	require.NoError(t, err)
	assert.Equal(t, "06:03:53:49:44", got)

	val := "SOME-RANDOM_STRING FOR TESTING"
	sid, ok := option82.New(option82.WithSubscriberID(val)).SubscriberID(option82.FormatString)
	require.True(t, ok)
	assert.Equal(t, val, sid)

	sid, ok = option82.New(option82.WithSubscriberID("SID")).SubscriberID(option82.FormatHex)
	require.True(t, ok)
	assert.Equal(t, "53:49:44", sid)

	_, ok = option82.New(option82.WithSubscriberID("SID")).SubscriberID(option82.FormatCircuitID)
	assert.False(t, ok)
}

func TestSubscriberIDTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("0123456789", 6)
	c := option82.New().SetSubscriberID(long)

	e, ok := c.Entry(option82.SubscriberID)
	require.True(t, ok)
	assert.Len(t, e.Value, option82.MaxSubscriberIDLen)
	assert.Equal(t, long[:option82.MaxSubscriberIDLen], string(e.Value))

	b, err := c.Bytes()
	require.NoError(t, err)
	assert.Equal(t, byte(option82.MaxSubscriberIDLen), b[1])
}

func TestAscendingOrder(t *testing.T) {
	t.Parallel()

	a, err := option82.New().
		SetSubscriberID("sub").
		SetRemoteID("switch1").
		SetCircuitIDText("ge-0/0/1").
		Hex()
	require.NoError(t, err)

	b, err := option82.New().
		SetCircuitIDText("ge-0/0/1").
		SetRemoteID("switch1").
		SetSubscriberID("sub").
		Hex()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "01:"), "circuit id first: %s", a)

	c, err := option82.Parse(a)
	require.NoError(t, err)
	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, option82.CircuitID, entries[0].ID)
	assert.Equal(t, option82.RemoteID, entries[1].ID)
	assert.Equal(t, option82.SubscriberID, entries[2].ID)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    *option82.Container
	}{
		{
			name: "all three",
			c: option82.New(
				option82.WithCircuitTuple(548, 1, 6),
				option82.WithRemoteID("4c-71-0c-45-63-00"),
				option82.WithSubscriberID("10.1.103.48"),
			),
		},
		{
			name: "text circuit and remote",
			c:    option82.New(option82.WithCircuitText("mystring"), option82.WithRemoteID("MY_SWITCH_NAME")),
		},
		{
			name: "empty values",
			c:    option82.New(option82.WithCircuitText(""), option82.WithSubscriberID("")),
		},
		{
			name: "unknown sub-option",
			c: func() *option82.Container {
				c := option82.New(option82.WithSubscriberID("x"))
				require.NoError(t, c.Set(9, 7, []byte{0xde, 0xad}))

				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := tt.c.Hex()
			require.NoError(t, err)

			decoded, err := option82.Parse(h)
			require.NoError(t, err)
			assert.Equal(t, tt.c.Entries(), decoded.Entries())
		})
	}
}

func TestSettersOverwrite(t *testing.T) {
	t.Parallel()

	c := option82.New().SetRemoteID("4c:71:0c:45:63:00").SetRemoteID("switch1")
	e, ok := c.Entry(option82.RemoteID)
	require.True(t, ok)
	assert.Equal(t, option82.TagText, e.Tag)
	assert.Equal(t, []byte("switch1"), e.Value)
	assert.Equal(t, 1, c.Len())
}

func TestCircuitTupleRequiresAllParts(t *testing.T) {
	t.Parallel()

	c := option82.New(option82.WithCircuitTuple(548, 0, 1))
	assert.Zero(t, c.Len())

	c = option82.New(option82.WithCircuitText("keep")).SetCircuitID(0, 1, 1)
	cid, ok := c.CircuitID(option82.FormatString)
	require.True(t, ok)
	assert.Equal(t, "keep", cid)
}

func TestValueLimits(t *testing.T) {
	t.Parallel()

	c := option82.New()
	err := c.Set(option82.RemoteID, option82.TagText, make([]byte, 254))
	require.ErrorIs(t, err, option82.ErrUnsupportedValue)
	require.NoError(t, c.Set(option82.RemoteID, option82.TagText, make([]byte, 253)))
	require.NoError(t, c.Set(option82.SubscriberID, option82.TagText, make([]byte, 255)))

	b, err := c.Bytes()
	require.NoError(t, err)
	assert.Equal(t, byte(255), b[1], "outer length of a full remote id")

	c = option82.New().SetCircuitIDText(strings.Repeat("a", 300)).SetSubscriberID("ok")
	require.ErrorIs(t, c.Err(), option82.ErrUnsupportedValue)
	_, err = c.Hex()
	require.ErrorIs(t, err, option82.ErrUnsupportedValue)
	_, ok := c.Entry(option82.SubscriberID)
	assert.True(t, ok, "later setters still apply")
}

func TestNonASCIIText(t *testing.T) {
	t.Parallel()

	c := option82.New(option82.WithRemoteID("schalter-ä"))
	require.ErrorIs(t, c.Err(), option82.ErrUnsupportedValue)
	assert.Zero(t, c.Len())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "odd digits", input: "06:0B:3", want: option82.ErrMalformedHex},
		{name: "non hex", input: "06:0G", want: option82.ErrMalformedHex},
		{name: "value past end", input: "06:05:41:42", want: option82.ErrTruncatedInput},
		{name: "framed header cut", input: "01:06:00", want: option82.ErrTruncatedInput},
		{name: "lone id", input: "02", want: option82.ErrTruncatedInput},
		{name: "subscriber without length", input: "06", want: option82.ErrTruncatedInput},
		{name: "framed value past end", input: "01:06:00:04:02:24", want: option82.ErrTruncatedInput},
		{
			name:  "framed value over one byte outer length",
			input: "01:00:01:FE:" + strings.Repeat("41", 254),
			want:  option82.ErrUnsupportedValue,
		},
		{
			name:  "unknown framed value over one byte outer length",
			input: "09:01:00:FF:" + strings.Repeat("41", 255),
			want:  option82.ErrUnsupportedValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := option82.Parse(tt.input)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, c)
		})
	}
}

func TestParseSeparators(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"06:03:53:49:44",
		"06-03-53-49-44",
		"06.03.53.49.44",
		`06\03\53\49\44`,
		"06 03 53 49 44",
		"0603534944",
		"0603:5349.44",
	} {
		c, err := option82.Parse(in)
		require.NoError(t, err, in)

		sid, ok := c.SubscriberID(option82.FormatString)
		require.True(t, ok, in)
		assert.Equal(t, "SID", sid, in)
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	c, err := option82.Parse("")
	require.NoError(t, err)
	assert.Zero(t, c.Len())

	h, err := c.Hex()
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestParseDuplicateLastWins(t *testing.T) {
	t.Parallel()

	c, err := option82.Parse("06:01:41:06:01:42")
	require.NoError(t, err)

	sid, ok := c.SubscriberID(option82.FormatString)
	require.True(t, ok)
	assert.Equal(t, "B", sid)
	assert.Equal(t, 1, c.Len())
}

func TestAbsentSubOption(t *testing.T) {
	t.Parallel()

	c := option82.New(option82.WithSubscriberID("only"))
	for _, f := range []option82.Format{option82.FormatCircuitID, option82.FormatHex, option82.FormatString} {
		_, ok := c.CircuitID(f)
		assert.False(t, ok, f.String())
		_, ok = c.RemoteID(f)
		assert.False(t, ok, f.String())
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]option82.Format{
		"hex":              option82.FormatHex,
		"STRING":           option82.FormatString,
		"vlan-module-port": option82.FormatCircuitID,
		"circuit-id":       option82.FormatCircuitID,
	} {
		got, err := option82.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := option82.ParseFormat("base64")
	assert.Error(t, err)
}
