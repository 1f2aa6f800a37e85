package option82

import (
	"net"
	"testing"
)

func TestParseHardwareAddr(t *testing.T) {
	t.Parallel()

	want := net.HardwareAddr{0x4c, 0x71, 0x0c, 0x45, 0x63, 0x00}
	tests := []struct {
		in string
		ok bool
	}{
		{"4c:71:0c:45:63:00", true},
		{"4C-71-0C-45-63-00", true},
		{"4c:71:c:45:63:0", true},
		{"4c71.0c45.6300", true},
		{"4c71.c45.6300", true},
		{"4c710c456300", true},
		{"4c710c:456300", true},
		{"4c710c-456300", true},
		{"4c:71:0c-45:63:00", false},
		{"4c710c45630", false},
		{"4c:71:0c:45:63", false},
		{"4c:71:0c:45:63:00:11", false},
		{"4c:71::45:63:00", false},
		{"switch1", false},
		{"MY_SWITCH_NAME", false},
		{"4c:71:0c:45:63:zz", false},
		{"", false},
	}

	for _, tt := range tests {
		got, ok := ParseHardwareAddr(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseHardwareAddr(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.String() != want.String() {
			t.Errorf("ParseHardwareAddr(%q) = %s, want %s", tt.in, got, want)
		}
	}
}

func TestSubOptionRegistry(t *testing.T) {
	t.Parallel()

	names := map[SubOptionID]string{
		CircuitID:    "CIRCUIT_ID",
		RemoteID:     "REMOTE_ID",
		SubscriberID: "SUBSCRIBER_ID",
		3:            "UNKNOWN",
		255:          "UNKNOWN",
	}
	for id, want := range names {
		if got := id.String(); got != want {
			t.Errorf("SubOptionID(%d).String() = %s, want %s", id, got, want)
		}
	}

	if SubscriberID.Framed() || !CircuitID.Framed() || !SubOptionID(9).Framed() {
		t.Error("only the subscriber id is written without format tag framing")
	}

	for _, id := range []SubOptionID{0, 3, 9, 255} {
		if id.Known() {
			t.Errorf("SubOptionID(%d).Known() = true", id)
		}
	}

	ids := KnownSubOptions()
	for _, id := range ids {
		if !id.Known() {
			t.Errorf("SubOptionID(%d).Known() = false", id)
		}
	}
	if len(ids) != 3 || ids[0] != CircuitID || ids[1] != RemoteID || ids[2] != SubscriberID {
		t.Errorf("KnownSubOptions() = %v", ids)
	}
}
