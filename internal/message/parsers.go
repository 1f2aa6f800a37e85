package message

import (
	"fmt"
	"net/url"

	"github.com/andrei-cloud/dhcp_o82/internal/errorcodes"
)

// Command codes understood by the lookup server.
const (
	CodeInspect = "IN"
	CodeCreate  = "CR"
)

// Field names.
const (
	FieldHex          = "Hex"
	FieldCircuitID    = "Circuit ID"
	FieldRemoteID     = "Remote ID"
	FieldSubscriberID = "Subscriber ID"
)

// NewIN parses an IN Inspect request: the payload is the option hex string.
func NewIN(data []byte) *BaseMessage {
	m := NewBaseMessage(CodeInspect, "Inspect option 82 hex")
	m.Set(FieldHex, data)

	return m
}

// NewCR parses a CR Create request. The payload is a URL-encoded query with
// any of circuit_id, remote_id and subscriber_id.
func NewCR(data []byte) (*BaseMessage, error) {
	q, err := url.ParseQuery(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorcodes.Err15, err)
	}

	m := NewBaseMessage(CodeCreate, "Create option 82 hex")
	for field, key := range map[string]string{
		FieldCircuitID:    "circuit_id",
		FieldRemoteID:     "remote_id",
		FieldSubscriberID: "subscriber_id",
	} {
		if v := q.Get(key); v != "" {
			m.Set(field, []byte(v))
		}
	}

	return m, nil
}
