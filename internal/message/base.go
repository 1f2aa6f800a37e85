package message

import (
	"bytes"
	"fmt"
	"sort"
)

// Message defines the interface for lookup server requests.
type Message interface {
	Get(field string) []byte
	Set(field string, val []byte)
	CommandCode() string
	Trace() string
}

// BaseMessage implements Message and holds request fields.
type BaseMessage struct {
	cmdCode     string
	description string
	Fields      map[string][]byte
}

// NewBaseMessage creates a new BaseMessage with the given code and description.
func NewBaseMessage(cmdCode, description string) *BaseMessage {
	return &BaseMessage{cmdCode: cmdCode, description: description, Fields: make(map[string][]byte)}
}

func (m *BaseMessage) Get(field string) []byte {
	return m.Fields[field]
}

func (m *BaseMessage) Set(field string, val []byte) {
	m.Fields[field] = val
}

func (m *BaseMessage) CommandCode() string {
	return m.cmdCode
}

func (m *BaseMessage) Trace() string {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Command: %s - %s\n", m.cmdCode, m.description))
	for _, k := range keys {
		buf.WriteString(fmt.Sprintf("\t[%s]=%q\n", k, m.Fields[k]))
	}

	return buf.String()
}
