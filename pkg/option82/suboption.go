package option82

import "slices"

// SubOptionID identifies a relay agent sub-option.
type SubOptionID uint8

// Recognized sub-options. Any other id is carried opaquely.
const (
	CircuitID    SubOptionID = 1
	RemoteID     SubOptionID = 2
	SubscriberID SubOptionID = 6
)

// FormatTag marks a framed sub-option value as structured binary or literal text.
type FormatTag uint8

const (
	TagStructured FormatTag = 0
	TagText       FormatTag = 1
)

const unknownName = "UNKNOWN"

var subOptionNames = map[SubOptionID]string{
	CircuitID:    "CIRCUIT_ID",
	RemoteID:     "REMOTE_ID",
	SubscriberID: "SUBSCRIBER_ID",
}

// String returns the registry name of the sub-option, or UNKNOWN.
func (id SubOptionID) String() string {
	if !id.Known() {
		return unknownName
	}

	return subOptionNames[id]
}

// Known reports whether the id is one of the recognized sub-options.
func (id SubOptionID) Known() bool {
	_, ok := subOptionNames[id]
	return ok
}

// Framed reports whether the value is wrapped in a format tag and inner length.
// The subscriber id is the only sub-option written without that framing.
func (id SubOptionID) Framed() bool {
	return id != SubscriberID
}

// maxValueLen is the largest value that still fits the one-byte length fields.
func (id SubOptionID) maxValueLen() int {
	if id.Framed() {
		return 0xff - 2
	}

	return 0xff
}

// KnownSubOptions returns the recognized sub-option ids in ascending order.
func KnownSubOptions() []SubOptionID {
	ids := make([]SubOptionID, 0, len(subOptionNames))
	for id := range subOptionNames {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
