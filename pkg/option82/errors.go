package option82

import "errors"

var (
	// ErrMalformedHex is returned for odd-length input or non-hex characters.
	ErrMalformedHex = errors.New("malformed hex")
	// ErrTruncatedInput is returned when a declared length runs past the input.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrUnsupportedValue is returned when a value cannot be represented on the wire.
	ErrUnsupportedValue = errors.New("unsupported value")
)
