// Package errorcodes defines lookup server response codes using a structured type.
// ResponseError holds the two-character code and human-readable description.
package errorcodes

import (
	"errors"

	"github.com/andrei-cloud/dhcp_o82/internal/cli"
	"github.com/andrei-cloud/dhcp_o82/pkg/option82"
)

// Predefined response codes.
var (
	Err00 = ResponseError{"00", "No error"}
	Err15 = ResponseError{
		"15",
		"Invalid input data (invalid format, invalid characters, or not enough data provided)",
	}
	Err41 = ResponseError{"41", "Internal software error"}
	Err68 = ResponseError{"68", "Command not recognized"}
	Err80 = ResponseError{"80", "Data length error"}
)

// ResponseError represents a server error with its code and description.
type ResponseError struct {
	Code        string // two-character response code
	Description string // human-readable description
}

// Error implements the Go error interface: "<Code>: <Description>".
func (e ResponseError) Error() string {
	return e.Code + ": " + e.Description
}

// CodeOnly returns only the response code (e.g., "15"), for embedding in responses.
func (e ResponseError) CodeOnly() string {
	return e.Code
}

// FromError maps a codec or request error to the response code sent on the wire.
func FromError(err error) ResponseError {
	var re ResponseError
	switch {
	case err == nil:
		return Err00
	case errors.As(err, &re):
		return re
	case errors.Is(err, option82.ErrTruncatedInput):
		return Err80
	case errors.Is(err, option82.ErrMalformedHex),
		errors.Is(err, option82.ErrUnsupportedValue),
		errors.Is(err, cli.ErrNoSubOptions):
		return Err15
	default:
		return Err41
	}
}
