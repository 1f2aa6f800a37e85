package option82

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/templexxx/xhex"
)

// Delimiter separates byte pairs in rendered hex.
const Delimiter = ':'

// formatHex renders b as delimited byte pairs.
func formatHex(b []byte, upper bool) string {
	if len(b) == 0 {
		return ""
	}

	digits := make([]byte, len(b)*2)
	xhex.Encode(digits, b)

	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i := 0; i < len(digits); i += 2 {
		if i > 0 {
			sb.WriteByte(Delimiter)
		}
		sb.Write(digits[i : i+2])
	}

	if upper {
		return strings.ToUpper(sb.String())
	}

	return sb.String()
}

// isHexSeparator reports the characters allowed between byte pairs on input.
func isHexSeparator(r rune) bool {
	switch r {
	case ':', '-', '.', '\\':
		return true
	}

	return unicode.IsSpace(r)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// decodeHex strips separators from s and decodes the remaining digits.
func decodeHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if isHexSeparator(r) {
			return -1
		}

		return r
	}, s)

	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits (%d)", ErrMalformedHex, len(clean))
	}
	for i := 0; i < len(clean); i++ {
		if !isHexDigit(clean[i]) {
			return nil, fmt.Errorf("%w: invalid character %q", ErrMalformedHex, clean[i])
		}
	}

	out := make([]byte, len(clean)/2)
	if err := xhex.Decode(out, []byte(strings.ToLower(clean))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}

	return out, nil
}
