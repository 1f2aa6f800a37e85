package option82

import (
	"net"
	"strings"

	"github.com/templexxx/xhex"
)

// hwAddrLen is the length of an EUI-48 hardware address.
const hwAddrLen = 6

// ParseHardwareAddr parses s as a 48-bit hardware address. Accepted layouts
// use a single separator kind throughout:
//
//	4c:71:0c:45:63:00  4c-71-0c-45-63-00  (six groups, leading zeros optional)
//	4c71.0c45.6300                        (three groups of four)
//	4c710c:456300      4c710c-456300      (two groups of six)
//	4c710c456300                          (bare)
//
// The boolean is false when s is not an address; callers treat it as text.
func ParseHardwareAddr(s string) (net.HardwareAddr, bool) {
	var sep rune
	for _, r := range s {
		if r != ':' && r != '-' && r != '.' {
			continue
		}
		if sep != 0 && r != sep {
			return nil, false
		}
		sep = r
	}

	groups := []string{s}
	if sep != 0 {
		groups = strings.Split(s, string(sep))
	}

	var width int
	switch len(groups) {
	case 1:
		width = 12
	case 2:
		width = 6
	case 3:
		width = 4
	case 6:
		width = 2
	default:
		return nil, false
	}

	digits := make([]byte, 0, hwAddrLen*2)
	for _, g := range groups {
		if g == "" || len(g) > width {
			return nil, false
		}
		// bare and split-in-two forms must be complete.
		if len(groups) <= 2 && len(g) != width {
			return nil, false
		}
		for i := 0; i < len(g); i++ {
			if !isHexDigit(g[i]) {
				return nil, false
			}
		}
		for i := len(g); i < width; i++ {
			digits = append(digits, '0')
		}
		digits = append(digits, strings.ToLower(g)...)
	}

	addr := make(net.HardwareAddr, hwAddrLen)
	if err := xhex.Decode(addr, digits); err != nil {
		return nil, false
	}

	return addr, true
}
