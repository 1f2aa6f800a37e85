// Package option82 encodes and decodes the DHCP Relay Agent Information option
// (option 82) sub-options: circuit id, remote id and subscriber id.
package option82
