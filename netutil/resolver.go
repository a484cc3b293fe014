package netutil

import (
	"fmt"
	"net"
	"strings"

	"portsniffer/port"
)

// ParseAddress parses an IPv4 or IPv6 literal. Host names are not resolved.
func ParseAddress(s string) (net.IP, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty address", port.ErrInvalidTarget)
	}
	// accept the bracketed form users copy from URLs
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, fmt.Errorf("%w: %q is not an IPv4 or IPv6 address", port.ErrInvalidTarget, s)
	}
	if v4 := ip.To4(); v4 != nil {
		return v4, nil
	}
	return ip, nil
}
