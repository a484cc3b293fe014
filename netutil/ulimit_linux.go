//go:build linux

package netutil

import (
	"fmt"
	"syscall"
)

// RaiseFileLimit lifts the soft RLIMIT_NOFILE to soft, clamped to the hard
// limit. Every in-flight probe holds a descriptor.
func RaiseFileLimit(soft uint64) error {
	var l syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &l); err != nil {
		return fmt.Errorf("getrlimit: %w", err)
	}
	if soft > l.Max {
		soft = l.Max
	}
	if l.Cur >= soft {
		return nil
	}
	l.Cur = soft
	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &l); err != nil {
		return fmt.Errorf("setrlimit: %w", err)
	}
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &l); err != nil {
		return fmt.Errorf("getrlimit: %w", err)
	}
	if l.Cur != soft {
		return fmt.Errorf("setrlimit: asked %d, got %d", soft, l.Cur)
	}
	return nil
}
