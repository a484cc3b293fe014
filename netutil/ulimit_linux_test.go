//go:build linux

package netutil

import (
	"syscall"
	"testing"
)

func TestRaiseFileLimit_NeverLowers(t *testing.T) {
	var before syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &before); err != nil {
		t.Fatalf("getrlimit: %v", err)
	}
	if err := RaiseFileLimit(1); err != nil {
		t.Fatalf("RaiseFileLimit: %v", err)
	}
	var after syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &after); err != nil {
		t.Fatalf("getrlimit: %v", err)
	}
	if after.Cur != before.Cur {
		t.Fatalf("soft limit changed from %d to %d", before.Cur, after.Cur)
	}
}
