//go:build !linux

package netutil

// RaiseFileLimit is a no-op outside Linux.
func RaiseFileLimit(soft uint64) error {
	return nil
}
