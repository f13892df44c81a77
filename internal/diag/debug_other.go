//go:build !windows

package diag

// platformDebugOutput reports that no debug stream exists on this platform.
func platformDebugOutput() (func([]uint16), bool) {
	return nil, false
}
