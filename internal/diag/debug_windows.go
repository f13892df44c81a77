//go:build windows

package diag

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procOutputDebugStringW = modkernel32.NewProc("OutputDebugStringW")
)

// platformDebugOutput returns an OutputDebugStringW writer.
func platformDebugOutput() (func([]uint16), bool) {
	if err := procOutputDebugStringW.Find(); err != nil {
		return nil, false
	}
	return func(s []uint16) {
		if len(s) == 0 {
			return
		}
		procOutputDebugStringW.Call(uintptr(unsafe.Pointer(&s[0])))
	}, true
}
