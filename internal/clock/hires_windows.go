//go:build windows

package clock

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procQPF     = modkernel32.NewProc("QueryPerformanceFrequency")
	procQPC     = modkernel32.NewProc("QueryPerformanceCounter")

	tickFrequency = queryFrequency()
)

// queryFrequency reads the QPC frequency. Windows guarantees it is fixed at
// boot, so reading it once is enough.
func queryFrequency() int64 {
	var freq int64
	r1, _, err := procQPF.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

func readTicks() int64 {
	var count int64
	procQPC.Call(uintptr(unsafe.Pointer(&count)))
	return count
}
