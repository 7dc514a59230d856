//go:build windows && !hostmutex_nomt

package mutex

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Backend names the native facility compiled into this build.
const Backend = "critical_section"

// x/sys/windows does not wrap the critical-section family, so the
// kernel32 procedures are resolved lazily.
var (
	kernel32                      = windows.NewLazySystemDLL("kernel32.dll")
	procInitializeCriticalSection = kernel32.NewProc("InitializeCriticalSection")
	procEnterCriticalSection      = kernel32.NewProc("EnterCriticalSection")
	procLeaveCriticalSection      = kernel32.NewProc("LeaveCriticalSection")
	procDeleteCriticalSection     = kernel32.NewProc("DeleteCriticalSection")
)

// criticalSection matches the Win32 CRITICAL_SECTION layout on both
// 386 and amd64/arm64.
type criticalSection struct {
	debugInfo      uintptr
	lockCount      int32
	recursionCount int32
	owningThread   uintptr
	lockSemaphore  uintptr
	spinCount      uintptr
}

// osMutex wraps a CRITICAL_SECTION. The section must keep a stable
// address for its whole lifetime, which New guarantees by heap-allocating
// the enclosing Mutex.
type osMutex struct {
	cs criticalSection
}

func (m *osMutex) init() {
	_, _, _ = procInitializeCriticalSection.Call(uintptr(unsafe.Pointer(&m.cs)))
}

func (m *osMutex) destroy() {
	_, _, _ = procDeleteCriticalSection.Call(uintptr(unsafe.Pointer(&m.cs)))
}

func (m *osMutex) lock() {
	// The section records its owning OS thread, so the goroutine must
	// stay on that thread until it unlocks.
	runtime.LockOSThread()
	_, _, _ = procEnterCriticalSection.Call(uintptr(unsafe.Pointer(&m.cs)))
}

func (m *osMutex) unlock() {
	_, _, _ = procLeaveCriticalSection.Call(uintptr(unsafe.Pointer(&m.cs)))
	runtime.UnlockOSThread()
}
