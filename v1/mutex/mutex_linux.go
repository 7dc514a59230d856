//go:build linux && !hostmutex_nomt

package mutex

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Backend names the native facility compiled into this build.
const Backend = "futex"

// Futex opcodes from the kernel ABI. x/sys/unix exports only the
// syscall number, not the operation constants.
const (
	futexWaitOp      = 0
	futexWakeOp      = 1
	futexPrivateFlag = 128
)

// osMutex is a futex-backed lock. The state word holds 0 (unowned),
// 1 (owned, no waiters) or 2 (owned, possible waiters).
type osMutex struct {
	state uint32
}

func (m *osMutex) init()    {}
func (m *osMutex) destroy() {}

func (m *osMutex) lock() {
	// Fast path: take an uncontended lock.
	if atomic.CompareAndSwapUint32(&m.state, 0, 1) {
		return
	}

	// Mark the lock contended and sleep until the owner wakes us.
	for atomic.SwapUint32(&m.state, 2) != 0 {
		futexWait(&m.state, 2)
	}
}

func (m *osMutex) unlock() {
	// An unlock of an unowned mutex is not detected: the swap reads 0
	// and wakes nobody.
	if atomic.SwapUint32(&m.state, 0) == 2 {
		futexWake(&m.state)
	}
}

// futexWait sleeps until the word at addr no longer holds val and a
// wake is posted. EAGAIN (word already changed) and EINTR both return
// immediately; the caller's swap loop rechecks the state either way.
func futexWait(addr *uint32, val uint32) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWaitOp|futexPrivateFlag),
		uintptr(val), 0, 0, 0)
}

// futexWake unblocks at most one thread sleeping on addr.
func futexWake(addr *uint32) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWakeOp|futexPrivateFlag),
		1, 0, 0, 0)
}
