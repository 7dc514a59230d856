package mutex

// noCopy triggers the vet copylocks check when a Mutex is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Mutex is a mutual-exclusion lock that is either unowned or owned by
// exactly one thread. A Mutex must be created with New, must not be
// copied, and must not be closed while owned.
//
// Mutex satisfies sync.Locker.
type Mutex struct {
	noCopy noCopy
	os     osMutex
}

// New returns an unowned Mutex with its native handle initialized.
func New() *Mutex {
	m := &Mutex{}
	m.os.init()
	return m
}

// Lock blocks the calling thread until it obtains exclusive ownership
// of m. There is no timeout and no cancellation; the order in which
// waiting threads acquire ownership is up to the native primitive.
func (m *Mutex) Lock() { m.os.lock() }

// Unlock releases ownership of m, potentially unblocking one waiter.
// The caller must own m; unlocking an unowned Mutex is a contract
// violation whose outcome is whatever the native primitive does.
func (m *Mutex) Unlock() { m.os.unlock() }

// Close releases the native handle. m must be unowned and must not be
// used afterwards.
func (m *Mutex) Close() { m.os.destroy() }
