//go:build hostmutex_nomt

package mutex

// Backend names the native facility compiled into this build.
const Backend = "none"

// osMutex is the single-threaded variant: every operation is empty and
// nothing ever blocks. Selecting it for a build that does run multiple
// threads forfeits mutual exclusion; the tag is a promise, not a check.
type osMutex struct{}

func (m *osMutex) init()    {}
func (m *osMutex) destroy() {}
func (m *osMutex) lock()    {}
func (m *osMutex) unlock()  {}
