package mutex

// Do runs fn while holding m, releasing it on every exit path including
// a panic inside fn. Prefer Do over manual Lock/Unlock pairs when fn
// has early returns.
func (m *Mutex) Do(fn func()) {
	m.Lock()
	defer m.Unlock()
	fn()
}
