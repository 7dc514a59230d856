// Package mutex provides a thread-level mutual-exclusion primitive backed
// by the host platform's native facility. Exactly one backend is compiled
// into a given build: a Windows critical section, a Linux futex, or a
// no-op variant selected with the hostmutex_nomt build tag for programs
// that run a single thread of execution. On any other platform the
// package fails to compile unless hostmutex_nomt is set, since silently
// falling back to the no-op variant would lose mutual exclusion.
package mutex
