package scheduler

import "sync"

// Latest accepts results only from the newest generation of a repeated
// fetch. A fetch calls Begin before starting and Accept when done; if a newer
// fetch began or already delivered in the meantime, the stale result is
// rejected and the caller drops it.
type Latest struct {
	mu      sync.Mutex
	started uint64
	applied uint64
}

// Begin starts a new generation and returns its number.
func (l *Latest) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started++
	return l.started
}

// Accept reports whether the result of gen may be applied. A generation is
// accepted at most once.
func (l *Latest) Accept(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.started || gen <= l.applied {
		return false
	}
	l.applied = gen
	return true
}
