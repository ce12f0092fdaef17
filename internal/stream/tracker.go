package stream

import "sync"

// Tracker counts open streams per endpoint.
type Tracker struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]int)}
}

// Open registers an open stream for endpoint and returns the func that releases it.
func (t *Tracker) Open(endpoint string) (release func()) {
	t.mu.Lock()
	t.counts[endpoint]++
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			t.counts[endpoint]--
			t.mu.Unlock()
		})
	}
}

// Snapshot returns the current count per endpoint.
func (t *Tracker) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		snapshot[k] = v
	}
	return snapshot
}
