package contact

import (
	"strings"
	"sync"
)

// Guard rejects a submission while another one for the same submitter is
// still in flight. It is safe for concurrent use.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire claims key, which is compared case-insensitively. It returns false
// if the key is already held; otherwise the caller must call release.
func (g *Guard) Acquire(key string) (release func(), ok bool) {
	key = strings.ToLower(strings.TrimSpace(key))

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[key]; busy {
		return nil, false
	}
	g.inflight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, true
}

// InFlight returns the number of held keys.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inflight)
}
