package contact

import (
	"sync"
	"testing"
)

func TestGuard_RejectsConcurrentSameKey(t *testing.T) {
	g := NewGuard()

	release, ok := g.Acquire("Ada@Example.com")
	if !ok {
		t.Fatal("first Acquire() = false, want true")
	}
	if _, ok := g.Acquire(" ada@example.com "); ok {
		t.Error("Acquire() with same key in different case = true, want false")
	}
	if _, ok := g.Acquire("bob@example.com"); !ok {
		t.Error("Acquire() for a different key = false, want true")
	}

	release()
	release()

	if _, ok := g.Acquire("ada@example.com"); !ok {
		t.Error("Acquire() after release = false, want true")
	}
}

func TestGuard_ConcurrentAcquire(t *testing.T) {
	g := NewGuard()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := g.Acquire("same@example.com"); ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	if winners != 1 {
		t.Errorf("winners = %d, want 1", winners)
	}
	if g.InFlight() != 1 {
		t.Errorf("InFlight() = %d, want 1", g.InFlight())
	}
}
