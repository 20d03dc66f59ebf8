package keymutex

import (
	"sync"
	"testing"
)

func TestSerializesSameKey(t *testing.T) {
	km := New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("emp-1")
			defer km.Unlock("emp-1")
			counter++
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("counter = %d, want %d", counter, goroutines)
	}
}

func TestIndependentKeysDoNotBlock(t *testing.T) {
	km := New()

	km.Lock("emp-1")
	done := make(chan struct{})
	go func() {
		km.Lock("emp-2")
		km.Unlock("emp-2")
		close(done)
	}()
	<-done // would deadlock if emp-2 waited on emp-1
	km.Unlock("emp-1")
}

func TestEntriesAreReleased(t *testing.T) {
	km := New()

	km.Lock("emp-1")
	km.Unlock("emp-1")

	km.mu.Lock()
	n := len(km.locks)
	km.mu.Unlock()
	if n != 0 {
		t.Errorf("locks map has %d entries after release, want 0", n)
	}
}

func TestUnlockWithoutLockPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unlock of unlocked key")
		}
	}()
	New().Unlock("nope")
}
