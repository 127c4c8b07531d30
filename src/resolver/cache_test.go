// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := newMemoryCache(time.Minute)

	_, ok := c.Get("example.com")
	assert.False(t, ok, "miss on empty cache")

	want := Record{Domain: "example.com", State: StateNormal, Registrar: "Example Registrar"}
	c.Set("example.com", want)

	got, ok := c.Get("example.com")
	assert.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = c.Get("other.com")
	assert.False(t, ok, "keys are independent")
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := newMemoryCache(10 * time.Millisecond)
	c.Set("example.com", Record{Domain: "example.com"})

	_, ok := c.Get("example.com")
	assert.True(t, ok, "fresh entry is served")

	time.Sleep(20 * time.Millisecond)

	_, ok = c.Get("example.com")
	assert.False(t, ok, "expired entry is gone")

	// The lazy delete also cleared the slot.
	c.mu.RLock()
	_, exists := c.entries["example.com"]
	c.mu.RUnlock()
	assert.False(t, exists)
}

func TestMemoryCacheOverwriteRefreshesTTL(t *testing.T) {
	c := newMemoryCache(30 * time.Millisecond)
	c.Set("example.com", Record{Domain: "example.com", State: StateExpiring})

	time.Sleep(20 * time.Millisecond)
	c.Set("example.com", Record{Domain: "example.com", State: StateNormal})
	time.Sleep(20 * time.Millisecond)

	got, ok := c.Get("example.com")
	assert.True(t, ok, "overwrite restarts the TTL clock")
	assert.Equal(t, StateNormal, got.State)
}

func TestMemoryCacheFlush(t *testing.T) {
	c := newMemoryCache(time.Minute)
	c.Set("a.com", Record{Domain: "a.com"})
	c.Set("b.com", Record{Domain: "b.com"})

	c.Flush()

	_, ok := c.Get("a.com")
	assert.False(t, ok)
	_, ok = c.Get("b.com")
	assert.False(t, ok)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := newMemoryCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("example.com", Record{Domain: "example.com"})
				c.Get("example.com")
			}
		}()
	}
	wg.Wait()

	_, ok := c.Get("example.com")
	assert.True(t, ok)
}
