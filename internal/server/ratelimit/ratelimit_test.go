package ratelimit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	l := NewLimiter(5)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		info := l.Allow("client-a")
		assert.True(t, info.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 5, info.Limit)
	}

	info := l.Allow("client-a")
	assert.False(t, info.Allowed)
	assert.Greater(t, info.RetryAfter.Seconds(), 0.0)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(1)
	defer l.Stop()

	require.True(t, l.Allow("client-a").Allowed)
	assert.False(t, l.Allow("client-a").Allowed)
	assert.True(t, l.Allow("client-b").Allowed)
}

func TestLimiter_ZeroLimitDisables(t *testing.T) {
	l := NewLimiter(0)
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		require.True(t, l.Allow("client-a").Allowed)
	}
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	l := NewLimiter(100)
	defer l.Stop()

	var wg sync.WaitGroup
	allowed := make([]int, 10)
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if l.Allow("shared").Allowed {
					allowed[g]++
				}
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, n := range allowed {
		total += n
	}
	// 200 attempts against a bucket of 100; refill during the test may
	// admit a few extra.
	assert.GreaterOrEqual(t, total, 100)
	assert.Less(t, total, 150)
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	l := NewLimiter(10)
	l.Stop()
	l.Stop()
}
