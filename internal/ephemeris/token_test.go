package ephemeris

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCacheCachesUntilExpiry(t *testing.T) {
	var calls int32
	cache := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		return "tok", time.Hour, nil
	}, time.Second)

	for i := 0; i < 5; i++ {
		tok, err := cache.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok", tok)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTokenCacheRefreshesBeforeExpiry(t *testing.T) {
	var calls int32
	cache := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			// First token expires almost immediately relative to the skew.
			return "first", 10 * time.Millisecond, nil
		}
		return "second", time.Hour, nil
	}, 5*time.Millisecond)

	tok, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", tok)

	time.Sleep(20 * time.Millisecond)

	tok, err = cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTokenCacheSingleFlight(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	cache := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "tok", time.Hour, nil
	}, time.Second)

	const concurrency = 16
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			tok, err := cache.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "tok", tok)
		}()
	}

	// Let all goroutines pile onto the refresh before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent callers must share one refresh")
}

func TestTokenCacheInvalidate(t *testing.T) {
	var calls int32
	cache := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		return "tok", time.Hour, nil
	}, time.Second)

	_, err := cache.Token(context.Background())
	require.NoError(t, err)

	cache.Invalidate()

	_, err = cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTokenCachePropagatesFetchError(t *testing.T) {
	boom := errors.New("exchange down")
	cache := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		return "", 0, boom
	}, time.Second)

	_, err := cache.Token(context.Background())
	assert.ErrorIs(t, err, boom)
}
