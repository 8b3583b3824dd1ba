package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(t *testing.T) (*TTLCache[string], *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New[string](time.Hour, WithClock[string](clk.Now)), clk
}

func TestGetOrLoad_HitWithinWindow(t *testing.T) {
	c, clk := newTestCache(t)
	var calls int
	load := func(context.Context) (string, error) {
		calls++
		return "v1", nil
	}

	e, hit, err := c.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "v1", e.Value)

	clk.Advance(59 * time.Minute)
	e2, hit, err := c.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, e.FetchedAt, e2.FetchedAt)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoad_ReloadsAfterExpiry(t *testing.T) {
	c, clk := newTestCache(t)
	var calls int
	load := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "old", nil
		}
		return "new", nil
	}

	_, _, err := c.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)

	clk.Advance(time.Hour)
	e, hit, err := c.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "new", e.Value)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_ErrorNotCached(t *testing.T) {
	c, _ := newTestCache(t)
	boom := errors.New("boom")

	_, _, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "", boom
	})
	require.ErrorIs(t, err, boom)

	_, ok := c.Get("k")
	assert.False(t, ok)

	e, _, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", e.Value)
}

func TestGetOrLoad_LoadSurvivesCallerCancel(t *testing.T) {
	c, _ := newTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, _, err := c.GetOrLoad(ctx, "k", func(loadCtx context.Context) (string, error) {
			close(started)
			<-release
			if err := loadCtx.Err(); err != nil {
				return "", err
			}
			return "v", nil
		})
		done <- err
	}()

	<-started
	cancel()
	close(release)

	require.NoError(t, <-done)
	e, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", e.Value)
}

func TestGetOrLoad_KeysAreIndependent(t *testing.T) {
	c, _ := newTestCache(t)
	a, _, _ := c.GetOrLoad(context.Background(), "a", func(context.Context) (string, error) { return "A", nil })
	b, _, _ := c.GetOrLoad(context.Background(), "b", func(context.Context) (string, error) { return "B", nil })
	assert.Equal(t, "A", a.Value)
	assert.Equal(t, "B", b.Value)
}

func TestGetOrLoad_ConcurrentMissesShareOneLoad(t *testing.T) {
	c, _ := newTestCache(t)
	var calls atomic.Int32
	release := make(chan struct{})

	load := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	started := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started <- struct{}{}
			e, _, err := c.GetOrLoad(context.Background(), "k", load)
			if err == nil {
				results[i] = e.Value
			}
		}(i)
	}
	for i := 0; i < n; i++ {
		<-started
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
}

func TestFreshAndInvalidate(t *testing.T) {
	c, clk := newTestCache(t)
	e := c.Set("k", "v")
	assert.True(t, c.Fresh(e))

	clk.Advance(2 * time.Hour)
	assert.False(t, c.Fresh(e))

	c.Set("k", "v2")
	c.Invalidate("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, time.Hour, c.TTL())
}
