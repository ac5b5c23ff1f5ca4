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
)

var coursesKey = Key{Kind: "courses"}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "courses", Key{Kind: "courses"}.String())
	assert.Equal(t, "lessons-by-course/c1", Key{Kind: "lessons-by-course", Param: "c1"}.String())
}

func TestFetch_ConcurrentReadersShareOneCall(t *testing.T) {
	store := New()
	defer store.Close()

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(context.Context) ([]string, error) {
		calls.Add(1)
		<-release
		return []string{"c1", "c2"}, nil
	}

	const readers = 50
	var wg sync.WaitGroup
	results := make([][]string, readers)
	errs := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Fetch(context.Background(), store, coursesKey, fetch)
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []string{"c1", "c2"}, results[i])
	}
}

func TestFetch_ServesFreshValueWithoutCalling(t *testing.T) {
	store := New()
	defer store.Close()

	var calls int
	fetch := func(context.Context) (string, error) {
		calls++
		return "v", nil
	}

	for i := 0; i < 3; i++ {
		v, err := Fetch(context.Background(), store, coursesKey, fetch)
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	}
	assert.Equal(t, 1, calls)

	value, ok, freshness := store.Read(coursesKey)
	assert.True(t, ok)
	assert.Equal(t, Fresh, freshness)
	assert.Equal(t, "v", value)
}

func TestInvalidate_NextFetchCallsAgain(t *testing.T) {
	store := New()
	defer store.Close()

	var calls int
	fetch := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := Fetch(context.Background(), store, coursesKey, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, store.Invalidate(coursesKey))
	assert.Equal(t, 1, calls, "invalidate must not fetch")

	value, ok, freshness := store.Read(coursesKey)
	assert.True(t, ok)
	assert.Equal(t, Stale, freshness)
	assert.Equal(t, 1, value)

	v, err = Fetch(context.Background(), store, coursesKey, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestInvalidate_UnknownKeyIsNoop(t *testing.T) {
	store := New()
	defer store.Close()

	require.NoError(t, store.Invalidate(Key{Kind: "course", Param: "missing"}))
	_, ok, _ := store.Read(Key{Kind: "course", Param: "missing"})
	assert.False(t, ok)
}

func TestInvalidateKind(t *testing.T) {
	store := New()
	defer store.Close()

	c1 := Key{Kind: "lessons-by-course", Param: "c1"}
	c2 := Key{Kind: "lessons-by-course", Param: "c2"}
	require.NoError(t, store.Write(c1, "a"))
	require.NoError(t, store.Write(c2, "b"))
	require.NoError(t, store.Write(coursesKey, "c"))

	require.NoError(t, store.InvalidateKind("lessons-by-course"))

	_, _, f1 := store.Read(c1)
	_, _, f2 := store.Read(c2)
	_, _, fc := store.Read(coursesKey)
	assert.Equal(t, Stale, f1)
	assert.Equal(t, Stale, f2)
	assert.Equal(t, Fresh, fc)
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	store := New()
	defer store.Close()

	remoteErr := errors.New("service unavailable")
	var calls int
	fetch := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", remoteErr
		}
		return "ok", nil
	}

	_, err := Fetch(context.Background(), store, coursesKey, fetch)
	assert.Same(t, remoteErr, err)

	_, ok, _ := store.Read(coursesKey)
	assert.False(t, ok)

	v, err := Fetch(context.Background(), store, coursesKey, fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestFetch_FailedRefetchKeepsPreviousValue(t *testing.T) {
	store := New()
	defer store.Close()

	require.NoError(t, store.Write(coursesKey, "before"))
	require.NoError(t, store.Invalidate(coursesKey))

	_, err := Fetch(context.Background(), store, coursesKey, func(context.Context) (string, error) {
		return "", errors.New("boom")
	})
	require.Error(t, err)

	value, ok, freshness := store.Read(coursesKey)
	assert.True(t, ok)
	assert.Equal(t, "before", value)
	assert.Equal(t, Stale, freshness)
}

func TestFetch_InvalidationDuringFlight(t *testing.T) {
	store := New()
	defer store.Close()

	var calls, inFlight, maxInFlight atomic.Int32
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	fetch := func(context.Context) (int32, error) {
		n := calls.Add(1)
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			prev := maxInFlight.Load()
			if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
				break
			}
		}
		started <- struct{}{}
		if n == 1 {
			<-release
		}
		return n, nil
	}

	first := make(chan int32, 1)
	go func() {
		v, _ := Fetch(context.Background(), store, coursesKey, fetch)
		first <- v
	}()
	<-started

	require.NoError(t, store.Invalidate(coursesKey))

	second := make(chan int32, 1)
	go func() {
		v, _ := Fetch(context.Background(), store, coursesKey, fetch)
		second <- v
	}()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "second reader must wait for the in-flight call")
	close(release)

	assert.Equal(t, int32(1), <-first)
	assert.Equal(t, int32(2), <-second)
	assert.Equal(t, int32(1), maxInFlight.Load())

	value, ok, freshness := store.Read(coursesKey)
	assert.True(t, ok)
	assert.Equal(t, Fresh, freshness)
	assert.Equal(t, int32(2), value)
}

func TestFetch_WriteDuringFlightWins(t *testing.T) {
	store := New()
	defer store.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan string, 1)
	go func() {
		v, _ := Fetch(context.Background(), store, coursesKey, func(context.Context) (string, error) {
			close(started)
			<-release
			return "remote", nil
		})
		done <- v
	}()
	<-started

	require.NoError(t, store.Write(coursesKey, "local"))
	close(release)
	assert.Equal(t, "remote", <-done)

	value, _, freshness := store.Read(coursesKey)
	assert.Equal(t, "local", value)
	assert.Equal(t, Fresh, freshness)
}

func TestFetch_CancelledCallerStillCommits(t *testing.T) {
	store := New()
	defer store.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		_, err := Fetch(ctx, store, coursesKey, func(fetchCtx context.Context) (string, error) {
			close(started)
			<-release
			return "late", fetchCtx.Err()
		})
		errc <- err
	}()
	<-started

	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)

	close(release)
	require.Eventually(t, func() bool {
		value, ok, freshness := store.Read(coursesKey)
		return ok && freshness == Fresh && value == "late"
	}, time.Second, 5*time.Millisecond)
}

func TestFetch_PanicBecomesError(t *testing.T) {
	store := New()
	defer store.Close()

	_, err := Fetch(context.Background(), store, coursesKey, func(context.Context) (string, error) {
		panic("kaboom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestSubscribe(t *testing.T) {
	store := New()
	defer store.Close()

	events, cancel, err := store.Subscribe(coursesKey)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, store.Write(coursesKey, "v1"))
	ev := <-events
	assert.Equal(t, Event{Key: coursesKey, Kind: Updated, Value: "v1"}, ev)

	require.NoError(t, store.Invalidate(coursesKey))
	ev = <-events
	assert.Equal(t, Invalidated, ev.Kind)

	_, err = Fetch(context.Background(), store, coursesKey, func(context.Context) (string, error) {
		return "v2", nil
	})
	require.NoError(t, err)
	ev = <-events
	assert.Equal(t, Updated, ev.Kind)
	assert.Equal(t, "v2", ev.Value)
}

func TestSubscribe_LatestWins(t *testing.T) {
	store := New()
	defer store.Close()

	events, cancel, err := store.Subscribe(coursesKey)
	require.NoError(t, err)

	require.NoError(t, store.Write(coursesKey, "v1"))
	require.NoError(t, store.Write(coursesKey, "v2"))
	require.NoError(t, store.Write(coursesKey, "v3"))

	ev := <-events
	assert.Equal(t, "v3", ev.Value)

	cancel()
	_, open := <-events
	assert.False(t, open)
	assert.NotPanics(t, cancel)
}

func TestClose(t *testing.T) {
	store := New()

	events, _, err := store.Subscribe(coursesKey)
	require.NoError(t, err)
	require.NoError(t, store.Write(coursesKey, "v"))
	<-events

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, open := <-events
	assert.False(t, open)

	_, err = Fetch(context.Background(), store, coursesKey, func(context.Context) (string, error) {
		t.Fatal("fetch after close")
		return "", nil
	})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, store.Write(coursesKey, "x"), ErrClosed)
	assert.ErrorIs(t, store.Invalidate(coursesKey), ErrClosed)
	_, _, err = store.Subscribe(coursesKey)
	assert.ErrorIs(t, err, ErrClosed)

	_, ok, _ := store.Read(coursesKey)
	assert.False(t, ok)
}

func TestFetch_TypeMismatch(t *testing.T) {
	store := New()
	defer store.Close()

	require.NoError(t, store.Write(coursesKey, 42))
	_, err := Fetch(context.Background(), store, coursesKey, func(context.Context) (string, error) {
		return "x", nil
	})
	require.Error(t, err)
}
