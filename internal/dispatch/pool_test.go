package dispatch

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
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func closePool(t *testing.T, p *Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))
}

func TestPool_RunsAllJobsBeforeCloseReturns(t *testing.T) {
	p := NewPool(Config{Workers: 3, QueueSize: 50}, zap.NewNop())

	var ran atomic.Int32
	for i := 0; i < 30; i++ {
		require.NoError(t, p.TrySubmit(Job{Name: "count", Run: func(context.Context) error {
			time.Sleep(time.Millisecond)
			ran.Add(1)
			return nil
		}}))
	}

	closePool(t, p)
	assert.Equal(t, int32(30), ran.Load())
	assert.Zero(t, p.Queued())
}

func TestPool_DropsOnOverflow(t *testing.T) {
	p := NewPool(Config{Workers: 1, QueueSize: 2}, zap.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, p.TrySubmit(Job{Name: "blocker", Run: func(context.Context) error {
		close(started)
		<-release
		return nil
	}}))
	<-started

	noop := Job{Name: "noop", Run: func(context.Context) error { return nil }}
	require.NoError(t, p.TrySubmit(noop))
	require.NoError(t, p.TrySubmit(noop))

	err := p.TrySubmit(noop)
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 2, p.Queued())

	close(release)
	closePool(t, p)
}

func TestPool_SameKeyRunsInSubmissionOrder(t *testing.T) {
	p := NewPool(Config{Workers: 4, QueueSize: 100}, zap.NewNop())

	var (
		mu       sync.Mutex
		order    []int
		inFlight atomic.Int32
		overlap  atomic.Bool
	)
	for i := 0; i < 20; i++ {
		i := i
		require.NoError(t, p.TrySubmit(Job{Key: "user-1", Name: "ordered", Run: func(context.Context) error {
			if inFlight.Add(1) > 1 {
				overlap.Store(true)
			}
			defer inFlight.Add(-1)
			time.Sleep(time.Duration(20-i) * 100 * time.Microsecond)
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		}}))
	}

	closePool(t, p)
	assert.False(t, overlap.Load(), "jobs for one key must not overlap")
	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, order)
}

func TestPool_DifferentKeysRunInParallel(t *testing.T) {
	p := NewPool(Config{Workers: 2, QueueSize: 4}, zap.NewNop())

	var started sync.WaitGroup
	started.Add(2)
	both := make(chan struct{})
	go func() {
		started.Wait()
		close(both)
	}()

	for _, key := range []string{"user-1", "user-2"} {
		require.NoError(t, p.TrySubmit(Job{Key: key, Name: "parallel", Run: func(ctx context.Context) error {
			started.Done()
			select {
			case <-both:
				return nil
			case <-time.After(2 * time.Second):
				return errors.New("peer job never started")
			}
		}}))
	}

	select {
	case <-both:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs with different keys did not run concurrently")
	}
	closePool(t, p)
}

func TestPool_RecoversFromPanic(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := NewPool(Config{Workers: 1, QueueSize: 4}, zap.New(core))

	var after atomic.Bool
	require.NoError(t, p.TrySubmit(Job{Key: "u", Name: "explode", Run: func(context.Context) error {
		panic("boom")
	}}))
	require.NoError(t, p.TrySubmit(Job{Key: "u", Name: "survivor", Run: func(context.Context) error {
		after.Store(true)
		return nil
	}}))

	closePool(t, p)
	assert.True(t, after.Load(), "worker must keep running after a panic")

	panics := logs.FilterMessage("dispatch job panicked").All()
	require.Len(t, panics, 1)
	assert.Equal(t, "explode", panics[0].ContextMap()["job"])
}

func TestPool_LogsJobErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := NewPool(Config{Workers: 1, QueueSize: 1}, zap.New(core))

	require.NoError(t, p.TrySubmit(Job{Key: "u", Name: "failing", Run: func(context.Context) error {
		return errors.New("model unavailable")
	}}))
	closePool(t, p)

	entries := logs.FilterMessage("dispatch job failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "model unavailable", entries[0].ContextMap()["error"])
}

func TestPool_JobContextIsDetachedWithTimeout(t *testing.T) {
	p := NewPool(Config{Workers: 1, QueueSize: 1, JobTimeout: 50 * time.Millisecond}, zap.NewNop())

	result := make(chan error, 1)
	require.NoError(t, p.TrySubmit(Job{Name: "slow", Run: func(ctx context.Context) error {
		<-ctx.Done()
		result <- ctx.Err()
		return ctx.Err()
	}}))

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("job context never expired")
	}
	closePool(t, p)
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := NewPool(Config{Workers: 1, QueueSize: 1}, zap.NewNop())
	closePool(t, p)
	closePool(t, p)

	err := p.TrySubmit(Job{Name: "late", Run: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPool_RejectsJobWithoutRun(t *testing.T) {
	p := NewPool(Config{Workers: 1, QueueSize: 1}, zap.NewNop())
	defer closePool(t, p)

	assert.Error(t, p.TrySubmit(Job{Name: "empty"}))
}

func TestPool_CloseHonorsContext(t *testing.T) {
	p := NewPool(Config{Workers: 1, QueueSize: 1}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, p.TrySubmit(Job{Name: "stuck", Run: func(context.Context) error {
		close(started)
		<-release
		return nil
	}}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Close(ctx), context.DeadlineExceeded)

	close(release)
	closePool(t, p)
}

func TestNewPool_DefaultsForNonPositiveSizes(t *testing.T) {
	p := NewPool(Config{}, nil)
	defer closePool(t, p)

	assert.Equal(t, DefaultConfig().Workers, p.cfg.Workers)
	assert.Equal(t, DefaultConfig().QueueSize, p.cfg.QueueSize)
}
