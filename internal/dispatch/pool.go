// Package dispatch runs detached background jobs on a fixed set of workers
// fed by a bounded queue. Jobs sharing a key run one at a time in the order
// they were submitted; jobs with different keys run in parallel.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrQueueFull is returned when the queue cannot accept more jobs.
	ErrQueueFull = errors.New("dispatch queue is full")

	// ErrClosed is returned when submitting to a pool that is shutting down.
	ErrClosed = errors.New("dispatch pool is closed")
)

// Job is one unit of detached work. Jobs with the same non-empty Key are
// serialized; an empty Key opts out of serialization.
type Job struct {
	Key  string
	Name string
	Run  func(ctx context.Context) error
}

// Config configures a Pool.
type Config struct {
	Workers    int           // Number of concurrent workers
	QueueSize  int           // Max jobs accepted but not yet started
	JobTimeout time.Duration // Per-job deadline; zero means none
}

// DefaultConfig returns sensible defaults for a single-user CLI.
func DefaultConfig() Config {
	return Config{
		Workers:    2,
		QueueSize:  64,
		JobTimeout: 90 * time.Second,
	}
}

// Pool is a bounded worker pool with per-key ordering.
type Pool struct {
	cfg    Config
	logger *zap.Logger

	mu      sync.Mutex
	ready   chan Job         // jobs whose key is free, in submission order
	pending map[string][]Job // jobs waiting behind a running job with the same key
	active  map[string]bool  // keys with a job queued in ready or running
	queued  int              // accepted jobs not yet started
	closed  bool

	workerWg sync.WaitGroup
	done     chan struct{}
}

// NewPool starts cfg.Workers workers. Non-positive sizes fall back to
// DefaultConfig values.
func NewPool(cfg Config, logger *zap.Logger) *Pool {
	def := DefaultConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pool{
		cfg:     cfg,
		logger:  logger,
		ready:   make(chan Job, cfg.QueueSize),
		pending: make(map[string][]Job),
		active:  make(map[string]bool),
		done:    make(chan struct{}),
	}

	p.workerWg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}
	go func() {
		p.workerWg.Wait()
		close(p.done)
	}()
	return p
}

// TrySubmit enqueues job without blocking. It returns ErrQueueFull when the
// queue is at capacity and ErrClosed after Close; the job is dropped in both
// cases.
func (p *Pool) TrySubmit(job Job) error {
	if job.Run == nil {
		return fmt.Errorf("dispatch job %q has no Run func", job.Name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.queued >= p.cfg.QueueSize {
		return ErrQueueFull
	}
	p.queued++

	if job.Key != "" && p.active[job.Key] {
		p.pending[job.Key] = append(p.pending[job.Key], job)
		return nil
	}
	if job.Key != "" {
		p.active[job.Key] = true
	}
	// Never blocks: ready holds at most queued jobs and queued <= cap(ready).
	p.ready <- job
	return nil
}

// Queued reports how many accepted jobs have not started yet.
func (p *Pool) Queued() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queued
}

// Close stops intake and waits for queued and running jobs to finish or for
// ctx to end, whichever comes first. It is safe to call more than once.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.ready)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		p.logger.Warn("dispatch pool drain interrupted",
			zap.Int("queued", p.Queued()),
			zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for job := range p.ready {
		for {
			p.mu.Lock()
			p.queued--
			p.mu.Unlock()

			p.execute(job)

			next, ok := p.nextForKey(job.Key)
			if !ok {
				break
			}
			job = next
		}
	}
}

// nextForKey hands the worker the next job waiting on key, or releases the
// key when none is waiting.
func (p *Pool) nextForKey(key string) (Job, bool) {
	if key == "" {
		return Job{}, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	q := p.pending[key]
	if len(q) == 0 {
		delete(p.pending, key)
		delete(p.active, key)
		return Job{}, false
	}
	next := q[0]
	if len(q) == 1 {
		delete(p.pending, key)
	} else {
		p.pending[key] = q[1:]
	}
	return next, true
}

func (p *Pool) execute(job Job) {
	ctx, cancel := p.jobContext()
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("dispatch job panicked",
				zap.String("job", job.Name),
				zap.String("key", job.Key),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	if err := job.Run(ctx); err != nil {
		p.logger.Warn("dispatch job failed",
			zap.String("job", job.Name),
			zap.String("key", job.Key),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return
	}
	p.logger.Debug("dispatch job completed",
		zap.String("job", job.Name),
		zap.String("key", job.Key),
		zap.Duration("elapsed", time.Since(start)))
}

// jobContext detaches every job from its submitter; only the configured
// timeout bounds it.
func (p *Pool) jobContext() (context.Context, context.CancelFunc) {
	if p.cfg.JobTimeout > 0 {
		return context.WithTimeout(context.Background(), p.cfg.JobTimeout)
	}
	return context.WithCancel(context.Background())
}
