package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// job is one periodic task with its cadence.
type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Scheduler runs each registered job in its own goroutine on a fixed cadence
// until stopped. Jobs fire once immediately on start.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a task to run on the given interval.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: interval, run: run})
	slog.Info("cron job registered", "job", name, "interval", interval)
}

// Start launches the registered jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()
			s.loop(j)
		}(j)
	}

	slog.Info("cron scheduler started", "jobs", len(s.jobs))
}

// Stop cancels every job and blocks until the loops drain.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("cron scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.fire(j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.fire(j)
		}
	}
}

func (s *Scheduler) fire(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("cron job failed", "job", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("cron job finished", "job", j.name, "duration", time.Since(start))
}
