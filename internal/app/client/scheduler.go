package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

type syncer interface {
	Sync(ctx context.Context) bool
}

// Scheduler triggers a sync cycle at a fixed interval. Ticks that land
// while a cycle is still running are dropped by the engine.
type Scheduler struct {
	engine   syncer
	interval time.Duration
	log      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(engine syncer, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		engine:   engine,
		interval: interval,
		log:      log.With("component", "scheduler"),
	}
}

// Start launches the periodic trigger. It also fires one immediate cycle
// so a freshly started client does not wait a full interval. Calling
// Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.log.Info("starting periodic sync", "interval", s.interval)

	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.engine.Sync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("periodic sync stopped")
			return
		case <-ticker.C:
			s.engine.Sync(ctx)
		}
	}
}

// Stop halts the periodic trigger and waits for the loop to exit. The
// scheduler can be started again afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
