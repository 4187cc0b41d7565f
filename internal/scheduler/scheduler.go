package scheduler

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type eventReloader interface {
	LoadEvents(ctx context.Context) error
}

// Scheduler refreshes the event collection from the backend every interval.
type Scheduler struct {
	reloader eventReloader
	clock    clockwork.Clock
	interval time.Duration
	logger   logger.Logger
}

func New(
	reloader eventReloader,
	clock clockwork.Clock,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reloader: reloader,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.Chan():
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	start := s.clock.Now()
	if err := s.reloader.LoadEvents(ctx); err != nil {
		s.logger.Error("failed to reload events",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("events reloaded",
		logger.Duration("took", s.clock.Since(start)),
	)
}
