package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type registrationSweeper interface {
	SweepOrphans(ctx context.Context) ([]*domain.Registration, error)
}

// Scheduler periodically removes registrations whose session row has been
// deleted by the schedule import, so they never linger in storage.
type Scheduler struct {
	bookingService registrationSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService registrationSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	removed, err := s.bookingService.SweepOrphans(ctx)
	if err != nil {
		s.logger.Error("failed to sweep orphaned registrations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, reg := range removed {
		s.logger.Info("orphaned registration removed",
			logger.String("registration_id", reg.ID),
			logger.String("user_id", reg.UserID),
			logger.Int64("session_id", reg.SessionID),
		)
	}
}
