package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/service/ports"
)

// BookingService coordinates registration and cancellation against the
// ledger. It never pre-checks for an existing registration: the unique
// constraint is the arbiter, which keeps double-clicks and parallel tabs
// race-free.
type BookingService struct {
	registrationRepo ports.RegistrationRepo
	sessionRepo      ports.SessionRepo
	memberRepo       ports.MemberRepo
	notifier         ports.BookingNotifier
	logger           logger.Logger
}

func NewBookingService(
	registrationRepo ports.RegistrationRepo,
	sessionRepo ports.SessionRepo,
	memberRepo ports.MemberRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		registrationRepo: registrationRepo,
		sessionRepo:      sessionRepo,
		memberRepo:       memberRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

func (s *BookingService) Register(ctx context.Context, userID string, sessionID int64) (*domain.Registration, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	if !session.Category.Bookable() {
		return nil, fmt.Errorf("%w: news entries cannot be booked", domain.ErrSessionNotOpen)
	}

	member, err := s.memberRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}

	reg := &domain.Registration{
		ID:        uuid.New().String(),
		UserID:    userID,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("user_id", userID),
		logger.Int64("session_id", sessionID),
	)

	go s.notifier.NotifyRegistered(context.WithoutCancel(ctx), member, session)

	return reg, nil
}

// Cancel deletes the (userID, sessionID) registration. A cancel that matches
// nothing still succeeds: the booking may have been cancelled from another
// tab, and that race is not worth surfacing to the user.
func (s *BookingService) Cancel(ctx context.Context, userID string, sessionID int64) error {
	removed, err := s.registrationRepo.Delete(ctx, userID, sessionID)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	if !removed {
		s.logger.Info("cancel matched no registration",
			logger.String("user_id", userID),
			logger.Int64("session_id", sessionID),
		)
		return nil
	}

	s.logger.Info("registration cancelled",
		logger.String("user_id", userID),
		logger.Int64("session_id", sessionID),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), userID, sessionID)

	return nil
}

// SweepOrphans reclaims registrations whose session row was removed
// administratively. The schedule join already hides them; this keeps the
// ledger from accumulating dead rows.
func (s *BookingService) SweepOrphans(ctx context.Context) ([]*domain.Registration, error) {
	orphaned, err := s.registrationRepo.DeleteOrphaned(ctx)
	if err != nil {
		return nil, fmt.Errorf("sweep orphans: %w", err)
	}

	if len(orphaned) > 0 {
		s.logger.Info("orphaned registrations removed",
			logger.Int("count", len(orphaned)),
		)
	}

	return orphaned, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, userID string, sessionID int64) {
	member, err := s.memberRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get member for cancel notification",
			logger.String("user_id", userID),
		)
		return
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to get session for cancel notification",
			logger.Int64("session_id", sessionID),
		)
		return
	}

	s.notifier.NotifyCancelled(ctx, member, session)
}
