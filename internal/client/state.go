package client

import (
	"context"
	"errors"
	"sync"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

// BookingState caches which sessions a member is booked onto so the UI can
// annotate the schedule without a round trip per session. It is safe for
// concurrent use.
type BookingState struct {
	client *Client
	userID string

	mu     sync.RWMutex
	booked map[int64]struct{}
}

func NewBookingState(client *Client, userID string) *BookingState {
	return &BookingState{
		client: client,
		userID: userID,
		booked: make(map[int64]struct{}),
	}
}

// Refresh replaces the cached set with the server's view.
func (s *BookingState) Refresh(ctx context.Context) error {
	sessions, err := s.client.Schedule(ctx, s.userID)
	if err != nil {
		return err
	}

	booked := make(map[int64]struct{}, len(sessions))
	for _, sess := range sessions {
		booked[sess.ID] = struct{}{}
	}

	s.mu.Lock()
	s.booked = booked
	s.mu.Unlock()

	return nil
}

func (s *BookingState) IsRegistered(sessionID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.booked[sessionID]
	return ok
}

// Register books the session and refetches the cached set from the server,
// so bookings made from other tabs land in the cache too. A conflict
// response means the booking already exists server-side and refetches as
// well.
func (s *BookingState) Register(ctx context.Context, sessionID int64) error {
	err := s.client.Register(ctx, s.userID, sessionID)
	if err != nil && !errors.Is(err, domain.ErrAlreadyRegistered) {
		return err
	}

	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		// The server holds the booking even though the refetch failed.
		// Patch the stale set so lookups stay truthful until the next
		// successful refresh.
		s.mu.Lock()
		s.booked[sessionID] = struct{}{}
		s.mu.Unlock()
	}

	return err
}

// Cancel removes the booking and refetches the cached set from the server.
func (s *BookingState) Cancel(ctx context.Context, sessionID int64) error {
	if err := s.client.Cancel(ctx, s.userID, sessionID); err != nil {
		return err
	}

	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		s.mu.Lock()
		delete(s.booked, sessionID)
		s.mu.Unlock()
	}

	return nil
}
