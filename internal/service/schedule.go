package service

import (
	"context"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/service/ports"
)

// ScheduleService projects a member's personal schedule out of the ledger.
// Every call produces a fresh result; caching belongs to the client.
type ScheduleService struct {
	registrationRepo ports.RegistrationRepo
}

func NewScheduleService(registrationRepo ports.RegistrationRepo) *ScheduleService {
	return &ScheduleService{registrationRepo: registrationRepo}
}

// GetSchedule returns the sessions the member is registered for, ascending
// by start time. An empty schedule is a valid result, not an error.
func (s *ScheduleService) GetSchedule(ctx context.Context, userID string) ([]*domain.Session, error) {
	return s.registrationRepo.Schedule(ctx, userID)
}
