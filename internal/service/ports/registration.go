package ports

import (
	"context"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, reg *domain.Registration) error
	Delete(ctx context.Context, userID string, sessionID int64) (bool, error)
	ListSessionIDs(ctx context.Context, userID string) ([]int64, error)
	Schedule(ctx context.Context, userID string) ([]*domain.Session, error)
	DeleteOrphaned(ctx context.Context) ([]*domain.Registration, error)
}
