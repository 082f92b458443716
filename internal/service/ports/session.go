package ports

import (
	"context"
	"time"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type SessionRepo interface {
	ListCurrent(ctx context.Context, now time.Time) ([]*domain.Session, error)
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
}
