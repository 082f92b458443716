package ports

import (
	"context"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type BookingNotifier interface {
	NotifyRegistered(ctx context.Context, member *domain.Member, session *domain.Session)
	NotifyCancelled(ctx context.Context, member *domain.Member, session *domain.Session)
}
