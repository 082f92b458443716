package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/service/ports"
)

type CatalogService struct {
	sessionRepo      ports.SessionRepo
	registrationRepo ports.RegistrationRepo
}

func NewCatalogService(sessionRepo ports.SessionRepo, registrationRepo ports.RegistrationRepo) *CatalogService {
	return &CatalogService{
		sessionRepo:      sessionRepo,
		registrationRepo: registrationRepo,
	}
}

// ListCurrent returns the raw catalog: every session that has not yet ended.
func (s *CatalogService) ListCurrent(ctx context.Context) ([]*domain.Session, error) {
	return s.sessionRepo.ListCurrent(ctx, time.Now().UTC())
}

// Offerings groups the current catalog into bookable offerings. When userID
// is non-empty the second return value holds the session ids that member is
// registered for, so callers can mark offerings and slots as booked.
func (s *CatalogService) Offerings(ctx context.Context, userID string) ([]*domain.Offering, map[int64]bool, error) {
	sessions, err := s.sessionRepo.ListCurrent(ctx, time.Now().UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	offerings := GroupOfferings(sessions)

	if userID == "" {
		return offerings, nil, nil
	}

	ids, err := s.registrationRepo.ListSessionIDs(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load registered sessions: %w", err)
	}

	registered := make(map[int64]bool, len(ids))
	for _, id := range ids {
		registered[id] = true
	}

	return offerings, registered, nil
}

type offeringKey struct {
	category domain.Category
	key      string
}

// GroupOfferings clusters sessions into offerings: one per distinct title
// within a category, or per instructor for private coaching. NEWS entries
// stay single and non-bookable. Offerings keep the first-seen order of the
// input so the catalog renders deterministically; slot lists are sorted
// ascending by start time. Duplicate (title, start_time) rows are kept as
// separate slots.
func GroupOfferings(sessions []*domain.Session) []*domain.Offering {
	var offerings []*domain.Offering
	index := make(map[offeringKey]*domain.Offering)

	for _, s := range sessions {
		if s.Category == domain.CategoryNews {
			offerings = append(offerings, &domain.Offering{
				Key:      s.GroupKey(),
				Category: s.Category,
				Bookable: false,
				Slots:    []*domain.Session{s},
			})
			continue
		}

		k := offeringKey{category: s.Category, key: s.GroupKey()}
		off, ok := index[k]
		if !ok {
			off = &domain.Offering{
				Key:      k.key,
				Category: s.Category,
				Bookable: true,
			}
			index[k] = off
			offerings = append(offerings, off)
		}
		off.Slots = append(off.Slots, s)
	}

	for _, off := range offerings {
		sort.SliceStable(off.Slots, func(i, j int) bool {
			return off.Slots[i].StartTime.Before(off.Slots[j].StartTime)
		})
	}

	return offerings
}
