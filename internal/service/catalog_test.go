package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/service/ports/mocks"
)

func sessionAt(id int64, title string, category domain.Category, instructor string, start time.Time) *domain.Session {
	return &domain.Session{
		ID:         id,
		Title:      title,
		Category:   category,
		Instructor: instructor,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}
}

func TestGroupOfferings_SameTitleBecomesOneOffering(t *testing.T) {
	t1 := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	// Later slot fetched first: slots must still come out sorted.
	sessions := []*domain.Session{
		sessionAt(502, "Hyrox", domain.CategoryAdult, "Ben", t2),
		sessionAt(501, "Hyrox", domain.CategoryAdult, "Maya", t1),
	}

	offerings := GroupOfferings(sessions)

	require.Len(t, offerings, 1)
	off := offerings[0]
	assert.Equal(t, "Hyrox", off.Key)
	assert.True(t, off.Bookable)
	require.Len(t, off.Slots, 2)
	assert.Equal(t, int64(501), off.Slots[0].ID)
	assert.Equal(t, int64(502), off.Slots[1].ID)
}

func TestGroupOfferings_CoachGroupsByInstructor(t *testing.T) {
	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	sessions := []*domain.Session{
		sessionAt(601, "Private Shooting", domain.CategoryCoach, "Ben", t1),
		sessionAt(602, "Private Skating", domain.CategoryCoach, "Ben", t1.Add(time.Hour)),
		sessionAt(603, "Private Shooting", domain.CategoryCoach, "Coach Lou", t1),
	}

	offerings := GroupOfferings(sessions)

	require.Len(t, offerings, 2)
	assert.Equal(t, "Ben", offerings[0].Key)
	assert.Len(t, offerings[0].Slots, 2)
	assert.Equal(t, "Coach Lou", offerings[1].Key)
	assert.Len(t, offerings[1].Slots, 1)
}

func TestGroupOfferings_SameTitleDifferentCategoriesStaySeparate(t *testing.T) {
	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	sessions := []*domain.Session{
		sessionAt(1, "Skills Clinic", domain.CategoryAdult, "Ben", t1),
		sessionAt(2, "Skills Clinic", domain.CategoryYouth, "Ben", t1),
	}

	offerings := GroupOfferings(sessions)

	require.Len(t, offerings, 2)
	assert.Equal(t, domain.CategoryAdult, offerings[0].Category)
	assert.Equal(t, domain.CategoryYouth, offerings[1].Category)
}

func TestGroupOfferings_NewsStaysSingleAndNonBookable(t *testing.T) {
	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	sessions := []*domain.Session{
		sessionAt(801, "Wolves win championship", domain.CategoryNews, "", t1),
		sessionAt(802, "Wolves win championship", domain.CategoryNews, "", t1),
	}

	offerings := GroupOfferings(sessions)

	require.Len(t, offerings, 2)
	for _, off := range offerings {
		assert.False(t, off.Bookable)
		assert.Len(t, off.Slots, 1)
	}
}

func TestGroupOfferings_DuplicateStartTimesBothKept(t *testing.T) {
	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	sessions := []*domain.Session{
		sessionAt(501, "Hyrox", domain.CategoryAdult, "Ben", t1),
		sessionAt(502, "Hyrox", domain.CategoryAdult, "Ben", t1),
	}

	offerings := GroupOfferings(sessions)

	require.Len(t, offerings, 1)
	require.Len(t, offerings[0].Slots, 2)
	// Equal start times keep input order.
	assert.Equal(t, int64(501), offerings[0].Slots[0].ID)
	assert.Equal(t, int64(502), offerings[0].Slots[1].ID)
}

func TestGroupOfferings_Deterministic(t *testing.T) {
	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	sessions := []*domain.Session{
		sessionAt(1, "Hyrox", domain.CategoryAdult, "Ben", t1.Add(2*time.Hour)),
		sessionAt(2, "Open Skate", domain.CategoryFacility, "", t1),
		sessionAt(3, "Hyrox", domain.CategoryAdult, "Maya", t1),
		sessionAt(4, "Stick Time", domain.CategoryFacility, "", t1.Add(time.Hour)),
	}

	first := GroupOfferings(sessions)
	second := GroupOfferings(sessions)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.Equal(t, first[i].Category, second[i].Category)
		require.Equal(t, len(first[i].Slots), len(second[i].Slots))
		for j := range first[i].Slots {
			assert.Equal(t, first[i].Slots[j].ID, second[i].Slots[j].ID)
		}
	}

	// First-seen order of grouping keys is preserved.
	assert.Equal(t, "Hyrox", first[0].Key)
	assert.Equal(t, "Open Skate", first[1].Key)
	assert.Equal(t, "Stick Time", first[2].Key)
}

func TestCatalogService_Offerings_WithoutUser(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCatalogService(sessionRepo, registrationRepo)

	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sessionRepo.EXPECT().ListCurrent(mock.Anything, mock.Anything).Return([]*domain.Session{
		sessionAt(501, "Hyrox", domain.CategoryAdult, "Ben", t1),
	}, nil)

	offerings, registered, err := svc.Offerings(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, offerings, 1)
	assert.Nil(t, registered)
}

func TestCatalogService_Offerings_AnnotatesBookedSessions(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCatalogService(sessionRepo, registrationRepo)

	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sessionRepo.EXPECT().ListCurrent(mock.Anything, mock.Anything).Return([]*domain.Session{
		sessionAt(501, "Hyrox", domain.CategoryAdult, "Ben", t1),
		sessionAt(502, "Hyrox", domain.CategoryAdult, "Ben", t1.Add(24*time.Hour)),
	}, nil)
	registrationRepo.EXPECT().ListSessionIDs(mock.Anything, "u1").Return([]int64{501}, nil)

	offerings, registered, err := svc.Offerings(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, offerings, 1)
	assert.True(t, registered[501])
	assert.False(t, registered[502])
}
