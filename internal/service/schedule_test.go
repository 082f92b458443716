package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/service/ports/mocks"
)

func TestScheduleService_GetSchedule_Success(t *testing.T) {
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewScheduleService(registrationRepo)

	t1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sessions := []*domain.Session{
		sessionAt(501, "Hyrox", domain.CategoryAdult, "Ben", t1),
		sessionAt(502, "Hyrox", domain.CategoryAdult, "Ben", t1.Add(24*time.Hour)),
	}
	registrationRepo.EXPECT().Schedule(mock.Anything, "u1").Return(sessions, nil)

	result, err := svc.GetSchedule(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].StartTime.Before(result[1].StartTime))
}

func TestScheduleService_GetSchedule_EmptyIsNotAnError(t *testing.T) {
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewScheduleService(registrationRepo)

	registrationRepo.EXPECT().Schedule(mock.Anything, "u1").Return(nil, nil)

	result, err := svc.GetSchedule(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestScheduleService_GetSchedule_RepoError(t *testing.T) {
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewScheduleService(registrationRepo)

	registrationRepo.EXPECT().Schedule(mock.Anything, "u1").Return(nil, errors.New("db error"))

	_, err := svc.GetSchedule(context.Background(), "u1")

	require.Error(t, err)
}
