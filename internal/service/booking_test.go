package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockRegistrationRepo, *mocks.MockSessionRepo, *mocks.MockMemberRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(registrationRepo, sessionRepo, memberRepo, notifier, log)
	return svc, registrationRepo, sessionRepo, memberRepo, notifier
}

func TestBookingService_Register_Success(t *testing.T) {
	svc, registrationRepo, sessionRepo, memberRepo, notifier := newBookingService(t)

	session := &domain.Session{
		ID:       501,
		Title:    "Hyrox",
		Category: domain.CategoryAdult,
	}
	member := &domain.Member{ID: "u1", Name: "Alice"}

	sessionRepo.EXPECT().GetByID(mock.Anything, int64(501)).Return(session, nil)
	memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	registrationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistered(mock.Anything, member, session).Return()

	reg, err := svc.Register(context.Background(), "u1", 501)

	require.NoError(t, err)
	assert.Equal(t, "u1", reg.UserID)
	assert.Equal(t, int64(501), reg.SessionID)
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Register_Conflict(t *testing.T) {
	svc, registrationRepo, sessionRepo, memberRepo, _ := newBookingService(t)

	session := &domain.Session{ID: 501, Title: "Hyrox", Category: domain.CategoryAdult}
	member := &domain.Member{ID: "u1"}

	sessionRepo.EXPECT().GetByID(mock.Anything, int64(501)).Return(session, nil)
	memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	registrationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), "u1", 501)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestBookingService_Register_NewsRejected(t *testing.T) {
	svc, _, sessionRepo, _, _ := newBookingService(t)

	news := &domain.Session{ID: 801, Title: "Wolves win championship", Category: domain.CategoryNews}
	sessionRepo.EXPECT().GetByID(mock.Anything, int64(801)).Return(news, nil)

	_, err := svc.Register(context.Background(), "u1", 801)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotOpen)
}

func TestBookingService_Register_SessionNotFound(t *testing.T) {
	svc, _, sessionRepo, _, _ := newBookingService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, int64(999)).Return(nil, domain.ErrSessionNotFound)

	_, err := svc.Register(context.Background(), "u1", 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestBookingService_Register_MemberNotFound(t *testing.T) {
	svc, _, sessionRepo, memberRepo, _ := newBookingService(t)

	session := &domain.Session{ID: 501, Category: domain.CategoryAdult}
	sessionRepo.EXPECT().GetByID(mock.Anything, int64(501)).Return(session, nil)
	memberRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrMemberNotFound)

	_, err := svc.Register(context.Background(), "missing", 501)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, registrationRepo, sessionRepo, memberRepo, notifier := newBookingService(t)

	session := &domain.Session{ID: 501, Title: "Hyrox", Category: domain.CategoryAdult}
	member := &domain.Member{ID: "u1"}

	registrationRepo.EXPECT().Delete(mock.Anything, "u1", int64(501)).Return(true, nil)
	memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, int64(501)).Return(session, nil)
	notifier.EXPECT().NotifyCancelled(mock.Anything, member, session).Return()

	err := svc.Cancel(context.Background(), "u1", 501)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NoMatchIsSuccess(t *testing.T) {
	svc, registrationRepo, _, _, _ := newBookingService(t)

	registrationRepo.EXPECT().Delete(mock.Anything, "u1", int64(501)).Return(false, nil)

	err := svc.Cancel(context.Background(), "u1", 501)

	require.NoError(t, err)
}

func TestBookingService_Cancel_RepoError(t *testing.T) {
	svc, registrationRepo, _, _, _ := newBookingService(t)

	registrationRepo.EXPECT().Delete(mock.Anything, "u1", int64(501)).Return(false, errors.New("db error"))

	err := svc.Cancel(context.Background(), "u1", 501)

	require.Error(t, err)
}

func TestBookingService_SweepOrphans(t *testing.T) {
	svc, registrationRepo, _, _, _ := newBookingService(t)

	orphans := []*domain.Registration{
		{ID: "r1", UserID: "u1", SessionID: 404},
	}
	registrationRepo.EXPECT().DeleteOrphaned(mock.Anything).Return(orphans, nil)

	result, err := svc.SweepOrphans(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_SweepOrphans_Error(t *testing.T) {
	svc, registrationRepo, _, _, _ := newBookingService(t)

	registrationRepo.EXPECT().DeleteOrphaned(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.SweepOrphans(context.Background())

	require.Error(t, err)
}
