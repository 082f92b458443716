package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/service/ports/mocks"
)

func TestMemberService_Create_Success(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	member, err := svc.Create(context.Background(), domain.CreateMemberInput{Name: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, "Alice", member.Name)
	assert.Equal(t, domain.MemberRolePlayer, member.Role)
	assert.NotEmpty(t, member.ID)
}

func TestMemberService_Create_EmptyName(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_Create_UnknownRole(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{Name: "Alice", Role: "coach"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_Create_Duplicate(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrMemberExists)

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{Name: "Alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemberExists)
}
