package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/handler/dto"
)

func TestClient_Register_Success(t *testing.T) {
	userID := uuid.New().String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var req dto.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, userID, req.UserID)
		assert.Equal(t, int64(501), req.SessionID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dto.SuccessResponse{Success: true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Register(context.Background(), userID, 501)
	require.NoError(t, err)
}

func TestClient_Register_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Already Registered"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Register(context.Background(), uuid.New().String(), 501)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestClient_Register_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "internal server error"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Register(context.Background(), uuid.New().String(), 501)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClient_Cancel_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dto.SuccessResponse{Success: true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Cancel(context.Background(), uuid.New().String(), 501)
	require.NoError(t, err)
}

func TestClient_Schedule_Success(t *testing.T) {
	userID := uuid.New().String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/my-schedule", r.URL.Path)
		assert.Equal(t, userID, r.URL.Query().Get("userId"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 501, "title": "Hyrox", "category": "ADULT", "start_time": "2026-09-01T18:00:00Z", "end_time": "2026-09-01T19:00:00Z"},
			{"id": 502, "title": "Hyrox", "category": "ADULT", "start_time": "2026-09-02T18:00:00Z", "end_time": "2026-09-02T19:00:00Z"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	sessions, err := c.Schedule(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(501), sessions[0].ID)
	assert.Equal(t, "Hyrox", sessions[0].Title)
}

func TestClient_Schedule_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	sessions, err := c.Schedule(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
