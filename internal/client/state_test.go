package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/handler/dto"
)

// fakeAPI is a minimal in-memory booking server for cache tests.
type fakeAPI struct {
	booked       map[int64]bool
	requests     atomic.Int64
	scheduleDown bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{booked: make(map[int64]bool)}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)

		var req dto.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			if f.booked[req.SessionID] {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Already Registered"})
				return
			}
			f.booked[req.SessionID] = true
			json.NewEncoder(w).Encode(dto.SuccessResponse{Success: true})
		case http.MethodDelete:
			delete(f.booked, req.SessionID)
			json.NewEncoder(w).Encode(dto.SuccessResponse{Success: true})
		}
	})

	mux.HandleFunc("/api/my-schedule", func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)

		if f.scheduleDown {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "internal server error"})
			return
		}

		sessions := make([]*domain.Session, 0, len(f.booked))
		for id := range f.booked {
			sessions = append(sessions, &domain.Session{ID: id, Title: "Hyrox", Category: domain.CategoryAdult})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sessions)
	})

	return mux
}

func TestBookingState_RefreshAndLookup(t *testing.T) {
	api := newFakeAPI()
	api.booked[501] = true

	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	state := NewBookingState(New(srv.URL), uuid.New().String())
	require.NoError(t, state.Refresh(context.Background()))

	assert.True(t, state.IsRegistered(501))
	assert.False(t, state.IsRegistered(502))
}

func TestBookingState_LookupIsLocal(t *testing.T) {
	api := newFakeAPI()
	api.booked[501] = true

	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	state := NewBookingState(New(srv.URL), uuid.New().String())
	require.NoError(t, state.Refresh(context.Background()))

	before := api.requests.Load()
	for i := 0; i < 100; i++ {
		state.IsRegistered(501)
	}
	assert.Equal(t, before, api.requests.Load())
}

func TestBookingState_RegisterUpdatesCache(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	state := NewBookingState(New(srv.URL), uuid.New().String())

	require.NoError(t, state.Register(context.Background(), 501))
	assert.True(t, state.IsRegistered(501))
}

func TestBookingState_ConflictStillMarksBooked(t *testing.T) {
	api := newFakeAPI()
	api.booked[501] = true

	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	state := NewBookingState(New(srv.URL), uuid.New().String())

	err := state.Register(context.Background(), 501)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.True(t, state.IsRegistered(501))
}

func TestBookingState_CancelUpdatesCache(t *testing.T) {
	api := newFakeAPI()
	api.booked[501] = true

	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	state := NewBookingState(New(srv.URL), uuid.New().String())
	require.NoError(t, state.Refresh(context.Background()))
	require.True(t, state.IsRegistered(501))

	require.NoError(t, state.Cancel(context.Background(), 501))
	assert.False(t, state.IsRegistered(501))
}

func TestBookingState_MutationRefetchesServerState(t *testing.T) {
	api := newFakeAPI()
	api.booked[501] = true

	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	state := NewBookingState(New(srv.URL), uuid.New().String())
	require.NoError(t, state.Refresh(context.Background()))

	// Another tab books session 777 after our refresh.
	api.booked[777] = true

	require.NoError(t, state.Cancel(context.Background(), 501))

	assert.False(t, state.IsRegistered(501))
	assert.True(t, state.IsRegistered(777), "cancel must re-source the set from the server")

	require.NoError(t, state.Register(context.Background(), 501))
	assert.True(t, state.IsRegistered(501))
	assert.True(t, state.IsRegistered(777), "register must re-source the set from the server")
}

func TestBookingState_RegisterPatchesWhenRefetchFails(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	state := NewBookingState(New(srv.URL), uuid.New().String())

	api.scheduleDown = true
	require.NoError(t, state.Register(context.Background(), 501))

	// The booking landed server-side even though the refetch failed.
	assert.True(t, state.IsRegistered(501))
	assert.True(t, api.booked[501])
}
