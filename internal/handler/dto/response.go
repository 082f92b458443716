package dto

import (
	"time"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SessionResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Instructor  string `json:"instructor"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type SlotResponse struct {
	SessionResponse
	Booked bool `json:"booked"`
}

type OfferingResponse struct {
	Key      string         `json:"key"`
	Category string         `json:"category"`
	Bookable bool           `json:"bookable"`
	Booked   bool           `json:"booked"`
	Slots    []SlotResponse `json:"slots"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		Title:       s.Title,
		Category:    string(s.Category),
		Instructor:  s.Instructor,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

// ToOfferingResponse renders an offering; registered carries the session ids
// the requesting member is booked into (nil when no member was given). An
// offering counts as booked when any of its slots is.
func ToOfferingResponse(off *domain.Offering, registered map[int64]bool) OfferingResponse {
	slots := make([]SlotResponse, 0, len(off.Slots))
	booked := false
	for _, s := range off.Slots {
		slotBooked := registered[s.ID]
		booked = booked || slotBooked
		slots = append(slots, SlotResponse{
			SessionResponse: ToSessionResponse(s),
			Booked:          slotBooked,
		})
	}

	return OfferingResponse{
		Key:      off.Key,
		Category: string(off.Category),
		Bookable: off.Bookable,
		Booked:   booked,
		Slots:    slots,
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Role:           string(m.Role),
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}
