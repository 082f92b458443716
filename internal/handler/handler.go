package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/wb-go/wbf/ginext"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/handler/dto"
)

type BookingSvc interface {
	Register(ctx context.Context, userID string, sessionID int64) (*domain.Registration, error)
	Cancel(ctx context.Context, userID string, sessionID int64) error
}

type CatalogSvc interface {
	ListCurrent(ctx context.Context) ([]*domain.Session, error)
	Offerings(ctx context.Context, userID string) ([]*domain.Offering, map[int64]bool, error)
}

type ScheduleSvc interface {
	GetSchedule(ctx context.Context, userID string) ([]*domain.Session, error)
}

type MemberSvc interface {
	Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}

type Handler struct {
	bookingService  BookingSvc
	catalogService  CatalogSvc
	scheduleService ScheduleSvc
	memberService   MemberSvc
}

func NewHandler(bookingService BookingSvc, catalogService CatalogSvc, scheduleService ScheduleSvc, memberService MemberSvc) *Handler {
	return &Handler{
		bookingService:  bookingService,
		catalogService:  catalogService,
		scheduleService: scheduleService,
		memberService:   memberService,
	}
}

// Bookings

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing Data"})
		return
	}

	if _, err := h.bookingService.Register(c.Request.Context(), req.UserID, req.SessionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing Data"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), req.UserID, req.SessionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Catalog

func (h *Handler) ListSessions(c *ginext.Context) {
	sessions, err := h.catalogService.ListCurrent(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListOfferings(c *ginext.Context) {
	userID := c.Query("userId")
	if userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
			return
		}
	}

	offerings, registered, err := h.catalogService.Offerings(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferingResponse, 0, len(offerings))
	for _, off := range offerings {
		resp = append(resp, dto.ToOfferingResponse(off, registered))
	}

	c.JSON(http.StatusOK, resp)
}

// Schedule

func (h *Handler) MySchedule(c *ginext.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing Data"})
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	sessions, err := h.scheduleService.GetSchedule(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateMemberInput{
		Name:           req.Name,
		Role:           domain.MemberRole(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	member, err := h.memberService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// MemberQR serves the member's check-in QR code as a PNG. Scanning it opens
// the front-desk check-in page for that member.
func (h *Handler) MemberQR(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	member, err := h.memberService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	png, err := qrcode.Encode(checkInURL(c.Request, member.ID), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to generate qr"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// checkInURL builds the front-desk check-in link the QR code encodes. The
// scheme follows the request so links stay valid on the plain-HTTP dev
// server; behind a TLS-terminating proxy X-Forwarded-Proto wins.
func checkInURL(r *http.Request, memberID string) string {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + r.Host + "/check-in?memberId=" + memberID
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered):
		// The client relies on this exact message to render "already
		// booked" instead of a retry prompt.
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Already Registered"})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSessionNotOpen),
		errors.Is(err, domain.ErrMemberExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
