package dto

// RegisterRequest is the body of both POST and DELETE /api/register, matching
// the mobile client's payload.
type RegisterRequest struct {
	UserID    string `json:"userId" binding:"required,uuid"`
	SessionID int64  `json:"sessionId" binding:"required"`
}

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=player parent"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
