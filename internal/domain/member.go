package domain

import "time"

type MemberRole string

const (
	MemberRolePlayer MemberRole = "player"
	MemberRoleParent MemberRole = "parent"
)

// Member mirrors an identity from the club's auth provider. Authentication
// itself lives outside this service; the directory only validates that a
// userId belongs to a known member.
type Member struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Role           MemberRole `json:"role"`
	TelegramChatID *int64     `json:"telegram_chat_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CreateMemberInput struct {
	Name           string
	Role           MemberRole
	TelegramChatID *int64
}
