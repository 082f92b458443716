package domain

import "time"

type Category string

const (
	CategoryAdult    Category = "ADULT"
	CategoryYouth    Category = "YOUTH"
	CategoryCoach    Category = "COACH"
	CategoryFacility Category = "FACILITY"
	CategoryEvent    Category = "EVENT"
	CategoryNews     Category = "NEWS"
)

// Bookable reports whether sessions of this category accept registrations.
// NEWS entries share the sessions table but are display-only.
func (c Category) Bookable() bool {
	return c != CategoryNews
}

type Session struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Instructor  string    `json:"instructor"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

// GroupKey is the value two sessions must share (within a category) to be
// presented as one offering: the instructor for private coaching, the title
// for everything else.
func (s *Session) GroupKey() string {
	if s.Category == CategoryCoach {
		return s.Instructor
	}
	return s.Title
}

// Offering is the derived grouping of sessions sharing a category and group
// key, shown as one catalog entry with a choice of time slots. It is computed
// on every catalog load and has no identity of its own.
type Offering struct {
	Key      string     `json:"key"`
	Category Category   `json:"category"`
	Bookable bool       `json:"bookable"`
	Slots    []*Session `json:"slots"`
}
