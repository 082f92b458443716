package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// ListCurrent returns sessions that have not yet ended, in the order the
// catalog displays them. The grouping engine depends on this order being
// stable between calls.
func (r *SessionRepository) ListCurrent(ctx context.Context, now time.Time) ([]*domain.Session, error) {
	query := `SELECT id, title, category, instructor, start_time, end_time, description, image_url
			  FROM sessions
			  WHERE end_time >= $1
			  ORDER BY start_time ASC, id ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err = rows.Scan(
			&s.ID, &s.Title, &s.Category, &s.Instructor,
			&s.StartTime, &s.EndTime, &s.Description, &s.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := `SELECT id, title, category, instructor, start_time, end_time, description, image_url
			  FROM sessions
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err = row.Scan(
		&s.ID, &s.Title, &s.Category, &s.Instructor,
		&s.StartTime, &s.EndTime, &s.Description, &s.ImageURL,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}
