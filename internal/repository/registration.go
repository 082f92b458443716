package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts one ledger row. Uniqueness of (user_id, session_id) is the
// database's job: a duplicate insert comes back as a unique violation and is
// translated to ErrAlreadyRegistered. No pre-check is done here — two
// concurrent inserts race cleanly through the constraint instead.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (id, user_id, session_id, created_at)
			  VALUES ($1, $2, $3, $4)`

	// Mutations are issued once; retries stay a user-initiated re-click.
	_, err := r.db.Master.ExecContext(ctx, query, reg.ID, reg.UserID, reg.SessionID, reg.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

// Delete removes the ledger row for (userID, sessionID) if one exists and
// reports whether anything matched. Zero rows matched is not an error.
func (r *RegistrationRepository) Delete(ctx context.Context, userID string, sessionID int64) (bool, error) {
	query := `DELETE FROM registrations
			  WHERE user_id = $1 AND session_id = $2`

	res, err := r.db.Master.ExecContext(ctx, query, userID, sessionID)
	if err != nil {
		return false, fmt.Errorf("delete registration: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("registration rows affected: %w", err)
	}

	return n > 0, nil
}

// ListSessionIDs returns the ids of every session the member currently holds
// a registration for.
func (r *RegistrationRepository) ListSessionIDs(ctx context.Context, userID string) ([]int64, error) {
	query := `SELECT session_id FROM registrations WHERE user_id = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered session ids: %w", err)
	}
	defer rows.Close()

	var res []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

// Schedule joins the member's registrations back to the session catalog,
// ordered by start time. The inner join drops registrations whose session row
// was removed administratively; the sweep below reclaims those later.
func (r *RegistrationRepository) Schedule(ctx context.Context, userID string) ([]*domain.Session, error) {
	query := `SELECT s.id, s.title, s.category, s.instructor, s.start_time, s.end_time, s.description, s.image_url
			  FROM registrations reg
			  JOIN sessions s ON s.id = reg.session_id
			  WHERE reg.user_id = $1
			  ORDER BY s.start_time ASC, s.id ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err = rows.Scan(
			&s.ID, &s.Title, &s.Category, &s.Instructor,
			&s.StartTime, &s.EndTime, &s.Description, &s.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan schedule session: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// DeleteOrphaned removes registrations pointing at sessions that no longer
// exist and returns the reclaimed rows.
func (r *RegistrationRepository) DeleteOrphaned(ctx context.Context) ([]*domain.Registration, error) {
	query := `DELETE FROM registrations reg
			  WHERE NOT EXISTS (SELECT 1 FROM sessions s WHERE s.id = reg.session_id)
			  RETURNING reg.id, reg.user_id, reg.session_id, reg.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("delete orphaned registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err = rows.Scan(&reg.ID, &reg.UserID, &reg.SessionID, &reg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan orphaned registration: %w", err)
		}
		res = append(res, &reg)
	}

	return res, rows.Err()
}
