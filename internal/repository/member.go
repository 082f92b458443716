package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
)

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (id, name, role, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Master.ExecContext(ctx, query, m.ID, m.Name, m.Role, m.TelegramChatID, m.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrMemberExists
		}
		return fmt.Errorf("insert member: %w", err)
	}

	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT id, name, role, telegram_chat_id, created_at
			  FROM members
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	var m domain.Member
	if err = row.Scan(&m.ID, &m.Name, &m.Role, &m.TelegramChatID, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return &m, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query := `SELECT id, name, role, telegram_chat_id, created_at
			  FROM members
			  ORDER BY name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.Member
	for rows.Next() {
		var m domain.Member
		if err = rows.Scan(&m.ID, &m.Name, &m.Role, &m.TelegramChatID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
