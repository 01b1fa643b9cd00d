package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/securebank/bankd/internal/bank/domain"
)

type sessionsRepo struct {
	q querier
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, revoked, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Revoked, mapOptionalTime(s.ExpiresAt), s.CreatedAt, s.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, user_id, revoked, expires_at, created_at, updated_at
		 FROM sessions WHERE id = ?`, id)

	var (
		s         domain.Session
		expiresAt sql.NullTime
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.Revoked, &expiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.ExpiresAt = mapNullTimePtr(expiresAt)
	return s, nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *sessionsRepo) RevokeUserSessions(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE user_id = ? AND revoked = 0`,
		time.Now().UTC(), userID,
	)
	return err
}

func (r *sessionsRepo) DeleteDeadSessions(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM sessions
		 WHERE revoked = 1 OR (expires_at IS NOT NULL AND expires_at < ?)`,
		time.Now().UTC(),
	)
	return err
}
