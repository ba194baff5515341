package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
)

// TokenRepository is the durable refresh-token store. A token's presence here
// is what makes it valid; rotation and logout remove the row.
type TokenRepository struct {
	db PgxIface
}

func NewTokenRepository(db PgxIface) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, rt.ID, rt.UserID, rt.Token, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *TokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `SELECT id, user_id, token, created_at FROM refresh_tokens WHERE token = $1 LIMIT 1;`
	row := r.db.QueryRow(ctx, query, token)

	var rt domain.RefreshToken
	if err := row.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query refresh token: %w", err)
	}

	return &rt, nil
}

// DeleteByToken removes the record and reports how many rows went away.
// Concurrent deletes of the same token are serialized by the store, so
// exactly one caller observes 1.
func (r *TokenRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return 0, fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return tag.RowsAffected(), nil
}
