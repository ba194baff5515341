package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
)

// FollowerRepository stores follow edges, unique on (user_id, followed_user_id).
type FollowerRepository struct {
	db PgxIface
}

func NewFollowerRepository(db PgxIface) *FollowerRepository {
	return &FollowerRepository{db: db}
}

func (r *FollowerRepository) Create(ctx context.Context, f *domain.Follower) error {
	query := `
		INSERT INTO followers (id, user_id, followed_user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, f.ID, f.UserID, f.FollowedUserID, f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return autherror.ErrAlreadyFollowed
		}
		return fmt.Errorf("failed to create follower: %w", err)
	}
	return nil
}

func (r *FollowerRepository) Find(ctx context.Context, userID, followedUserID string) (*domain.Follower, error) {
	query := `
		SELECT id, user_id, followed_user_id, created_at
		FROM followers
		WHERE user_id = $1 AND followed_user_id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, userID, followedUserID)

	var f domain.Follower
	if err := row.Scan(&f.ID, &f.UserID, &f.FollowedUserID, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query follower: %w", err)
	}

	return &f, nil
}

func (r *FollowerRepository) Delete(ctx context.Context, userID, followedUserID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM followers WHERE user_id = $1 AND followed_user_id = $2`, userID, followedUserID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete follower: %w", err)
	}
	return tag.RowsAffected(), nil
}
