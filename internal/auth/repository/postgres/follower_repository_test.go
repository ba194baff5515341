package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
)

func newFollowerRepo(t *testing.T) (*FollowerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewFollowerRepository(mock), mock
}

func TestFollowerRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newFollowerRepo(t)
		f := &domain.Follower{
			ID:             "edge-1",
			UserID:         "user-1",
			FollowedUserID: "user-2",
			CreatedAt:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		}

		mock.ExpectExec("INSERT INTO followers").
			WithArgs(f.ID, f.UserID, f.FollowedUserID, f.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Create(context.Background(), f))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate edge", func(t *testing.T) {
		repo, mock := newFollowerRepo(t)

		mock.ExpectExec("INSERT INTO followers").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "followers_user_id_followed_user_id_key"})

		err := repo.Create(context.Background(), &domain.Follower{ID: "edge-1", UserID: "user-1", FollowedUserID: "user-2"})
		assert.ErrorIs(t, err, autherror.ErrAlreadyFollowed)
	})
}

func TestFollowerRepository_Find(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newFollowerRepo(t)
		created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT id, user_id, followed_user_id, created_at").
			WithArgs("user-1", "user-2").
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "followed_user_id", "created_at"}).
				AddRow("edge-1", "user-1", "user-2", created))

		got, err := repo.Find(context.Background(), "user-1", "user-2")
		require.NoError(t, err)
		assert.Equal(t, &domain.Follower{ID: "edge-1", UserID: "user-1", FollowedUserID: "user-2", CreatedAt: created}, got)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		repo, mock := newFollowerRepo(t)

		mock.ExpectQuery("SELECT id, user_id, followed_user_id, created_at").
			WithArgs("user-1", "user-3").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.Find(context.Background(), "user-1", "user-3")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestFollowerRepository_Delete(t *testing.T) {
	t.Run("reports deleted rows", func(t *testing.T) {
		repo, mock := newFollowerRepo(t)

		mock.ExpectExec("DELETE FROM followers").
			WithArgs("user-1", "user-2").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), "user-1", "user-2")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("absent edge deletes zero rows", func(t *testing.T) {
		repo, mock := newFollowerRepo(t)

		mock.ExpectExec("DELETE FROM followers").
			WithArgs("user-1", "user-3").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), "user-1", "user-3")
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}
