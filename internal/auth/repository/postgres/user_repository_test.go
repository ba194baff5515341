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

var userRowColumns = []string{
	"id", "email", "password", "name", "date_of_birth", "verify",
	"email_verify_token", "forgot_password_token", "bio", "location", "website",
	"username", "avatar", "cover_photo", "created_at", "updated_at",
}

func sampleUser() *domain.User {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:          "user-1",
		Email:       "a@x.com",
		Password:    "digest",
		Name:        "An Nguyen",
		DateOfBirth: time.Date(1999, 4, 2, 0, 0, 0, 0, time.UTC),
		Verify:      domain.VerifyVerified,
		Username:    "annguyen",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userRowColumns).AddRow(
		u.ID, u.Email, u.Password, u.Name, u.DateOfBirth, u.Verify,
		u.EmailVerifyToken, u.ForgotPasswordToken, u.Bio, u.Location, u.Website,
		u.Username, u.Avatar, u.CoverPhoto, u.CreatedAt, u.UpdatedAt,
	)
}

func newUserRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestUserRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		want := sampleUser()

		mock.ExpectQuery("SELECT id, email").
			WithArgs("user-1").
			WillReturnRows(userRow(want))

		got, err := repo.FindByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepository_FindByEmailAndPassword(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		want := sampleUser()

		mock.ExpectQuery("SELECT id, email").
			WithArgs("a@x.com", "digest").
			WillReturnRows(userRow(want))

		got, err := repo.FindByEmailAndPassword(context.Background(), "a@x.com", "digest")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("wrong digest", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectQuery("SELECT id, email").
			WithArgs("a@x.com", "wrong-digest").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindByEmailAndPassword(context.Background(), "a@x.com", "wrong-digest")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		u := sampleUser()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(
				u.ID, u.Email, u.Password, u.Name, u.DateOfBirth, u.Verify,
				u.EmailVerifyToken, u.ForgotPasswordToken, u.Bio, u.Location,
				u.Website, u.Username, u.Avatar, u.CoverPhoto,
				u.CreatedAt, u.UpdatedAt,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Create(context.Background(), u))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email constraint violation", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := repo.Create(context.Background(), sampleUser())
		assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	})

	t.Run("username constraint violation", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.Create(context.Background(), sampleUser())
		assert.ErrorIs(t, err, autherror.ErrUsernameAlreadyInUse)
	})
}

func TestUserRepository_Update(t *testing.T) {
	t.Run("patch columns in order", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		verified := domain.VerifyVerified
		empty := ""
		patch := &domain.UserPatch{Verify: &verified, EmailVerifyToken: &empty}

		mock.ExpectExec("UPDATE users SET").
			WithArgs("user-1", verified, empty).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Update(context.Background(), "user-1", patch))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		bio := "hi"

		mock.ExpectExec("UPDATE users SET").
			WithArgs("missing", bio).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), "missing", &domain.UserPatch{Bio: &bio})
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	})

	t.Run("username constraint violation", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		username := "taken"

		mock.ExpectExec("UPDATE users SET").
			WithArgs("user-1", username).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.Update(context.Background(), "user-1", &domain.UserPatch{Username: &username})
		assert.ErrorIs(t, err, autherror.ErrUsernameAlreadyInUse)
	})
}
