package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
)

// PgxIface is the subset of pgxpool.Pool the repositories use. pgxmock pools
// satisfy it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolationCode = "23505"

const userColumns = `id, email, password, name, date_of_birth, verify,
	       email_verify_token, forgot_password_token, bio, location, website,
	       username, avatar, cover_photo, created_at, updated_at`

type UserRepository struct {
	db PgxIface
}

func NewUserRepository(db PgxIface) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, args...)

	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.DateOfBirth, &u.Verify,
		&u.EmailVerifyToken, &u.ForgotPasswordToken, &u.Bio, &u.Location,
		&u.Website, &u.Username, &u.Avatar, &u.CoverPhoto,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1;`
	return r.findOne(ctx, query, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1;`
	return r.findOne(ctx, query, email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1;`
	return r.findOne(ctx, query, username)
}

// FindByEmailAndPassword is the joint credential lookup: absence means wrong
// email or wrong password, deliberately indistinguishable here.
func (r *UserRepository) FindByEmailAndPassword(ctx context.Context, email, passwordDigest string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND password = $2 LIMIT 1;`
	return r.findOne(ctx, query, email, passwordDigest)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// Create inserts the user. The unique constraints on email and username are
// authoritative; violations surface as the matching conflict error so a racy
// advisory pre-check can never let a duplicate through.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Password, user.Name, user.DateOfBirth, user.Verify,
		user.EmailVerifyToken, user.ForgotPasswordToken, user.Bio, user.Location,
		user.Website, user.Username, user.Avatar, user.CoverPhoto,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return autherror.ErrUsernameAlreadyInUse
			}
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Update applies a partial update and always stamps updated_at. Nil patch
// fields are untouched.
func (r *UserRepository) Update(ctx context.Context, id string, patch *domain.UserPatch) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.DateOfBirth != nil {
		add("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}
	if patch.Verify != nil {
		add("verify", *patch.Verify)
	}
	if patch.EmailVerifyToken != nil {
		add("email_verify_token", *patch.EmailVerifyToken)
	}
	if patch.ForgotPasswordToken != nil {
		add("forgot_password_token", *patch.ForgotPasswordToken)
	}
	if patch.Bio != nil {
		add("bio", *patch.Bio)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Website != nil {
		add("website", *patch.Website)
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Avatar != nil {
		add("avatar", *patch.Avatar)
	}
	if patch.CoverPhoto != nil {
		add("cover_photo", *patch.CoverPhoto)
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $1", strings.Join(sets, ", "))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return autherror.ErrUsernameAlreadyInUse
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}
