package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/annguyen2k3/project-api-twitter/internal/auth/domain UserRepository,TokenRepository,FollowerRepository,Mailer

// UserRepository is the user directory. Find methods return (nil, nil) when
// no record matches.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// FindByEmailAndPassword performs the joint credential lookup used by the
	// login guard; passwordDigest is the keyed digest, not the plaintext.
	FindByEmailAndPassword(ctx context.Context, email, passwordDigest string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id string, patch *UserPatch) error
}

// TokenRepository is the refresh-token store.
type TokenRepository interface {
	Store(ctx context.Context, rt *RefreshToken) error
	FindByToken(ctx context.Context, token string) (*RefreshToken, error)
	// DeleteByToken reports how many rows were removed. Rotation keys off this
	// count: of two concurrent deletes for the same token, exactly one
	// observes 1.
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

// FollowerRepository stores follow edges.
type FollowerRepository interface {
	Create(ctx context.Context, f *Follower) error
	Find(ctx context.Context, userID, followedUserID string) (*Follower, error)
	Delete(ctx context.Context, userID, followedUserID string) (int64, error)
}

// Mailer is the out-of-band email collaborator. Send failures are logged by
// callers, never propagated as request failures.
type Mailer interface {
	SendVerifyEmail(to, name, token string) error
	SendForgotPasswordEmail(to, name, token string) error
}
