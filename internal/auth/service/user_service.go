package service

import (
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/annguyen2k3/project-api-twitter/internal/auth/domain"
	"github.com/annguyen2k3/project-api-twitter/internal/auth/dto"
	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
)

// UserService orchestrates registration, login, logout, token rotation and the
// account verification state machine over the injected stores.
type UserService struct {
	users          domain.UserRepository
	tokens         domain.TokenRepository
	followers      domain.FollowerRepository
	signer         TokenSigner
	mailer         domain.Mailer
	passwordSecret string
	log            *slog.Logger
}

func NewUserService(
	users domain.UserRepository,
	tokens domain.TokenRepository,
	followers domain.FollowerRepository,
	signer TokenSigner,
	mailer domain.Mailer,
	passwordSecret string,
	log *slog.Logger,
) *UserService {
	return &UserService{
		users:          users,
		tokens:         tokens,
		followers:      followers,
		signer:         signer,
		mailer:         mailer,
		passwordSecret: passwordSecret,
		log:            log,
	}
}

// hashPassword produces the keyed one-way digest stored in the directory. It
// is deterministic so the credential guard can look up (email, digest)
// jointly.
func (s *UserService) hashPassword(password string) string {
	sum := sha3.Sum256([]byte(password + s.passwordSecret))
	return hex.EncodeToString(sum[:])
}

// asAppError passes taxonomy errors through and wraps everything else as an
// internal failure.
func asAppError(err error) error {
	var appErr *autherror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return autherror.Internal(err)
}

// issueTokens signs a fresh access+refresh pair and persists the refresh
// grant.
func (s *UserService) issueTokens(ctx context.Context, userID string, verify domain.VerifyStatus) (*dto.TokenResponse, error) {
	accessToken, refreshToken, err := s.signer.SignPair(userID, verify)
	if err != nil {
		return nil, autherror.Internal(err)
	}

	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     refreshToken,
		CreatedAt: time.Now(),
	}
	if err := s.tokens.Store(ctx, rt); err != nil {
		return nil, autherror.Internal(err)
	}

	return &dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Register creates an unverified user, persists a signed email-verify token on
// the record, issues the first token pair and dispatches the verification
// mail out of band. The email pre-check is advisory; the directory's unique
// constraint settles any race.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.TokenResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, autherror.Internal(err)
	}
	if exists {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	dob, err := time.Parse(time.RFC3339, input.DateOfBirth)
	if err != nil {
		return nil, autherror.Validation(map[string]string{
			"date_of_birth": "Date of birth must be a valid ISO 8601 date",
		})
	}

	userID := uuid.NewString()

	emailVerifyToken, err := s.signer.Sign(domain.TokenEmailVerify, userID, domain.VerifyUnverified)
	if err != nil {
		return nil, autherror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:               userID,
		Email:            input.Email,
		Password:         s.hashPassword(input.Password),
		Name:             input.Name,
		DateOfBirth:      dob,
		Verify:           domain.VerifyUnverified,
		EmailVerifyToken: emailVerifyToken,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, asAppError(err)
	}

	if err := s.mailer.SendVerifyEmail(user.Email, user.Name, emailVerifyToken); err != nil {
		s.log.Warn("failed to send verify email", "user_id", userID, "error", err)
	}

	return s.issueTokens(ctx, userID, domain.VerifyUnverified)
}

// Authenticate resolves credentials to a user. Used by the login guard; the
// joint lookup deliberately reports absence as an incorrect password without
// distinguishing which half failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmailAndPassword(ctx, email, s.hashPassword(password))
	if err != nil {
		return nil, autherror.Internal(err)
	}
	if user == nil {
		return nil, autherror.ErrPasswordIncorrect
	}
	return user, nil
}

// Login issues a token pair for an identity the pipeline already
// authenticated.
func (s *UserService) Login(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	return s.issueTokens(ctx, user.ID, user.Verify)
}

// Logout revokes the refresh grant. Deleting an absent token is not an error
// here; the refresh-token guard already rejected tokens missing from the
// store.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokens.DeleteByToken(ctx, refreshToken); err != nil {
		return autherror.Internal(err)
	}
	return nil
}

// Refresh rotates a refresh token: the old grant is deleted first, and only
// the caller whose delete actually removed the row may mint the replacement
// pair. The loser of a concurrent race fails exactly like a token that never
// existed.
func (s *UserService) Refresh(ctx context.Context, refreshToken string, claims *TokenClaims) (*dto.TokenResponse, error) {
	deleted, err := s.tokens.DeleteByToken(ctx, refreshToken)
	if err != nil {
		return nil, autherror.Internal(err)
	}
	if deleted == 0 {
		return nil, autherror.ErrUsedOrNonexistentRefresh
	}

	return s.issueTokens(ctx, claims.UserID, claims.Verify)
}

// GetUser resolves an id to a user or ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, autherror.Internal(err)
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return user, nil
}

// VerifyEmail moves the account to Verified, clears the pending token and
// issues a fresh pair carrying the new status. The "already verified"
// short-circuit is the caller's job; this operation just applies the
// transition.
func (s *UserService) VerifyEmail(ctx context.Context, userID string) (*dto.TokenResponse, error) {
	verified := domain.VerifyVerified
	empty := ""
	patch := &domain.UserPatch{Verify: &verified, EmailVerifyToken: &empty}
	if err := s.users.Update(ctx, userID, patch); err != nil {
		return nil, asAppError(err)
	}

	return s.issueTokens(ctx, userID, verified)
}

// ResendVerifyEmail signs a new email-verify token, replaces the pending one
// and dispatches it. Callers ensure the account is not yet verified.
func (s *UserService) ResendVerifyEmail(ctx context.Context, user *domain.User) error {
	token, err := s.signer.Sign(domain.TokenEmailVerify, user.ID, user.Verify)
	if err != nil {
		return autherror.Internal(err)
	}

	if err := s.users.Update(ctx, user.ID, &domain.UserPatch{EmailVerifyToken: &token}); err != nil {
		return asAppError(err)
	}

	if err := s.mailer.SendVerifyEmail(user.Email, user.Name, token); err != nil {
		s.log.Warn("failed to send verify email", "user_id", user.ID, "error", err)
	}

	return nil
}

// ForgotPassword signs a reset token, persists it on the record and mails the
// reset link.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return autherror.Internal(err)
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	token, err := s.signer.Sign(domain.TokenForgotPassword, user.ID, user.Verify)
	if err != nil {
		return autherror.Internal(err)
	}

	if err := s.users.Update(ctx, user.ID, &domain.UserPatch{ForgotPasswordToken: &token}); err != nil {
		return asAppError(err)
	}

	if err := s.mailer.SendForgotPasswordEmail(user.Email, user.Name, token); err != nil {
		s.log.Warn("failed to send forgot password email", "user_id", user.ID, "error", err)
	}

	return nil
}

// ResetPassword replaces the password digest and clears the pending reset
// token.
func (s *UserService) ResetPassword(ctx context.Context, userID, password string) error {
	digest := s.hashPassword(password)
	empty := ""
	patch := &domain.UserPatch{Password: &digest, ForgotPasswordToken: &empty}
	if err := s.users.Update(ctx, userID, patch); err != nil {
		return asAppError(err)
	}
	return nil
}

// ChangePassword rechecks the old password from an authenticated context and
// replaces the digest.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Password != s.hashPassword(oldPassword) {
		return autherror.ErrOldPasswordIncorrect
	}

	digest := s.hashPassword(newPassword)
	if err := s.users.Update(ctx, userID, &domain.UserPatch{Password: &digest}); err != nil {
		return asAppError(err)
	}
	return nil
}

// UpdateMe applies a whitelisted profile patch and returns the updated user.
func (s *UserService) UpdateMe(ctx context.Context, userID string, patch *domain.UserPatch) (*domain.User, error) {
	if patch.Username != nil {
		existing, err := s.users.FindByUsername(ctx, *patch.Username)
		if err != nil {
			return nil, autherror.Internal(err)
		}
		if existing != nil && existing.ID != userID {
			return nil, autherror.ErrUsernameAlreadyInUse
		}
	}

	if err := s.users.Update(ctx, userID, patch); err != nil {
		return nil, asAppError(err)
	}

	return s.GetUser(ctx, userID)
}

// Follow inserts a follow edge, rejecting self-edges and duplicates. The
// unique pair constraint backs up the advisory duplicate check.
func (s *UserService) Follow(ctx context.Context, userID, followedUserID string) error {
	if userID == followedUserID {
		return autherror.ErrCannotFollowSelf
	}

	existing, err := s.followers.Find(ctx, userID, followedUserID)
	if err != nil {
		return autherror.Internal(err)
	}
	if existing != nil {
		return autherror.ErrAlreadyFollowed
	}

	edge := &domain.Follower{
		ID:             uuid.NewString(),
		UserID:         userID,
		FollowedUserID: followedUserID,
		CreatedAt:      time.Now(),
	}
	if err := s.followers.Create(ctx, edge); err != nil {
		return asAppError(err)
	}
	return nil
}

// Unfollow removes the edge; removing an absent edge is a no-op success.
func (s *UserService) Unfollow(ctx context.Context, userID, followedUserID string) error {
	if _, err := s.followers.Delete(ctx, userID, followedUserID); err != nil {
		return autherror.Internal(err)
	}
	return nil
}
