package domain

import "time"

// VerifyStatus is the account verification state. An account moves from
// Unverified to Verified exactly once, via email confirmation. Banned is a
// terminal state reserved for moderation tooling.
type VerifyStatus int8

const (
	VerifyUnverified VerifyStatus = iota
	VerifyVerified
	VerifyBanned
)

func (v VerifyStatus) String() string {
	switch v {
	case VerifyUnverified:
		return "unverified"
	case VerifyVerified:
		return "verified"
	case VerifyBanned:
		return "banned"
	default:
		return "unknown"
	}
}

// User is the identity record. Password holds a keyed one-way digest, never
// plaintext. EmailVerifyToken and ForgotPasswordToken are empty when no
// verification or reset is pending; Verify == VerifyVerified implies
// EmailVerifyToken == "".
type User struct {
	ID                  string
	Email               string
	Password            string
	Name                string
	DateOfBirth         time.Time
	Verify              VerifyStatus
	EmailVerifyToken    string
	ForgotPasswordToken string
	Bio                 string
	Location            string
	Website             string
	Username            string
	Avatar              string
	CoverPhoto          string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// UserPatch is a partial update. Nil fields are left untouched; updated_at is
// always stamped by the repository.
type UserPatch struct {
	Name                *string
	DateOfBirth         *time.Time
	Password            *string
	Verify              *VerifyStatus
	EmailVerifyToken    *string
	ForgotPasswordToken *string
	Bio                 *string
	Location            *string
	Website             *string
	Username            *string
	Avatar              *string
	CoverPhoto          *string
}

// Follower is a follow edge. The (UserID, FollowedUserID) pair is unique and
// self-edges are rejected before insert.
type Follower struct {
	ID             string
	UserID         string
	FollowedUserID string
	CreatedAt      time.Time
}
