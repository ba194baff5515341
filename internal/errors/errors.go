// Package errors defines the typed error values shared by the auth services,
// guard middleware and HTTP boundary. Every failure a handler can return is one
// of these; the fiber error handler maps Kind to an HTTP status and anything
// else falls back to InternalServerError.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/annguyen2k3/project-api-twitter/pkg/constant"
)

// Kind classifies an Error for HTTP status mapping.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
	KindInternal
)

// Error is a tagged error value. Fields carries per-field detail for
// validation failures; Err carries the wrapped cause for internal failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two Errors by kind and message so the predefined values below
// work with errors.Is regardless of wrapped causes.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Validation aggregates per-field messages into an UnprocessableEntity error.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: constant.MsgValidationError, Fields: fields}
}

// Internal wraps a store or codec failure that is not attributable to caller
// input.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

var (
	ErrUserNotFound         = NotFound(constant.MsgUserNotFound)
	ErrEmailAlreadyInUse    = Conflict(constant.MsgEmailExists)
	ErrUsernameAlreadyInUse = Conflict(constant.MsgUsernameExists)
	ErrPasswordIncorrect    = Unauthorized(constant.MsgPasswordIncorrect)
	ErrOldPasswordIncorrect = Unauthorized(constant.MsgOldPasswordIncorrect)

	ErrAccessTokenRequired      = Unauthorized(constant.MsgAccessTokenRequired)
	ErrRefreshTokenRequired     = Unauthorized(constant.MsgRefreshTokenRequired)
	ErrEmailVerifyTokenRequired = Unauthorized(constant.MsgEmailVerifyTokenRequired)
	ErrForgotPasswordTokenReqd  = Unauthorized(constant.MsgForgotPasswordTokenReqd)
	ErrForgotPasswordTokenBad   = Unauthorized(constant.MsgForgotPasswordTokenInvalid)
	ErrUsedOrNonexistentRefresh = Unauthorized(constant.MsgUsedOrNonexistentRefresh)

	ErrUserNotVerified = Forbidden(constant.MsgUserNotVerified)

	ErrFollowedUserNotFound = NotFound(constant.MsgFollowedNotFound)
	ErrAlreadyFollowed      = Conflict(constant.MsgAlreadyFollowed)
	ErrCannotFollowSelf     = BadRequest(constant.MsgCannotFollowSelf)
)
