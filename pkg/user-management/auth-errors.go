package usermanagement

import (
	"errors"
)

// Classified authentication failures. Handlers map these onto the fixed
// set of user-facing messages below; anything unrecognized falls back to
// the generic message.
var (
	ErrAccountNotFound  = errors.New("no account found for this email")
	ErrWrongPassword    = errors.New("wrong password")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrWeakPassword     = errors.New("password too weak")
	ErrEmailInUse       = errors.New("email already in use")
	ErrTooManyAttempts  = errors.New("too many failed attempts")
	ErrMissingArguments = errors.New("missing required fields")
)

const (
	AUTH_MSG_NO_ACCOUNT     = "No account found with this email."
	AUTH_MSG_WRONG_PASSWORD = "Incorrect password. Please try again."
	AUTH_MSG_INVALID_EMAIL  = "The email address is not valid."
	AUTH_MSG_WEAK_PASSWORD  = "The password must be at least 6 characters long."
	AUTH_MSG_EMAIL_IN_USE   = "This email address is already registered."
	AUTH_MSG_LOGIN_FAILED   = "Login failed. Please try again later."
	AUTH_MSG_SIGNUP_FAILED  = "Sign-up failed. Please try again later."
)

func LoginErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return AUTH_MSG_NO_ACCOUNT
	case errors.Is(err, ErrWrongPassword):
		return AUTH_MSG_WRONG_PASSWORD
	case errors.Is(err, ErrInvalidEmail):
		return AUTH_MSG_INVALID_EMAIL
	default:
		return AUTH_MSG_LOGIN_FAILED
	}
}

func SignupErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmailInUse):
		return AUTH_MSG_EMAIL_IN_USE
	case errors.Is(err, ErrWeakPassword):
		return AUTH_MSG_WEAK_PASSWORD
	case errors.Is(err, ErrInvalidEmail):
		return AUTH_MSG_INVALID_EMAIL
	default:
		return AUTH_MSG_SIGNUP_FAILED
	}
}
