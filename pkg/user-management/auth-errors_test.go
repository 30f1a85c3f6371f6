package usermanagement

import (
	"errors"
	"testing"
)

func TestLoginErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no account", err: ErrAccountNotFound, want: AUTH_MSG_NO_ACCOUNT},
		{name: "wrong password", err: ErrWrongPassword, want: AUTH_MSG_WRONG_PASSWORD},
		{name: "invalid email", err: ErrInvalidEmail, want: AUTH_MSG_INVALID_EMAIL},
		{name: "unrecognized error falls back to generic", err: errors.New("backend exploded"), want: AUTH_MSG_LOGIN_FAILED},
		{name: "throttled is not leaked", err: ErrTooManyAttempts, want: AUTH_MSG_LOGIN_FAILED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoginErrorMessage(tt.err); got != tt.want {
				t.Errorf("LoginErrorMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignupErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "email in use", err: ErrEmailInUse, want: AUTH_MSG_EMAIL_IN_USE},
		{name: "weak password", err: ErrWeakPassword, want: AUTH_MSG_WEAK_PASSWORD},
		{name: "invalid email", err: ErrInvalidEmail, want: AUTH_MSG_INVALID_EMAIL},
		{name: "unrecognized error falls back to generic", err: errors.New("backend exploded"), want: AUTH_MSG_SIGNUP_FAILED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignupErrorMessage(tt.err); got != tt.want {
				t.Errorf("SignupErrorMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}
