package usermanagement

import (
	"log/slog"
	"time"

	userDB "github.com/Lokeshwar-goud/Psyvana/pkg/db/user"
	"github.com/Lokeshwar-goud/Psyvana/pkg/user-management/pwhash"
	umUtils "github.com/Lokeshwar-goud/Psyvana/pkg/user-management/utils"

	userTypes "github.com/Lokeshwar-goud/Psyvana/pkg/user-management/types"
)

const (
	loginFailedAttemptWindow = 5 * 60 // seconds
	allowedPasswordAttempts  = 10
)

var userDBService *userDB.UserDBService

func Init(
	dbService *userDB.UserDBService,
) {
	userDBService = dbService
}

// SignUp validates the request, hashes the password and creates the user
// document. Failures come back as the classified sentinel errors.
func SignUp(displayName string, email string, password string) (userTypes.User, error) {
	email = umUtils.SanitizeEmail(email)

	if email == "" || password == "" {
		return userTypes.User{}, ErrMissingArguments
	}
	if !umUtils.CheckEmailFormat(email) {
		return userTypes.User{}, ErrInvalidEmail
	}
	if !umUtils.CheckPasswordFormat(password) {
		return userTypes.User{}, ErrWeakPassword
	}

	hashedPassword, err := pwhash.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		return userTypes.User{}, err
	}

	newUser := userTypes.User{
		Account: userTypes.Account{
			Email:       email,
			Password:    hashedPassword,
			DisplayName: displayName,
		},
		Timestamps: userTypes.Timestamps{
			CreatedAt: time.Now().Unix(),
		},
	}

	createdUser, err := userDBService.CreateUser(newUser)
	if err != nil {
		if userDB.IsDuplicateKeyError(err) {
			return userTypes.User{}, ErrEmailInUse
		}
		slog.Error("failed to create user", slog.String("error", err.Error()))
		return userTypes.User{}, err
	}

	createdUser.Account.Password = ""
	return createdUser, nil
}

// Login verifies the credentials and returns the user. Failed attempts are
// tracked on the account and throttled inside the attempt window.
func Login(email string, password string) (userTypes.User, error) {
	email = umUtils.SanitizeEmail(email)

	if email == "" || password == "" {
		return userTypes.User{}, ErrMissingArguments
	}

	user, err := userDBService.GetUserByEmail(email)
	if err != nil {
		return userTypes.User{}, ErrAccountNotFound
	}

	if umUtils.HasMoreAttemptsRecently(user.Account.FailedLoginAttempts, allowedPasswordAttempts, loginFailedAttemptWindow) {
		slog.Warn("login attempt with too many failed attempts", slog.String("userID", user.ID.Hex()))
		if err := userDBService.SaveFailedLoginAttempt(user.ID.Hex()); err != nil {
			slog.Error("failed to save failed login attempt", slog.String("error", err.Error()))
		}
		return userTypes.User{}, ErrTooManyAttempts
	}

	match, err := pwhash.ComparePasswordWithHash(user.Account.Password, password)
	if err != nil || !match {
		if err := userDBService.SaveFailedLoginAttempt(user.ID.Hex()); err != nil {
			slog.Error("failed to save failed login attempt", slog.String("error", err.Error()))
		}
		return userTypes.User{}, ErrWrongPassword
	}

	user.Timestamps.LastLogin = time.Now().Unix()
	user.Account.FailedLoginAttempts = umUtils.RemoveAttemptsOlderThan(user.Account.FailedLoginAttempts, 3600)

	user, err = userDBService.ReplaceUser(user)
	if err != nil {
		slog.Error("failed to update user after login", slog.String("userID", user.ID.Hex()), slog.String("error", err.Error()))
		return userTypes.User{}, err
	}

	user.Account.Password = ""
	return user, nil
}
