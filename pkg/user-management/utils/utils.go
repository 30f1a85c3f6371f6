package utils

import (
	"crypto/rand"
	"encoding/hex"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

const (
	PASSWORD_MIN_LEN = 6
	PASSWORD_MAX_LEN = 512
)

func SanitizeEmail(email string) string {
	email = strings.ToLower(email)
	email = strings.Trim(email, " \n\r")
	return email
}

// CheckEmailFormat to check if input string is a correct email address
func CheckEmailFormat(email string) bool {
	if len(email) > 254 {
		return false
	}
	_, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// additional regex check for correct email format
	emailRule := regexp.MustCompile(`^[a-zA-Z0-9._%+'-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRule.MatchString(email)
}

// CheckPasswordFormat to check if password fulfills password rules: the
// product requires a minimum of 6 characters.
func CheckPasswordFormat(password string) bool {
	pl := len(password)
	return pl >= PASSWORD_MIN_LEN && pl <= PASSWORD_MAX_LEN
}

// HasMoreAttemptsRecently counts the attempt timestamps inside the window
// and compares against the threshold.
func HasMoreAttemptsRecently(attempts []int64, moreThan int, windowSeconds int64) bool {
	cutoff := time.Now().Unix() - windowSeconds
	count := 0
	for _, ts := range attempts {
		if ts > cutoff {
			count++
		}
	}
	return count > moreThan
}

func RemoveAttemptsOlderThan(attempts []int64, olderThanSeconds int64) []int64 {
	cutoff := time.Now().Unix() - olderThanSeconds
	kept := []int64{}
	for _, ts := range attempts {
		if ts > cutoff {
			kept = append(kept, ts)
		}
	}
	return kept
}

// GenerateUniqueTokenString creates a random token string, e.g. for
// refresh tokens.
func GenerateUniqueTokenString() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
