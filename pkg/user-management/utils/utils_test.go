package utils

import (
	"testing"
	"time"
)

func TestSanitizeEmail(t *testing.T) {
	t.Run("with different formats", func(t *testing.T) {
		email := SanitizeEmail("\nUser@Example.COM")
		if email != "user@example.com" {
			t.Errorf("unexpected email: %s", email)
		}

		email = SanitizeEmail("  user@example.com \n\r")
		if email != "user@example.com" {
			t.Errorf("unexpected email: %s", email)
		}
	})
}

func TestCheckEmailFormat(t *testing.T) {
	t.Run("with invalid addresses", func(t *testing.T) {
		if CheckEmailFormat("") {
			t.Error("should be false")
		}
		if CheckEmailFormat("not-an-email") {
			t.Error("should be false")
		}
		if CheckEmailFormat("missing@tld") {
			t.Error("should be false")
		}
	})
	t.Run("with valid addresses", func(t *testing.T) {
		if !CheckEmailFormat("user@example.com") {
			t.Error("should be true")
		}
		if !CheckEmailFormat("first.last+tag@sub.example.org") {
			t.Error("should be true")
		}
	})
}

func TestCheckPasswordFormat(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		if CheckPasswordFormat("12345") {
			t.Error("should be false")
		}
	})
	t.Run("minimum length", func(t *testing.T) {
		if !CheckPasswordFormat("123456") {
			t.Error("should be true")
		}
	})
}

func TestHasMoreAttemptsRecently(t *testing.T) {
	now := time.Now().Unix()

	t.Run("old attempts are ignored", func(t *testing.T) {
		attempts := []int64{now - 1000, now - 900}
		if HasMoreAttemptsRecently(attempts, 1, 60) {
			t.Error("should be false")
		}
	})

	t.Run("recent attempts above threshold", func(t *testing.T) {
		attempts := []int64{now - 10, now - 5, now - 1}
		if !HasMoreAttemptsRecently(attempts, 2, 60) {
			t.Error("should be true")
		}
	})
}

func TestRemoveAttemptsOlderThan(t *testing.T) {
	now := time.Now().Unix()
	attempts := []int64{now - 1000, now - 10}
	kept := RemoveAttemptsOlderThan(attempts, 60)
	if len(kept) != 1 || kept[0] != now-10 {
		t.Errorf("unexpected result: %v", kept)
	}
}
