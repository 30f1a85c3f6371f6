package pwhash

import (
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Errorf("unexpected hash format: %s", hash)
		}

		match, err := ComparePasswordWithHash(hash, "correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !match {
			t.Error("correct password should match")
		}
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		hash, err := HashPassword("secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		match, err := ComparePasswordWithHash(hash, "secret2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match {
			t.Error("wrong password should not match")
		}
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		h1, _ := HashPassword("secret1")
		h2, _ := HashPassword("secret1")
		if h1 == h2 {
			t.Error("salted hashes should differ")
		}
	})

	t.Run("malformed hash", func(t *testing.T) {
		if _, err := ComparePasswordWithHash("not a hash", "secret"); err == nil {
			t.Error("should produce error")
		}
	})
}
