package jwthandling

import (
	"testing"
	"time"
)

func TestAppUserToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateNewAppUserToken(time.Hour, "user-1", "Pat", true, "test-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, valid, err := ValidateAppUserToken(token, "test-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Fatal("token should be valid")
		}
		if claims.Subject != "user-1" || claims.DisplayName != "Pat" || !claims.IsAdmin {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		token, err := GenerateNewAppUserToken(time.Hour, "user-1", "Pat", false, "test-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, valid, _ := ValidateAppUserToken(token, "other-key")
		if valid {
			t.Error("token should not validate with the wrong key")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateNewAppUserToken(-time.Minute, "user-1", "Pat", false, "test-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, valid, err := ValidateAppUserToken(token, "test-key")
		if valid || err == nil {
			t.Error("expired token should not validate")
		}
	})
}
