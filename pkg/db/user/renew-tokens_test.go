package user

import (
	"os"
	"testing"

	"github.com/Lokeshwar-goud/Psyvana/pkg/db"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ENV_TEST_DB_CONNECTION_STR = "TEST_DB_CONNECTION_STR"

func testUserDBService(t *testing.T) *UserDBService {
	t.Helper()

	connStr := os.Getenv(ENV_TEST_DB_CONNECTION_STR)
	if connStr == "" {
		t.Skip("TEST_DB_CONNECTION_STR not set")
	}

	dbService, err := NewUserDBService(db.DBConfig{
		URI:          connStr,
		DBNamePrefix: "test_",
		Timeout:      30,
		MaxPoolSize:  4,
	})
	if err != nil {
		t.Fatalf("failed to connect to test DB: %v", err)
	}
	return dbService
}

func TestDeleteRenewTokensForUser(t *testing.T) {
	dbService := testUserDBService(t)

	userID := primitive.NewObjectID().Hex()

	t.Run("no tokens to delete is not an error", func(t *testing.T) {
		count, err := dbService.DeleteRenewTokensForUser(userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("unexpected count: %d", count)
		}
	})

	t.Run("deletes all tokens of the user", func(t *testing.T) {
		if err := dbService.CreateRenewToken(userID, "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := dbService.CreateRenewToken(userID, "t2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, err := dbService.DeleteRenewTokensForUser(userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("unexpected count: %d", count)
		}

		// deleting again is a no-op, not a failure
		count, err = dbService.DeleteRenewTokensForUser(userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("unexpected count: %d", count)
		}
	})
}
