package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type RenewToken struct {
	UserID    string `bson:"userId"`
	Token     string `bson:"token"`
	CreatedAt int64  `bson:"createdAt"`
}

func (dbService *UserDBService) CreateRenewToken(userID string, token string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRenewTokens().InsertOne(ctx, RenewToken{
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().Unix(),
	})
	return err
}

// FindAndDeleteRenewToken consumes a refresh token: it can be used once.
func (dbService *UserDBService) FindAndDeleteRenewToken(userID string, token string) (RenewToken, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"token":  token,
	}

	var rt RenewToken
	err := dbService.collectionRenewTokens().FindOneAndDelete(ctx, filter).Decode(&rt)
	return rt, err
}

// DeleteRenewTokensForUser removes all refresh tokens of the user. Zero
// deleted tokens is a valid outcome, e.g. when all of them already hit
// the TTL index.
func (dbService *UserDBService) DeleteRenewTokensForUser(userID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionRenewTokens().DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
