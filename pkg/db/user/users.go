package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	userTypes "github.com/Lokeshwar-goud/Psyvana/pkg/user-management/types"
)

// CreateUser inserts a new user document. A duplicate email surfaces as a
// mongo write error with the duplicate key code.
func (dbService *UserDBService) CreateUser(user userTypes.User) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionUsers().InsertOne(ctx, user)
	if err != nil {
		return user, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if ok {
		user.ID = id
	}
	return user, nil
}

func (dbService *UserDBService) GetUser(userID string) (user userTypes.User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, err
	}

	err = dbService.collectionUsers().FindOne(ctx, bson.M{"_id": _id}).Decode(&user)
	return user, err
}

func (dbService *UserDBService) GetUserByEmail(email string) (user userTypes.User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	err = dbService.collectionUsers().FindOne(ctx, bson.M{"account.email": email}).Decode(&user)
	return user, err
}

func (dbService *UserDBService) ReplaceUser(user userTypes.User) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"_id": user.ID}
	res, err := dbService.collectionUsers().ReplaceOne(ctx, filter, user)
	if err != nil {
		return user, err
	}
	if res.MatchedCount == 0 {
		return user, mongo.ErrNoDocuments
	}
	return user, nil
}

func (dbService *UserDBService) SaveFailedLoginAttempt(userID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	update := bson.M{"$push": bson.M{"account.failedLoginAttempts": time.Now().Unix()}}
	_, err = dbService.collectionUsers().UpdateOne(ctx, bson.M{"_id": _id}, update)
	return err
}

// CountRecentlyCreatedUsers counts signups inside the given time window,
// used for the signup rate limit.
func (dbService *UserDBService) CountRecentlyCreatedUsers(windowSeconds int64) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"timestamps.createdAt": bson.M{"$gt": time.Now().Unix() - windowSeconds}}
	return dbService.collectionUsers().CountDocuments(ctx, filter)
}

// IsDuplicateKeyError reports whether the error from CreateUser means the
// email address is already registered.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
