package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/Lokeshwar-goud/Psyvana/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_USERS        = "users"
	COLLECTION_NAME_RENEW_TOKENS = "renewTokens"
)

const RENEW_TOKEN_DEFAULT_LIFETIME = 60 * 60 * 24 * 90 // 90 days

type UserDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewUserDBService(configs db.DBConfig) (*UserDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	userDBSc := &UserDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if err := userDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for user DB", slog.String("error", err.Error()))
	}

	return userDBSc, nil
}

func (dbService *UserDBService) getDBName() string {
	return dbService.DBNamePrefix + "userDB"
}

func (dbService *UserDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *UserDBService) collectionUsers() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_USERS)
}

func (dbService *UserDBService) collectionRenewTokens() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_RENEW_TOKENS)
}

func (dbService *UserDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for user DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionUsers().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "account.email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "timestamps.createdAt", Value: 1}},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating index for users", slog.String("error", err.Error()))
	}

	// renew tokens: auto delete after their lifetime
	_, err = dbService.collectionRenewTokens().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(RENEW_TOKEN_DEFAULT_LIFETIME),
		},
	)
	if err != nil {
		slog.Error("Error creating index for renewTokens", slog.String("error", err.Error()))
	}

	return nil
}
