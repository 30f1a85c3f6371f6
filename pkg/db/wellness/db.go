package wellness

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
	COLLECTION_NAME_QUESTIONNAIRES        = "questionnaires"
	COLLECTION_NAME_QUESTIONS             = "questions"
	COLLECTION_NAME_COMPLETED_ASSESSMENTS = "completedAssessments"
	COLLECTION_NAME_JOURNAL_ENTRIES       = "journalEntries"
)

type WellnessDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewWellnessDBService(configs db.DBConfig) (*WellnessDBService, error) {
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

	wellnessDBSc := &WellnessDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if err := wellnessDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for wellness DB", slog.String("error", err.Error()))
	}

	return wellnessDBSc, nil
}

func (dbService *WellnessDBService) getDBName() string {
	return dbService.DBNamePrefix + "wellnessDB"
}

func (dbService *WellnessDBService) collectionQuestionnaires() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_QUESTIONNAIRES)
}

func (dbService *WellnessDBService) collectionQuestions() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_QUESTIONS)
}

func (dbService *WellnessDBService) collectionCompletedAssessments() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_COMPLETED_ASSESSMENTS)
}

func (dbService *WellnessDBService) collectionJournalEntries() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_JOURNAL_ENTRIES)
}

func (dbService *WellnessDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *WellnessDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for wellness DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionQuestionnaires().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		slog.Error("Error creating index for questionnaires", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionQuestions().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "questionnaireId", Value: 1},
				{Key: "order", Value: 1},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating index for questions", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionCompletedAssessments().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "userId", Value: 1},
					{Key: "completedAt", Value: -1},
				},
			},
			{
				Keys: bson.D{
					{Key: "questionnaireId", Value: 1},
					{Key: "totalScore", Value: 1},
				},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating index for completedAssessments", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionJournalEntries().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating index for journalEntries", slog.String("error", err.Error()))
	}

	return nil
}
