package wellness

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

func (dbService *WellnessDBService) SaveJournalEntry(entry assessmentTypes.JournalEntry) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	entry.ID = primitive.NilObjectID
	entry.CreatedAt = time.Now().Unix()

	res, err := dbService.collectionJournalEntries().InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNoDocuments
	}
	return id.Hex(), nil
}

// GetJournalHistoryForUser returns all journal entries of a user, newest
// first. A user without entries yields an empty list, not an error.
func (dbService *WellnessDBService) GetJournalHistoryForUser(userID string) ([]assessmentTypes.JournalEntry, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := dbService.collectionJournalEntries().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	history := []assessmentTypes.JournalEntry{}
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (dbService *WellnessDBService) FindJournalEntriesWithoutSentiment(limit int64) ([]assessmentTypes.JournalEntry, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"sentimentScore": bson.M{"$exists": false}}
	opts := options.Find().SetSort(bson.M{"createdAt": 1}).SetLimit(limit)

	cursor, err := dbService.collectionJournalEntries().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []assessmentTypes.JournalEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SetSentiment attaches the analyzed sentiment to a stored journal entry.
func (dbService *WellnessDBService) SetSentiment(entryID string, score float64, magnitude float64) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionJournalEntries().UpdateOne(
		ctx,
		bson.M{"_id": _id},
		bson.M{"$set": bson.M{
			"sentimentScore":     score,
			"sentimentMagnitude": magnitude,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
