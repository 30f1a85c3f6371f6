package wellness

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

// SaveAssessment stores a completed assessment with a server-assigned
// completion timestamp and returns the new record's ID.
func (dbService *WellnessDBService) SaveAssessment(assessment assessmentTypes.CompletedAssessment) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	assessment.ID = primitive.NilObjectID
	assessment.CompletedAt = time.Now().Unix()

	res, err := dbService.collectionCompletedAssessments().InsertOne(ctx, assessment)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNoDocuments
	}
	return id.Hex(), nil
}

func (dbService *WellnessDBService) GetAssessmentByID(assessmentID string) (assessment assessmentTypes.CompletedAssessment, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return assessment, err
	}

	filter := bson.M{"_id": _id}
	err = dbService.collectionCompletedAssessments().FindOne(ctx, filter).Decode(&assessment)
	return assessment, err
}

// GetAssessmentHistoryForUser returns all completed assessments of a user,
// newest first. A user without records yields an empty list, not an error.
func (dbService *WellnessDBService) GetAssessmentHistoryForUser(userID string) ([]assessmentTypes.CompletedAssessment, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.M{"completedAt": -1})

	cursor, err := dbService.collectionCompletedAssessments().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	history := []assessmentTypes.CompletedAssessment{}
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// FindAssessmentsWithoutWellnessPlan returns assessments of the given
// questionnaire above the score threshold that have no wellness plan yet.
func (dbService *WellnessDBService) FindAssessmentsWithoutWellnessPlan(questionnaireKey string, minScoreExclusive int, limit int64) ([]assessmentTypes.CompletedAssessment, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"questionnaireId": questionnaireKey,
		"totalScore":      bson.M{"$gt": minScoreExclusive},
		"wellnessPlan":    bson.M{"$exists": false},
	}
	opts := options.Find().SetSort(bson.M{"completedAt": 1}).SetLimit(limit)

	cursor, err := dbService.collectionCompletedAssessments().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assessments := []assessmentTypes.CompletedAssessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// SetWellnessPlan attaches the generated plan to a stored assessment. This
// is the only mutation of a completed assessment after its creation.
func (dbService *WellnessDBService) SetWellnessPlan(assessmentID string, plan string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionCompletedAssessments().UpdateOne(
		ctx,
		bson.M{"_id": _id},
		bson.M{"$set": bson.M{"wellnessPlan": plan}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
