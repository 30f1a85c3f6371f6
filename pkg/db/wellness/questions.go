package wellness

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

func (dbService *WellnessDBService) AddQuestion(question assessmentTypes.Question) (assessmentTypes.Question, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionQuestions().InsertOne(ctx, question)
	if err != nil {
		return question, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if ok {
		question.ID = id
	}
	return question, nil
}

// GetQuestionsForQuestionnaire returns the questions of a questionnaire
// sorted ascending by their order field.
func (dbService *WellnessDBService) GetQuestionsForQuestionnaire(questionnaireKey string) (questions []assessmentTypes.Question, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"questionnaireId": questionnaireKey}
	opts := options.Find().SetSort(bson.M{"order": 1})

	cursor, err := dbService.collectionQuestions().Find(ctx, filter, opts)
	if err != nil {
		return questions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &questions)
	return questions, err
}

func (dbService *WellnessDBService) CountQuestionsForQuestionnaire(questionnaireKey string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionQuestions().CountDocuments(ctx, bson.M{"questionnaireId": questionnaireKey})
}
