package wellness

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

func (dbService *WellnessDBService) CreateQuestionnaire(questionnaire assessmentTypes.Questionnaire) (assessmentTypes.Questionnaire, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionQuestionnaires().InsertOne(ctx, questionnaire)
	if err != nil {
		return questionnaire, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if ok {
		questionnaire.ID = id
	}
	return questionnaire, nil
}

// GetQuestionnaireByKey looks up a questionnaire by its business key, e.g. "PHQ-9".
func (dbService *WellnessDBService) GetQuestionnaireByKey(key string) (questionnaire assessmentTypes.Questionnaire, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"key": key}
	err = dbService.collectionQuestionnaires().FindOne(ctx, filter).Decode(&questionnaire)
	return questionnaire, err
}

func (dbService *WellnessDBService) GetQuestionnaires() (questionnaires []assessmentTypes.Questionnaire, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.M{"title": 1})
	cursor, err := dbService.collectionQuestionnaires().Find(ctx, bson.M{}, opts)
	if err != nil {
		return questionnaires, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &questionnaires)
	return questionnaires, err
}
