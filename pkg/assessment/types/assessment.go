package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answers collects the chosen option value per question ID. One entry per
// question, last selection wins.
type Answers map[string]int

// AnswerValueOf converts a loosely typed answer value (e.g. decoded from
// JSON or BSON) into its score contribution. Non-numeric values count as
// zero.
func AnswerValueOf(v interface{}) int {
	switch value := v.(type) {
	case int:
		return value
	case int32:
		return int(value)
	case int64:
		return int(value)
	case float32:
		return int(value)
	case float64:
		return int(value)
	default:
		return 0
	}
}

// AnswersFromRaw converts a raw answer map into the typed form, defaulting
// non-numeric values to zero.
func AnswersFromRaw(raw map[string]interface{}) Answers {
	answers := make(Answers, len(raw))
	for questionID, value := range raw {
		answers[questionID] = AnswerValueOf(value)
	}
	return answers
}

type CompletedAssessment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           string             `bson:"userId" json:"userId"`
	QuestionnaireKey string             `bson:"questionnaireId" json:"questionnaireId"`
	Answers          Answers            `bson:"answers" json:"answers"`
	TotalScore       int                `bson:"totalScore" json:"totalScore"`
	SeverityLevel    string             `bson:"severityLevel" json:"severityLevel"`
	CompletedAt      int64              `bson:"completedAt" json:"completedAt"`

	// Attached asynchronously by the enrichment job, never by the API.
	WellnessPlan string `bson:"wellnessPlan,omitempty" json:"wellnessPlan,omitempty"`
}

type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`

	// Attached asynchronously by the enrichment job. Pointers so that an
	// entry that was not analyzed yet can be told apart from a neutral one.
	SentimentScore     *float64 `bson:"sentimentScore,omitempty" json:"sentimentScore,omitempty"`
	SentimentMagnitude *float64 `bson:"sentimentMagnitude,omitempty" json:"sentimentMagnitude,omitempty"`
}
