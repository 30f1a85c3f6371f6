package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScoringRule maps an inclusive total score range to a severity level.
// The order of the rules inside a questionnaire is significant: the first
// rule containing a score wins.
type ScoringRule struct {
	Level    string `bson:"level" json:"level"`
	MinScore int    `bson:"minScore" json:"minScore"`
	MaxScore int    `bson:"maxScore" json:"maxScore"`
}

type Questionnaire struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Key          string             `bson:"key" json:"key"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	ScoringRules []ScoringRule      `bson:"scoringRules" json:"scoringRules"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
}

type Option struct {
	Text  string `bson:"text" json:"text"`
	Value int    `bson:"value" json:"value"`
}

type Question struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionnaireKey string             `bson:"questionnaireId" json:"questionnaireId"`
	Text             string             `bson:"text" json:"text"`
	Options          []Option           `bson:"options" json:"options"`
	Order            int                `bson:"order" json:"order"`
}
