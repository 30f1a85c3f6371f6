package main

import (
	"log/slog"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

const PHQ9_QUESTIONNAIRE_KEY = "PHQ-9"

var phq9ScoringRules = []assessmentTypes.ScoringRule{
	{Level: "Minimal", MinScore: 0, MaxScore: 4},
	{Level: "Mild", MinScore: 5, MaxScore: 9},
	{Level: "Moderate", MinScore: 10, MaxScore: 14},
	{Level: "Moderately Severe", MinScore: 15, MaxScore: 19},
	{Level: "Severe", MinScore: 20, MaxScore: 27},
}

var phq9Questions = []struct {
	Text  string
	Order int
}{
	{"Over the last 2 weeks, how often have you been bothered by little interest or pleasure in doing things?", 1},
	{"Feeling down, depressed, or hopeless?", 2},
	{"Trouble falling or staying asleep, or sleeping too much?", 3},
	{"Feeling tired or having little energy?", 4},
	{"Poor appetite or overeating?", 5},
	{"Feeling bad about yourself - or that you are a failure or have let yourself or your family down?", 6},
	{"Trouble concentrating on things, such as reading the newspaper or watching television?", 7},
	{"Moving or speaking so slowly that other people could have noticed? Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual?", 8},
	{"Thoughts that you would be better off dead, or of hurting yourself in some way?", 9},
}

var phq9Options = []assessmentTypes.Option{
	{Text: "Not at all", Value: 0},
	{Text: "Several days", Value: 1},
	{Text: "More than half the days", Value: 2},
	{Text: "Nearly every day", Value: 3},
}

func main() {
	slog.Info("Starting seed-questionnaires job")

	if _, err := wellnessDBService.GetQuestionnaireByKey(PHQ9_QUESTIONNAIRE_KEY); err == nil {
		slog.Info("Questionnaire already exists, nothing to do", slog.String("questionnaireKey", PHQ9_QUESTIONNAIRE_KEY))
		return
	}

	questionnaire, err := wellnessDBService.CreateQuestionnaire(assessmentTypes.Questionnaire{
		Key:          PHQ9_QUESTIONNAIRE_KEY,
		Title:        "Self Assessment (PHQ-9)",
		Description:  "Over the last 2 weeks, how often have you been bothered by any of the following problems?",
		ScoringRules: phq9ScoringRules,
	})
	if err != nil {
		slog.Error("Failed to create questionnaire", slog.String("questionnaireKey", PHQ9_QUESTIONNAIRE_KEY), slog.String("error", err.Error()))
		return
	}
	slog.Info("Questionnaire created", slog.String("questionnaireKey", questionnaire.Key))

	for _, question := range phq9Questions {
		_, err := wellnessDBService.AddQuestion(assessmentTypes.Question{
			QuestionnaireKey: PHQ9_QUESTIONNAIRE_KEY,
			Text:             question.Text,
			Options:          phq9Options,
			Order:            question.Order,
		})
		if err != nil {
			slog.Error("Failed to add question", slog.Int("order", question.Order), slog.String("error", err.Error()))
			continue
		}
		slog.Info("Question added", slog.Int("order", question.Order))
	}

	slog.Info("Seed-questionnaires job completed")
}
