package assessment

import (
	"errors"
	"log/slog"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

// ErrNotOwned is returned when a record exists but belongs to another user.
var ErrNotOwned = errors.New("record belongs to another user")

// WellnessStore is the subset of the wellness DB service this package
// depends on.
type WellnessStore interface {
	GetQuestionnaireByKey(key string) (assessmentTypes.Questionnaire, error)
	GetQuestionsForQuestionnaire(questionnaireKey string) ([]assessmentTypes.Question, error)
	GetQuestionnaires() ([]assessmentTypes.Questionnaire, error)
	SaveAssessment(assessment assessmentTypes.CompletedAssessment) (string, error)
	GetAssessmentByID(assessmentID string) (assessmentTypes.CompletedAssessment, error)
	GetAssessmentHistoryForUser(userID string) ([]assessmentTypes.CompletedAssessment, error)
	SaveJournalEntry(entry assessmentTypes.JournalEntry) (string, error)
	GetJournalHistoryForUser(userID string) ([]assessmentTypes.JournalEntry, error)
}

var wellnessDBService WellnessStore

func Init(
	wellnessDB WellnessStore,
) {
	wellnessDBService = wellnessDB
}

// LoadQuestionnaire fetches a questionnaire (with its scoring rules) and
// its questions sorted ascending by order. On a failed remote read it
// returns the empty state; callers treat an empty question list as
// "assessment unavailable" instead of failing hard.
func LoadQuestionnaire(questionnaireKey string) (assessmentTypes.Questionnaire, []assessmentTypes.Question) {
	questionnaire, err := wellnessDBService.GetQuestionnaireByKey(questionnaireKey)
	if err != nil {
		slog.Error("failed to load questionnaire", slog.String("questionnaireKey", questionnaireKey), slog.String("error", err.Error()))
		return assessmentTypes.Questionnaire{}, nil
	}

	questions, err := wellnessDBService.GetQuestionsForQuestionnaire(questionnaireKey)
	if err != nil {
		slog.Error("failed to load questions", slog.String("questionnaireKey", questionnaireKey), slog.String("error", err.Error()))
		return assessmentTypes.Questionnaire{}, nil
	}

	return questionnaire, questions
}

func ListQuestionnaires() ([]assessmentTypes.Questionnaire, error) {
	return wellnessDBService.GetQuestionnaires()
}

// SaveResult persists one immutable assessment record and returns its new
// ID. On failure the caller falls back to passing score and rules to the
// display layer by value.
func SaveResult(
	userID string,
	questionnaireKey string,
	answers assessmentTypes.Answers,
	totalScore int,
	severityLevel string,
) (string, error) {
	return wellnessDBService.SaveAssessment(assessmentTypes.CompletedAssessment{
		UserID:           userID,
		QuestionnaireKey: questionnaireKey,
		Answers:          answers,
		TotalScore:       totalScore,
		SeverityLevel:    severityLevel,
	})
}

// AssessmentResult is what the results view needs: the stored score plus
// the scoring rules of the questionnaire it was taken for.
type AssessmentResult struct {
	TotalScore    int                          `json:"totalScore"`
	SeverityLevel string                       `json:"severityLevel"`
	ScoringRules  []assessmentTypes.ScoringRule `json:"scoringRules"`
	WellnessPlan  string                       `json:"wellnessPlan,omitempty"`
}

// GetResultByID is read only: fetching the same ID twice returns the same
// score and rule data.
func GetResultByID(userID string, assessmentID string) (AssessmentResult, error) {
	stored, err := wellnessDBService.GetAssessmentByID(assessmentID)
	if err != nil {
		return AssessmentResult{}, err
	}
	if stored.UserID != userID {
		return AssessmentResult{}, ErrNotOwned
	}

	result := AssessmentResult{
		TotalScore:    stored.TotalScore,
		SeverityLevel: stored.SeverityLevel,
		WellnessPlan:  stored.WellnessPlan,
	}

	questionnaire, err := wellnessDBService.GetQuestionnaireByKey(stored.QuestionnaireKey)
	if err != nil {
		// the score is still displayable without the rule table
		slog.Warn("failed to load scoring rules for result", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		return result, nil
	}
	result.ScoringRules = questionnaire.ScoringRules
	return result, nil
}

func GetAssessmentHistory(userID string) ([]assessmentTypes.CompletedAssessment, error) {
	return wellnessDBService.GetAssessmentHistoryForUser(userID)
}

func GetJournalHistory(userID string) ([]assessmentTypes.JournalEntry, error) {
	return wellnessDBService.GetJournalHistoryForUser(userID)
}

func SaveJournalEntry(userID string, text string) (string, error) {
	return wellnessDBService.SaveJournalEntry(assessmentTypes.JournalEntry{
		UserID: userID,
		Text:   text,
	})
}
