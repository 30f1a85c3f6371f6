package assessment

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

// in-memory WellnessStore for exercising the service functions without a
// database
type fakeWellnessStore struct {
	questionnaires     map[string]assessmentTypes.Questionnaire
	questions          map[string][]assessmentTypes.Question
	assessments        map[string]assessmentTypes.CompletedAssessment
	journal            map[string]assessmentTypes.JournalEntry
	failQuestionnaires bool
}

func newFakeWellnessStore() *fakeWellnessStore {
	return &fakeWellnessStore{
		questionnaires: map[string]assessmentTypes.Questionnaire{},
		questions:      map[string][]assessmentTypes.Question{},
		assessments:    map[string]assessmentTypes.CompletedAssessment{},
		journal:        map[string]assessmentTypes.JournalEntry{},
	}
}

func (s *fakeWellnessStore) GetQuestionnaireByKey(key string) (assessmentTypes.Questionnaire, error) {
	if s.failQuestionnaires {
		return assessmentTypes.Questionnaire{}, errors.New("questionnaires unavailable")
	}
	questionnaire, ok := s.questionnaires[key]
	if !ok {
		return assessmentTypes.Questionnaire{}, errors.New("questionnaire not found")
	}
	return questionnaire, nil
}

func (s *fakeWellnessStore) GetQuestionsForQuestionnaire(questionnaireKey string) ([]assessmentTypes.Question, error) {
	return s.questions[questionnaireKey], nil
}

func (s *fakeWellnessStore) GetQuestionnaires() ([]assessmentTypes.Questionnaire, error) {
	questionnaires := []assessmentTypes.Questionnaire{}
	for _, questionnaire := range s.questionnaires {
		questionnaires = append(questionnaires, questionnaire)
	}
	return questionnaires, nil
}

func (s *fakeWellnessStore) SaveAssessment(assessment assessmentTypes.CompletedAssessment) (string, error) {
	assessment.ID = primitive.NewObjectID()
	s.assessments[assessment.ID.Hex()] = assessment
	return assessment.ID.Hex(), nil
}

func (s *fakeWellnessStore) GetAssessmentByID(assessmentID string) (assessmentTypes.CompletedAssessment, error) {
	assessment, ok := s.assessments[assessmentID]
	if !ok {
		return assessmentTypes.CompletedAssessment{}, errors.New("assessment not found")
	}
	return assessment, nil
}

func (s *fakeWellnessStore) GetAssessmentHistoryForUser(userID string) ([]assessmentTypes.CompletedAssessment, error) {
	history := []assessmentTypes.CompletedAssessment{}
	for _, assessment := range s.assessments {
		if assessment.UserID == userID {
			history = append(history, assessment)
		}
	}
	return history, nil
}

func (s *fakeWellnessStore) SaveJournalEntry(entry assessmentTypes.JournalEntry) (string, error) {
	entry.ID = primitive.NewObjectID()
	s.journal[entry.ID.Hex()] = entry
	return entry.ID.Hex(), nil
}

func (s *fakeWellnessStore) GetJournalHistoryForUser(userID string) ([]assessmentTypes.JournalEntry, error) {
	history := []assessmentTypes.JournalEntry{}
	for _, entry := range s.journal {
		if entry.UserID == userID {
			history = append(history, entry)
		}
	}
	return history, nil
}

func TestSaveAndGetResult(t *testing.T) {
	store := newFakeWellnessStore()
	store.questionnaires["PHQ-9"] = assessmentTypes.Questionnaire{
		Key:          "PHQ-9",
		Title:        "Self Assessment (PHQ-9)",
		ScoringRules: phq9Rules,
	}
	Init(store)

	answers := assessmentTypes.Answers{"q1": 3, "q2": 3, "q3": 3, "q4": 3}

	assessmentID, err := SaveResult("user1", "PHQ-9", answers, 12, "Moderate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("result round trip", func(t *testing.T) {
		result, err := GetResultByID("user1", assessmentID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TotalScore != 12 || result.SeverityLevel != "Moderate" {
			t.Errorf("unexpected result: %v", result)
		}
		if len(result.ScoringRules) != len(phq9Rules) {
			t.Errorf("unexpected scoring rules: %v", result.ScoringRules)
		}
	})

	t.Run("reading twice returns the same data", func(t *testing.T) {
		first, err := GetResultByID("user1", assessmentID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := GetResultByID("user1", assessmentID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.TotalScore != second.TotalScore || first.SeverityLevel != second.SeverityLevel {
			t.Errorf("results differ: %v vs %v", first, second)
		}
	})

	t.Run("result of another user is not visible", func(t *testing.T) {
		if _, err := GetResultByID("user2", assessmentID); !errors.Is(err, ErrNotOwned) {
			t.Errorf("should produce ErrNotOwned, got: %v", err)
		}
	})

	t.Run("score is still returned when rules cannot be loaded", func(t *testing.T) {
		store.failQuestionnaires = true
		defer func() { store.failQuestionnaires = false }()

		result, err := GetResultByID("user1", assessmentID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TotalScore != 12 || result.SeverityLevel != "Moderate" {
			t.Errorf("unexpected result: %v", result)
		}
		if len(result.ScoringRules) != 0 {
			t.Errorf("unexpected scoring rules: %v", result.ScoringRules)
		}
	})
}

func TestLoadQuestionnaire(t *testing.T) {
	store := newFakeWellnessStore()
	store.questionnaires["PHQ-9"] = assessmentTypes.Questionnaire{
		Key:          "PHQ-9",
		ScoringRules: phq9Rules,
	}
	store.questions["PHQ-9"] = []assessmentTypes.Question{
		{QuestionnaireKey: "PHQ-9", Text: "q1", Order: 1},
	}
	Init(store)

	t.Run("returns rules and questions", func(t *testing.T) {
		questionnaire, questions := LoadQuestionnaire("PHQ-9")
		if len(questionnaire.ScoringRules) != len(phq9Rules) {
			t.Errorf("unexpected scoring rules: %v", questionnaire.ScoringRules)
		}
		if len(questions) != 1 {
			t.Errorf("unexpected questions: %v", questions)
		}
	})

	t.Run("empty state on failed read", func(t *testing.T) {
		store.failQuestionnaires = true
		defer func() { store.failQuestionnaires = false }()

		questionnaire, questions := LoadQuestionnaire("PHQ-9")
		if questionnaire.Key != "" || questions != nil {
			t.Errorf("should return empty state, got: %v, %v", questionnaire, questions)
		}
	})
}
