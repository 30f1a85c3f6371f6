package assessment

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

func testQuestions(n int) []assessmentTypes.Question {
	questions := make([]assessmentTypes.Question, n)
	for i := 0; i < n; i++ {
		questions[i] = assessmentTypes.Question{
			ID:               primitive.NewObjectID(),
			QuestionnaireKey: "PHQ-9",
			Order:            i + 1,
		}
	}
	return questions
}

func TestSessionAdvance(t *testing.T) {
	t.Run("advance without selection is rejected", func(t *testing.T) {
		session := NewSession("u1", assessmentTypes.Questionnaire{Key: "PHQ-9"}, testQuestions(3))
		if _, err := session.Advance(); !errors.Is(err, ErrNoSelection) {
			t.Errorf("unexpected error: %v", err)
		}
		if session.Position() != 0 {
			t.Errorf("position should not move, got %d", session.Position())
		}
	})

	t.Run("advance after selection moves the cursor", func(t *testing.T) {
		session := NewSession("u1", assessmentTypes.Questionnaire{Key: "PHQ-9"}, testQuestions(3))
		if err := session.SelectOption(2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		completed, err := session.Advance()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completed {
			t.Error("should not be completed yet")
		}
		if session.Position() != 1 {
			t.Errorf("unexpected position: %d", session.Position())
		}
	})

	t.Run("the final question is validated like the others", func(t *testing.T) {
		session := NewSession("u1", assessmentTypes.Questionnaire{Key: "PHQ-9"}, testQuestions(2))
		if err := session.SelectOption(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := session.Advance(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// on the last question now, nothing selected
		if _, err := session.Advance(); !errors.Is(err, ErrNoSelection) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("advancing past the final question completes the session", func(t *testing.T) {
		questions := testQuestions(2)
		session := NewSession("u1", assessmentTypes.Questionnaire{Key: "PHQ-9"}, questions)

		_ = session.SelectOption(3)
		if _, err := session.Advance(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_ = session.SelectOption(1)
		completed, err := session.Advance()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !completed || !session.Completed() {
			t.Error("session should be completed")
		}

		answers := session.Answers()
		if len(answers) != 2 {
			t.Fatalf("unexpected number of answers: %d", len(answers))
		}
		if TotalScore(answers) != 4 {
			t.Errorf("unexpected total: %d", TotalScore(answers))
		}

		// terminal state rejects further input
		if err := session.SelectOption(2); !errors.Is(err, ErrSessionCompleted) {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := session.Advance(); !errors.Is(err, ErrSessionCompleted) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("re-selecting overwrites the previous answer", func(t *testing.T) {
		questions := testQuestions(1)
		session := NewSession("u1", assessmentTypes.Questionnaire{Key: "PHQ-9"}, questions)

		_ = session.SelectOption(3)
		_ = session.SelectOption(1)

		answers := session.Answers()
		if answers[questions[0].ID.Hex()] != 1 {
			t.Errorf("unexpected answer value: %d", answers[questions[0].ID.Hex()])
		}
		if len(answers) != 1 {
			t.Errorf("one entry per question expected, got %d", len(answers))
		}
	})
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	session := NewSession("u1", assessmentTypes.Questionnaire{Key: "PHQ-9"}, testQuestions(1))
	store.Add(session)

	t.Run("owner can access the session", func(t *testing.T) {
		got, err := store.Get(session.ID, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != session.ID {
			t.Errorf("unexpected session: %s", got.ID)
		}
	})

	t.Run("other users cannot access the session", func(t *testing.T) {
		if _, err := store.Get(session.ID, "u2"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("removed sessions are gone", func(t *testing.T) {
		store.Remove(session.ID)
		if _, err := store.Get(session.ID, "u1"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
