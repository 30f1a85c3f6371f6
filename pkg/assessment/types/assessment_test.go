package types

import (
	"testing"
)

func TestAnswerValueOf(t *testing.T) {
	t.Run("numeric values", func(t *testing.T) {
		if got := AnswerValueOf(3); got != 3 {
			t.Errorf("unexpected value: %d", got)
		}
		if got := AnswerValueOf(int64(2)); got != 2 {
			t.Errorf("unexpected value: %d", got)
		}
		if got := AnswerValueOf(float64(1)); got != 1 {
			t.Errorf("unexpected value: %d", got)
		}
	})

	t.Run("non-numeric values count as zero", func(t *testing.T) {
		if got := AnswerValueOf("2"); got != 0 {
			t.Errorf("unexpected value: %d", got)
		}
		if got := AnswerValueOf(nil); got != 0 {
			t.Errorf("unexpected value: %d", got)
		}
		if got := AnswerValueOf(true); got != 0 {
			t.Errorf("unexpected value: %d", got)
		}
	})
}

func TestAnswersFromRaw(t *testing.T) {
	raw := map[string]interface{}{
		"q1": float64(3),
		"q2": "not a number",
		"q3": 2,
	}
	answers := AnswersFromRaw(raw)
	if len(answers) != 3 {
		t.Fatalf("unexpected number of answers: %d", len(answers))
	}
	if answers["q1"] != 3 || answers["q2"] != 0 || answers["q3"] != 2 {
		t.Errorf("unexpected answers: %v", answers)
	}
}
