package assessment

import (
	"testing"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

var phq9Rules = []assessmentTypes.ScoringRule{
	{Level: "Minimal", MinScore: 0, MaxScore: 4},
	{Level: "Mild", MinScore: 5, MaxScore: 9},
	{Level: "Moderate", MinScore: 10, MaxScore: 14},
	{Level: "Severe", MinScore: 15, MaxScore: 27},
}

func TestTotalScore(t *testing.T) {
	t.Run("empty answers", func(t *testing.T) {
		if got := TotalScore(assessmentTypes.Answers{}); got != 0 {
			t.Errorf("unexpected total: %d", got)
		}
	})

	t.Run("sums all values", func(t *testing.T) {
		answers := assessmentTypes.Answers{
			"q1": 3,
			"q2": 0,
			"q3": 2,
			"q4": 1,
		}
		if got := TotalScore(answers); got != 6 {
			t.Errorf("unexpected total: %d", got)
		}
	})

	t.Run("order independent", func(t *testing.T) {
		a := assessmentTypes.Answers{"q1": 1, "q2": 2, "q3": 3}
		b := assessmentTypes.Answers{"q3": 3, "q1": 1, "q2": 2}
		if TotalScore(a) != TotalScore(b) {
			t.Error("totals should not depend on insertion order")
		}
	})

	t.Run("non-numeric raw values count as zero", func(t *testing.T) {
		answers := assessmentTypes.AnswersFromRaw(map[string]interface{}{
			"q1": float64(2),
			"q2": "three",
			"q3": nil,
		})
		if got := TotalScore(answers); got != 2 {
			t.Errorf("unexpected total: %d", got)
		}
	})
}

func TestResolveSeverity(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  string
	}{
		{name: "lower bound of first band", score: 0, want: "Minimal"},
		{name: "upper bound of first band", score: 4, want: "Minimal"},
		{name: "inside a middle band", score: 12, want: "Moderate"},
		{name: "upper bound of last band", score: 27, want: "Severe"},
		{name: "above every band", score: 28, want: SEVERITY_UNDETERMINED},
		{name: "below every band", score: -1, want: SEVERITY_UNDETERMINED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSeverity(phq9Rules, tt.score); got != tt.want {
				t.Errorf("ResolveSeverity() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("no rules", func(t *testing.T) {
		if got := ResolveSeverity(nil, 5); got != SEVERITY_UNDETERMINED {
			t.Errorf("unexpected level: %s", got)
		}
	})

	t.Run("overlapping ranges resolve to the first match", func(t *testing.T) {
		rules := []assessmentTypes.ScoringRule{
			{Level: "First", MinScore: 0, MaxScore: 10},
			{Level: "Second", MinScore: 5, MaxScore: 15},
		}
		if got := ResolveSeverity(rules, 7); got != "First" {
			t.Errorf("unexpected level: %s", got)
		}
		if got := ResolveSeverity(rules, 12); got != "Second" {
			t.Errorf("unexpected level: %s", got)
		}
	})
}
