package planner

import (
	"strings"
	"testing"
)

func TestEligibleForPlan(t *testing.T) {
	tests := []struct {
		name             string
		questionnaireKey string
		totalScore       int
		want             bool
	}{
		{name: "PHQ-9 above threshold", questionnaireKey: "PHQ-9", totalScore: 5, want: true},
		{name: "PHQ-9 at threshold", questionnaireKey: "PHQ-9", totalScore: 4, want: false},
		{name: "PHQ-9 minimal score", questionnaireKey: "PHQ-9", totalScore: 0, want: false},
		{name: "other questionnaire", questionnaireKey: "GAD-7", totalScore: 15, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EligibleForPlan(tt.questionnaireKey, tt.totalScore); got != tt.want {
				t.Errorf("EligibleForPlan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Moderate", 12)
	if !strings.Contains(prompt, `"Moderate"`) {
		t.Error("prompt should contain the severity level")
	}
	if !strings.Contains(prompt, "score of 12") {
		t.Error("prompt should contain the total score")
	}
	if !strings.Contains(prompt, "3-day") {
		t.Error("prompt should ask for a 3-day plan")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("should produce error without API key")
	}
}
