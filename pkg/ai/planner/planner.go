package planner

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	// Wellness plans are only generated for PHQ-9 results above this score.
	ELIGIBLE_QUESTIONNAIRE_KEY = "PHQ-9"
	MIN_SCORE_EXCLUSIVE        = 4

	DEFAULT_MODEL = "gemini-2.0-flash"
)

// EligibleForPlan reports whether an assessment qualifies for a generated
// wellness plan.
func EligibleForPlan(questionnaireKey string, totalScore int) bool {
	return questionnaireKey == ELIGIBLE_QUESTIONNAIRE_KEY && totalScore > MIN_SCORE_EXCLUSIVE
}

type Config struct {
	APIKey string `json:"api_key" yaml:"api_key"`
	Model  string `json:"model" yaml:"model"`
}

// Planner generates "First Steps" wellness plans with the Gemini API.
type Planner struct {
	client *genai.Client
	model  string
}

func New(cfg Config) (*Planner, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = DEFAULT_MODEL
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Planner{
		client: client,
		model:  model,
	}, nil
}

// GeneratePlan produces the multi-line plan text for the given result.
func (p *Planner) GeneratePlan(ctx context.Context, severityLevel string, totalScore int) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(buildPrompt(severityLevel, totalScore), genai.RoleUser),
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	plan := result.Text()
	if plan == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return plan, nil
}

func buildPrompt(severityLevel string, totalScore int) string {
	return fmt.Sprintf(`You are a compassionate wellness assistant for an app called Psyvana.
A user has just completed a PHQ-9 depression assessment and their result is %q with a score of %d.
Based on this result, create a simple, safe, and encouraging 3-day "First Steps" wellness plan.
The plan should be non-medical and focus on very small, actionable behaviors.
For each day, provide one simple activity suggestion related to either mindfulness, physical activity, or self-reflection.
Format the output as a single string with each day's plan separated by a newline character (\n). For example:
Day 1: [Suggestion]
Day 2: [Suggestion]
Day 3: [Suggestion]`, severityLevel, totalScore)
}
