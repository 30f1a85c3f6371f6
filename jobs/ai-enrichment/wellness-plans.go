package main

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Lokeshwar-goud/Psyvana/pkg/ai/planner"
)

// handleWellnessPlans finds completed assessments that qualify for a
// generated wellness plan but do not have one yet, and fills them in. A
// failed generation is skipped; the record is retried on the next run.
func handleWellnessPlans(wg *sync.WaitGroup) {
	defer wg.Done()
	slog.Info("Start generating wellness plans")

	plannerClient, err := planner.New(conf.GeminiConfig)
	if err != nil {
		slog.Error("Failed to init wellness plan generator", slog.String("error", err.Error()))
		return
	}

	ctx := context.Background()

	success := 0
	failed := 0
	for {
		if failed > MAX_FAILED_ATTEMPTS_BEFORE_STOP {
			slog.Error("Too many failed attempts, stopping wellness plan generation")
			break
		}

		assessments, err := wellnessDBService.FindAssessmentsWithoutWellnessPlan(
			planner.ELIGIBLE_QUESTIONNAIRE_KEY,
			planner.MIN_SCORE_EXCLUSIVE,
			ENRICHMENT_BATCH_SIZE,
		)
		if err != nil {
			slog.Error("Failed to fetch assessments without wellness plan", slog.String("error", err.Error()))
			break
		}

		if len(assessments) == 0 {
			break
		}

		progressed := false
		for _, assessment := range assessments {
			if !planner.EligibleForPlan(assessment.QuestionnaireKey, assessment.TotalScore) {
				slog.Warn("fetched assessment does not qualify for a plan", slog.String("assessmentID", assessment.ID.Hex()))
				continue
			}

			plan, err := plannerClient.GeneratePlan(ctx, assessment.SeverityLevel, assessment.TotalScore)
			if err != nil {
				failed++
				slog.Error("Failed to generate wellness plan", slog.String("assessmentID", assessment.ID.Hex()), slog.String("error", err.Error()))
				continue
			}

			if err := wellnessDBService.SetWellnessPlan(assessment.ID.Hex(), plan); err != nil {
				failed++
				slog.Error("Failed to store wellness plan", slog.String("assessmentID", assessment.ID.Hex()), slog.String("error", err.Error()))
				continue
			}
			success++
			progressed = true
		}

		if !progressed {
			break
		}
	}

	slog.Info("Finished generating wellness plans", slog.Int("success", success), slog.Int("failed", failed))
}
