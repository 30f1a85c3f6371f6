package main

import (
	"log/slog"
	"sync"

	"github.com/Lokeshwar-goud/Psyvana/pkg/ai/sentiment"
)

// handleSentimentAnalysis analyzes the sentiment of journal entries that
// have not been analyzed yet and stores score and magnitude on the entry.
func handleSentimentAnalysis(wg *sync.WaitGroup) {
	defer wg.Done()
	slog.Info("Start analyzing journal sentiment")

	sentimentClient, err := sentiment.NewClient(conf.NaturalLanguageConfig)
	if err != nil {
		slog.Error("Failed to init sentiment client", slog.String("error", err.Error()))
		return
	}

	success := 0
	failed := 0
	for {
		if failed > MAX_FAILED_ATTEMPTS_BEFORE_STOP {
			slog.Error("Too many failed attempts, stopping sentiment analysis")
			break
		}

		entries, err := wellnessDBService.FindJournalEntriesWithoutSentiment(ENRICHMENT_BATCH_SIZE)
		if err != nil {
			slog.Error("Failed to fetch journal entries without sentiment", slog.String("error", err.Error()))
			break
		}

		if len(entries) == 0 {
			break
		}

		progressed := false
		for _, entry := range entries {
			score, magnitude, err := sentimentClient.AnalyzeSentiment(entry.Text)
			if err != nil {
				failed++
				slog.Error("Failed to analyze sentiment", slog.String("entryID", entry.ID.Hex()), slog.String("error", err.Error()))
				continue
			}

			if err := wellnessDBService.SetSentiment(entry.ID.Hex(), score, magnitude); err != nil {
				failed++
				slog.Error("Failed to store sentiment", slog.String("entryID", entry.ID.Hex()), slog.String("error", err.Error()))
				continue
			}
			success++
			progressed = true
		}

		if !progressed {
			break
		}
	}

	slog.Info("Finished analyzing journal sentiment", slog.Int("success", success), slog.Int("failed", failed))
}
