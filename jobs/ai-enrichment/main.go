package main

import (
	"log/slog"
	"sync"
	"time"
)

const (
	ENRICHMENT_BATCH_SIZE = 20

	MAX_FAILED_ATTEMPTS_BEFORE_STOP = 10
)

func main() {
	slog.Info("Starting ai-enrichment job")
	start := time.Now()

	var wg sync.WaitGroup

	if conf.RunTasks.WellnessPlans {
		wg.Add(1)
		go handleWellnessPlans(&wg)
	}

	if conf.RunTasks.SentimentAnalysis {
		wg.Add(1)
		go handleSentimentAnalysis(&wg)
	}

	wg.Wait()
	slog.Info("Ai-enrichment job completed", slog.String("duration", time.Since(start).String()))
}
