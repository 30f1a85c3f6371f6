package assessment

import (
	"log/slog"
	"sync"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

// ProgressData carries both histories for the progress view. Each part has
// its own success flag so that one failing read never blanks the other.
type ProgressData struct {
	Assessments   []assessmentTypes.CompletedAssessment `json:"assessments"`
	AssessmentsOK bool                                  `json:"assessmentsOk"`
	Journal       []assessmentTypes.JournalEntry        `json:"journal"`
	JournalOK     bool                                  `json:"journalOk"`
}

// CollectProgress runs the two history reads concurrently. The reads share
// no mutable state and have no ordering dependency; both finish (or fail
// independently) before the combined result is returned.
func CollectProgress(
	fetchAssessments func() ([]assessmentTypes.CompletedAssessment, error),
	fetchJournal func() ([]assessmentTypes.JournalEntry, error),
) ProgressData {
	var data ProgressData

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		assessments, err := fetchAssessments()
		if err != nil {
			slog.Error("failed to fetch assessment history", slog.String("error", err.Error()))
			return
		}
		data.Assessments = assessments
		data.AssessmentsOK = true
	}()

	go func() {
		defer wg.Done()
		journal, err := fetchJournal()
		if err != nil {
			slog.Error("failed to fetch journal history", slog.String("error", err.Error()))
			return
		}
		data.Journal = journal
		data.JournalOK = true
	}()

	wg.Wait()
	return data
}

// CollectProgressForUser is the DB-bound variant used by the API.
func CollectProgressForUser(userID string) ProgressData {
	return CollectProgress(
		func() ([]assessmentTypes.CompletedAssessment, error) {
			return GetAssessmentHistory(userID)
		},
		func() ([]assessmentTypes.JournalEntry, error) {
			return GetJournalHistory(userID)
		},
	)
}
