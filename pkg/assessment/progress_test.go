package assessment

import (
	"errors"
	"testing"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

func TestCollectProgress(t *testing.T) {
	someAssessments := []assessmentTypes.CompletedAssessment{
		{UserID: "u1", QuestionnaireKey: "PHQ-9", TotalScore: 12, SeverityLevel: "Moderate"},
	}
	someJournal := []assessmentTypes.JournalEntry{
		{UserID: "u1", Text: "an entry"},
	}

	t.Run("both succeed", func(t *testing.T) {
		data := CollectProgress(
			func() ([]assessmentTypes.CompletedAssessment, error) { return someAssessments, nil },
			func() ([]assessmentTypes.JournalEntry, error) { return someJournal, nil },
		)
		if !data.AssessmentsOK || !data.JournalOK {
			t.Fatalf("both parts should be ok: %+v", data)
		}
		if len(data.Assessments) != 1 || len(data.Journal) != 1 {
			t.Errorf("unexpected data: %+v", data)
		}
	})

	t.Run("one failing read does not blank the other", func(t *testing.T) {
		data := CollectProgress(
			func() ([]assessmentTypes.CompletedAssessment, error) { return nil, errors.New("backend down") },
			func() ([]assessmentTypes.JournalEntry, error) { return someJournal, nil },
		)
		if data.AssessmentsOK {
			t.Error("assessments part should be marked failed")
		}
		if !data.JournalOK || len(data.Journal) != 1 {
			t.Errorf("journal part should still be populated: %+v", data)
		}
	})

	t.Run("empty histories are a success", func(t *testing.T) {
		data := CollectProgress(
			func() ([]assessmentTypes.CompletedAssessment, error) {
				return []assessmentTypes.CompletedAssessment{}, nil
			},
			func() ([]assessmentTypes.JournalEntry, error) {
				return []assessmentTypes.JournalEntry{}, nil
			},
		)
		if !data.AssessmentsOK || !data.JournalOK {
			t.Fatalf("empty results are not failures: %+v", data)
		}
		if len(data.Assessments) != 0 || len(data.Journal) != 0 {
			t.Errorf("unexpected data: %+v", data)
		}
	})
}
