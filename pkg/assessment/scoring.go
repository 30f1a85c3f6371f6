package assessment

import (
	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

// SEVERITY_UNDETERMINED is returned when no scoring rule contains the
// total score.
const SEVERITY_UNDETERMINED = "Undetermined"

// TotalScore sums all recorded answer values. The result does not depend
// on the iteration order of the map.
func TotalScore(answers assessmentTypes.Answers) int {
	total := 0
	for _, value := range answers {
		total += value
	}
	return total
}

// ResolveSeverity returns the level of the first rule, in table order,
// whose inclusive range contains the score. First match wins - this is
// part of the contract, so an overlapping rule table still resolves
// deterministically.
func ResolveSeverity(rules []assessmentTypes.ScoringRule, score int) string {
	for _, rule := range rules {
		if score >= rule.MinScore && score <= rule.MaxScore {
			return rule.Level
		}
	}
	return SEVERITY_UNDETERMINED
}
