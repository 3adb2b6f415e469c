package score

import (
	"math"

	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	MaxSeverity = 5.0

	highSeverityThreshold = 4
	highSeverityBonus     = 0.5
	countBonusFrom        = 2
	countBonus            = 0.25
)

// Severity scores a list of symptoms between 0 and MaxSeverity. The peak
// base severity is raised by extra high-severity symptoms and by the
// number of symptoms beyond two.
func Severity(symptoms []schema.Symptom) float64 {
	if len(symptoms) == 0 {
		return 0
	}

	var maxSeverity, highCount int
	for _, s := range symptoms {
		base := schema.BaseSeverity(s.Text)
		if base > maxSeverity {
			maxSeverity = base
		}
		if base >= highSeverityThreshold {
			highCount++
		}
	}

	score := float64(maxSeverity)
	if highCount > 1 {
		score = math.Min(score+highSeverityBonus*float64(highCount-1), MaxSeverity)
	}

	if total := len(symptoms); total > countBonusFrom {
		score = math.Min(score+countBonus*float64(total-countBonusFrom), MaxSeverity)
	}

	return Round(score)
}

// SeverityOfLabels is a shortcut of Severity for plain labels
func SeverityOfLabels(labels []string) float64 {
	return Severity(schema.SymptomsFromLabels(labels))
}
