package score

type SeverityLevel string

const (
	LevelCritical SeverityLevel = "critical"
	LevelSevere   SeverityLevel = "severe"
	LevelModerate SeverityLevel = "moderate"
	LevelMinor    SeverityLevel = "minor"
	LevelLow      SeverityLevel = "low"
)

// CriticalThreshold is the lowest score treated as critical on the 0-5 scale
const CriticalThreshold = 4.5

// LevelDescriptions are the english descriptions used when no translation is found
var LevelDescriptions = map[SeverityLevel]string{
	LevelCritical: "Critical - Immediate Response Required",
	LevelSevere:   "Severe - Urgent Response Required",
	LevelModerate: "Moderate - Prompt Response Required",
	LevelMinor:    "Minor - Standard Response",
	LevelLow:      "Low - Non-urgent Response",
}

// Level maps a 0-5 score onto a severity level. The lower bound of each
// level is inclusive, so 4.5 is already critical.
func Level(score float64) SeverityLevel {
	switch {
	case score >= CriticalThreshold:
		return LevelCritical
	case score >= 3.5:
		return LevelSevere
	case score >= 2.5:
		return LevelModerate
	case score >= 1.5:
		return LevelMinor
	default:
		return LevelLow
	}
}

// IsCritical reports whether the score reaches CriticalThreshold
func IsCritical(score float64) bool {
	return score >= CriticalThreshold
}

// ScaleToTen maps a 0-5 score onto the 0-10 scale used by some dashboards.
// A critical score of 4.5 becomes 9.
func ScaleToTen(score float64) float64 {
	return Round(score * 2)
}
