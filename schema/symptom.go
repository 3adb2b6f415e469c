package schema

import "strings"

type SymptomLevel string

const (
	SymptomLow    SymptomLevel = "low"
	SymptomMedium SymptomLevel = "medium"
	SymptomHigh   SymptomLevel = "high"
)

// DefaultSymptomSeverity is the base severity of a label missing from SymptomSeverity
const DefaultSymptomSeverity = 1

// Symptom is a label extracted from a call transcript. Severity is
// informational only and does not take part in scoring.
type Symptom struct {
	Text     string       `json:"text" bson:"text"`
	Severity SymptomLevel `json:"severity,omitempty" bson:"severity,omitempty"`
}

// SymptomSeverity maps known symptom phrases to a base severity from
// 1 (minor) to 5 (critical). Keys are lower case.
var SymptomSeverity = map[string]int{
	// cardiovascular
	"chest pain":          5,
	"heart palpitations":  4,
	"shortness of breath": 4,
	"dizziness":           3,

	// neurological
	"severe headache":       4,
	"confusion":             4,
	"seizure":               5,
	"loss of consciousness": 5,
	"stroke symptoms":       5,
	"numbness":              3,
	"headache":              2,

	// respiratory
	"difficulty breathing": 5,
	"wheezing":             3,
	"coughing":             2,

	// trauma
	"bleeding":        4,
	"severe bleeding": 5,
	"head injury":     5,
	"broken bone":     4,
	"burn":            4,
	"severe burn":     5,

	// abdominal
	"severe abdominal pain": 4,
	"vomiting":              2,
	"vomiting blood":        5,
	"nausea":                2,

	// general
	"fever":                    2,
	"high fever":               4,
	"severe pain":              4,
	"mild pain":                2,
	"allergic reaction":        4,
	"severe allergic reaction": 5,
}

// BaseSeverity looks up a symptom phrase case-insensitively
func BaseSeverity(text string) int {
	if s, ok := SymptomSeverity[strings.ToLower(strings.TrimSpace(text))]; ok {
		return s
	}
	return DefaultSymptomSeverity
}

// SymptomsFromLabels wraps plain labels into symptoms
func SymptomsFromLabels(labels []string) []Symptom {
	symptoms := make([]Symptom, 0, len(labels))
	for _, l := range labels {
		symptoms = append(symptoms, Symptom{Text: l})
	}
	return symptoms
}

// SymptomLabels returns the text of each symptom
func SymptomLabels(symptoms []Symptom) []string {
	labels := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		labels = append(labels, s.Text)
	}
	return labels
}
