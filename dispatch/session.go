package dispatch

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/score"
)

// Session holds the live state of a single call: the transcript, the
// symptoms extracted so far and the severity derived from them. It is
// owned by its caller and safe for concurrent use.
type Session struct {
	sync.RWMutex

	CallID    string
	StartedAt time.Time

	transcript    []string
	symptoms      []schema.Symptom
	score         float64
	previousScore float64

	rankings *geo.Tracker
}

func NewSession(callID string) *Session {
	return &Session{
		CallID:    callID,
		StartedAt: time.Now(),
		rankings:  geo.NewTracker(),
	}
}

// RestoreSession rebuilds a session from a stored call record
func RestoreSession(record schema.DialerRecord) *Session {
	s := NewSession(record.ID.String())
	s.StartedAt = record.CallStartTime
	s.AppendTranscript(record.Transcript...)
	s.AddSymptoms(record.Symptoms...)
	return s
}

// AddSymptoms appends new labels and recomputes the score from the whole
// list. Blank labels are ignored. A repeated label is kept and counts
// again towards the score. It returns the current score.
func (s *Session) AddSymptoms(labels ...string) float64 {
	s.Lock()
	defer s.Unlock()

	changed := false
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		s.symptoms = append(s.symptoms, schema.Symptom{Text: l})
		changed = true
	}

	if changed {
		s.previousScore = s.score
		s.score = score.Severity(s.symptoms)
	}

	return s.score
}

// AppendTranscript records transcript fragments
func (s *Session) AppendTranscript(lines ...string) {
	s.Lock()
	defer s.Unlock()

	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			s.transcript = append(s.transcript, l)
		}
	}
}

func (s *Session) Score() float64 {
	s.RLock()
	defer s.RUnlock()
	return s.score
}

func (s *Session) Level() score.SeverityLevel {
	return score.Level(s.Score())
}

// ChangeRate is the percentage change caused by the last symptom update
func (s *Session) ChangeRate() float64 {
	s.RLock()
	defer s.RUnlock()
	return score.ChangeRate(s.score, s.previousScore)
}

func (s *Session) Symptoms() []schema.Symptom {
	s.RLock()
	defer s.RUnlock()

	symptoms := make([]schema.Symptom, len(s.symptoms))
	copy(symptoms, s.symptoms)
	return symptoms
}

// UniqueSymptoms lists each reported symptom once, in the order it was
// first reported. Labels differing only by case are the same symptom.
func (s *Session) UniqueSymptoms() []schema.Symptom {
	s.RLock()
	defer s.RUnlock()

	seen := make(map[string]bool, len(s.symptoms))
	symptoms := make([]schema.Symptom, 0, len(s.symptoms))
	for _, symptom := range s.symptoms {
		key := strings.ToLower(symptom.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		symptoms = append(symptoms, symptom)
	}
	return symptoms
}

func (s *Session) Transcript() []string {
	s.RLock()
	defer s.RUnlock()

	transcript := make([]string, len(s.transcript))
	copy(transcript, s.transcript)
	return transcript
}

// Rankings is the hospital ranking tracker of the call
func (s *Session) Rankings() *geo.Tracker {
	return s.rankings
}

// Sessions is a registry of live call sessions
type Sessions struct {
	sync.Mutex
	sessions map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*Session)}
}

// Get returns the session of a call. If it is not live, load is used to
// restore it.
func (r *Sessions) Get(callID string, load func() (*Session, error)) (*Session, error) {
	r.Lock()
	defer r.Unlock()

	if s, ok := r.sessions[callID]; ok {
		return s, nil
	}

	s, err := load()
	if err != nil {
		return nil, err
	}
	r.sessions[callID] = s
	return s, nil
}

func (r *Sessions) Put(s *Session) {
	r.Lock()
	defer r.Unlock()
	r.sessions[s.CallID] = s
}

// End drops the session of a finished call
func (r *Sessions) End(callID string) {
	r.Lock()
	defer r.Unlock()
	delete(r.sessions, callID)
}
