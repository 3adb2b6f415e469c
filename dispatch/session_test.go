package dispatch

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/score"
)

func TestSessionRecomputesScore(t *testing.T) {
	s := NewSession("call-1")
	assert.Equal(t, float64(0), s.Score())
	assert.Equal(t, score.LevelLow, s.Level())

	assert.Equal(t, float64(3), s.AddSymptoms("dizziness"))
	assert.Equal(t, float64(3), s.AddSymptoms("nausea"))
	assert.Equal(t, 3.25, s.AddSymptoms("fever"))
	assert.Equal(t, score.LevelModerate, s.Level())
	assert.InDelta(t, 8.33, s.ChangeRate(), 0.01)

	assert.Equal(t, float64(5), s.AddSymptoms("Seizure"))
	assert.Equal(t, score.LevelCritical, s.Level())
}

func TestSessionIgnoresBlanks(t *testing.T) {
	s := NewSession("call-2")
	s.AddSymptoms("fever", "", "  ")

	assert.Len(t, s.Symptoms(), 1)
	assert.Equal(t, float64(2), s.Score())
	assert.Equal(t, float64(100), s.ChangeRate(), "first score is reported as a full change")

	assert.Equal(t, float64(2), s.AddSymptoms("", " "))
	assert.Len(t, s.Symptoms(), 1)
}

func TestSessionScoresRepeatedSymptoms(t *testing.T) {
	s := NewSession("call-5")
	s.AddSymptoms("fever", "FEVER ")
	value := s.AddSymptoms("fever")

	assert.Equal(t, score.SeverityOfLabels([]string{"fever", "fever", "fever"}), value)
	assert.Equal(t, 2.25, value)
	assert.Len(t, s.Symptoms(), 3)
	assert.Equal(t, []schema.Symptom{{Text: "fever"}}, s.UniqueSymptoms())
}

func TestRestoreSessionKeepsRepeatedSymptoms(t *testing.T) {
	s := RestoreSession(schema.DialerRecord{
		ID:       uuid.New(),
		Symptoms: pq.StringArray{"fever", "fever", "fever"},
	})

	assert.Equal(t, 2.25, s.Score())
	assert.Len(t, s.UniqueSymptoms(), 1)
}

func TestSessionTranscript(t *testing.T) {
	s := NewSession("call-3")
	s.AppendTranscript("caller reports chest pain", "", "patient is conscious")
	assert.Equal(t, []string{"caller reports chest pain", "patient is conscious"}, s.Transcript())
}

func TestSessionConcurrentUpdates(t *testing.T) {
	s := NewSession("call-4")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddSymptoms(fmt.Sprintf("symptom %d", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Symptoms(), 20)
	assert.Equal(t, float64(5), s.Score())
}

func TestRestoreSession(t *testing.T) {
	id := uuid.New()
	started := time.Now().Add(-time.Minute)
	s := RestoreSession(schema.DialerRecord{
		ID:            id,
		CallStartTime: started,
		Symptoms:      pq.StringArray{"chest pain", "dizziness"},
		Transcript:    pq.StringArray{"he says his chest hurts"},
	})

	assert.Equal(t, id.String(), s.CallID)
	assert.Equal(t, started, s.StartedAt)
	assert.Equal(t, float64(5), s.Score())
	assert.Len(t, s.Transcript(), 1)
}

func TestSessionsRegistry(t *testing.T) {
	r := NewSessions()
	loads := 0
	load := func() (*Session, error) {
		loads++
		return NewSession("call-5"), nil
	}

	first, err := r.Get("call-5", load)
	assert.NoError(t, err)
	second, err := r.Get("call-5", load)
	assert.NoError(t, err)
	assert.True(t, first == second)
	assert.Equal(t, 1, loads)

	_, err = r.Get("call-6", func() (*Session, error) { return nil, fmt.Errorf("not found") })
	assert.EqualError(t, err, "not found")

	r.End("call-5")
	_, err = r.Get("call-5", load)
	assert.NoError(t, err)
	assert.Equal(t, 2, loads)
}
