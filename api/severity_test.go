package api

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSeverity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	w := ts.do("POST", "/api/severity", map[string]interface{}{
		"symptoms": []string{"Chest Pain", "dizziness"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			Score       float64 `json:"score"`
			ScaledScore float64 `json:"scaled_score"`
			Level       string  `json:"level"`
			Description string  `json:"description"`
			Critical    bool    `json:"critical"`
		} `json:"result"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 5.0, resp.Result.Score)
	assert.Equal(t, 10.0, resp.Result.ScaledScore)
	assert.Equal(t, "critical", resp.Result.Level)
	assert.Equal(t, "Critical - Immediate Response Required", resp.Result.Description)
	assert.True(t, resp.Result.Critical)
}

func TestSeverityEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	w := ts.do("POST", "/api/severity", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			Score float64 `json:"score"`
			Level string  `json:"level"`
		} `json:"result"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 0.0, resp.Result.Score)
	assert.Equal(t, "low", resp.Result.Level)
}
