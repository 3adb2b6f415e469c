package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/emergency-api/score"
	"github.com/bitmark-inc/emergency-api/utils"
)

func severityView(lang string, value float64) gin.H {
	level := score.Level(value)
	return gin.H{
		"score":        value,
		"scaled_score": score.ScaleToTen(value),
		"level":        level,
		"description":  utils.SeverityDescription(lang, level),
		"critical":     score.IsCritical(value),
	}
}

// severity scores a list of symptom labels without touching any call
func (s *Server) severity(c *gin.Context) {
	var params struct {
		Symptoms []string `json:"symptoms"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": severityView(c.GetHeader("Accept-Language"), score.SeverityOfLabels(params.Symptoms)),
	})
}
