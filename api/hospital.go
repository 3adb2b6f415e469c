package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/emergency-api/dispatch"
)

// nearbyHospitals ranks the hospitals around an address or a location
func (s *Server) nearbyHospitals(c *gin.Context) {
	var params originParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	origin, fallback := s.resolveOrigin(c.Request.Context(), params)

	// a stale ranking is still the answer of this request
	ranked, err := s.dispatcher.RankHospitals(c.Request.Context(), origin)
	if err != nil && err != dispatch.ErrStaleRanking {
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryHospitals, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"origin":    origin,
			"fallback":  fallback,
			"hospitals": ranked,
		},
	})
}
