package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// metricOccupancy reports the assigned patients per hospital
func (s *Server) metricOccupancy(c *gin.Context) {
	assignments, err := s.mongoStore.ListAssignments()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"capacity":  s.dispatcher.Capacity,
		"assigned":  len(assignments),
		"occupancy": assignments.Occupancy(),
	})
}
