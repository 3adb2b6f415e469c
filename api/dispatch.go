package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/emergency-api/utils"
)

// runDispatch ranks the hospitals around the origin and assigns every
// pending patient to one of them
func (s *Server) runDispatch(c *gin.Context) {
	var params originParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	origin, fallback := s.resolveOrigin(c.Request.Context(), params)
	ranked, allocation, err := s.dispatcher.Run(c.Request.Context(), origin)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorDispatch, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"origin":      origin,
			"fallback":    fallback,
			"hospitals":   ranked,
			"assignments": allocation.Assignments,
			"added":       allocation.Added,
			"unassigned":  allocation.Unassigned,
		},
	})
}

// refreshDispatch signals the dispatch refresh workflow
func (s *Server) refreshDispatch(c *gin.Context) {
	if s.cadenceClient == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorRefreshNotEnabled)
		return
	}

	var params originParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	origin, _ := s.resolveOrigin(c.Request.Context(), params)
	if err := utils.TriggerDispatchRefresh(s.cadenceClient, c.Request.Context(), origin); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
