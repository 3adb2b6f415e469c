package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/emergency-api/background"
	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/store"
)

// createPatient is the API of the patient intake form
func (s *Server) createPatient(c *gin.Context) {
	var params struct {
		Name        string           `json:"name" binding:"required"`
		Phone       string           `json:"phone"`
		Address     string           `json:"address"`
		IsEmergency bool             `json:"is_emergency"`
		Notes       string           `json:"notes"`
		Location    *schema.Location `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	p := schema.Patient{
		Name:        params.Name,
		Phone:       params.Phone,
		Address:     params.Address,
		IsEmergency: params.IsEmergency,
		Notes:       params.Notes,
	}

	if err := s.store.CreatePatient(&p); err != nil {
		if err == store.ErrPatientDuplicate {
			abortWithEncoding(c, http.StatusConflict, errorPatientDuplicate, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	origin, _ := s.resolveOrigin(c.Request.Context(), originParams{Address: params.Address, Location: params.Location})
	s.enqueueAllocation(origin)

	c.JSON(http.StatusOK, gin.H{"result": p})
}

// enqueueAllocation asks the background workers for an allocation pass.
// A failure only delays the allocation so it is logged and ignored.
func (s *Server) enqueueAllocation(origin schema.Location) {
	if s.backgroundEnqueuer == nil {
		return
	}

	if _, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
		Name: background.AllocatePendingTask,
		Args: []tasks.Arg{
			{Type: "float64", Value: origin.Latitude},
			{Type: "float64", Value: origin.Longitude},
		},
	}); err != nil {
		log.WithError(err).Error("enqueue allocation task")
	}
}

func (s *Server) getPatient(c *gin.Context) {
	p, err := s.store.GetPatient(c.Param("patientID"))
	if err != nil {
		if err == store.ErrPatientNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPatientNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	response := gin.H{"patient": p}

	assignment, err := s.mongoStore.GetAssignment(p.ID)
	switch err {
	case nil:
		response["hospital_id"] = assignment.HospitalID
		response["assigned_at"] = assignment.AssignedAt
	case store.ErrAssignmentNotFound:
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": response})
}
