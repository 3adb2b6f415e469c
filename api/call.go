package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/store"
)

// abortWithCallError maps a call store error into a response
func abortWithCallError(c *gin.Context, err error) {
	switch err {
	case store.ErrCallNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorCallNotFound, err)
	case store.ErrCallNotActive:
		abortWithEncoding(c, http.StatusConflict, errorCallNotActive, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

// session returns the live session of an active call
func (s *Server) session(callID string) (*dispatch.Session, error) {
	return s.sessions.Get(callID, func() (*dispatch.Session, error) {
		r, err := s.store.GetCall(callID)
		if err != nil {
			return nil, err
		}
		if r.Status != schema.CALL_ACTIVE {
			return nil, store.ErrCallNotActive
		}
		return dispatch.RestoreSession(*r), nil
	})
}

// startCall opens a call record and its live session
func (s *Server) startCall(c *gin.Context) {
	var params struct {
		CallerName    string `json:"caller_name"`
		CallerPhone   string `json:"caller_phone"`
		EmergencyType string `json:"emergency_type"`
		Location      string `json:"location"`
		Notes         string `json:"notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	record := schema.DialerRecord{
		CallerName:    params.CallerName,
		CallerPhone:   params.CallerPhone,
		EmergencyType: params.EmergencyType,
		Location:      params.Location,
		Notes:         params.Notes,
		CallStartTime: time.Now(),
		Status:        schema.CALL_ACTIVE,
	}

	if err := s.store.CreateCall(&record); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	session := dispatch.NewSession(record.ID.String())
	session.StartedAt = record.CallStartTime
	s.sessions.Put(session)

	c.JSON(http.StatusOK, gin.H{"result": record})
}

func (s *Server) getCall(c *gin.Context) {
	record, err := s.store.GetCall(c.Param("callID"))
	if err != nil {
		abortWithCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"call":     record,
			"severity": severityView(c.GetHeader("Accept-Language"), record.SeverityScore),
		},
	})
}

// addCallSymptoms appends symptom labels and transcript lines to an active
// call and returns the updated severity
func (s *Server) addCallSymptoms(c *gin.Context) {
	callID := c.Param("callID")

	var params struct {
		Symptoms   []string `json:"symptoms"`
		Transcript []string `json:"transcript"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if len(params.Symptoms) == 0 && len(params.Transcript) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	session, err := s.session(callID)
	if err != nil {
		abortWithCallError(c, err)
		return
	}

	session.AppendTranscript(params.Transcript...)
	value := session.AddSymptoms(params.Symptoms...)
	symptoms := session.Symptoms()

	if err := s.store.UpdateCallSymptoms(callID, schema.SymptomLabels(symptoms), session.Transcript(), value); err != nil {
		if err == store.ErrCallNotActive {
			s.sessions.End(callID)
		}
		abortWithCallError(c, err)
		return
	}

	view := severityView(c.GetHeader("Accept-Language"), value)
	view["change_rate"] = session.ChangeRate()
	view["symptoms"] = session.UniqueSymptoms()

	c.JSON(http.StatusOK, gin.H{"result": view})
}

// rankCallHospitals ranks the hospitals around the caller and keeps the
// ranking on the call
func (s *Server) rankCallHospitals(c *gin.Context) {
	var params originParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	session, err := s.session(c.Param("callID"))
	if err != nil {
		abortWithCallError(c, err)
		return
	}

	origin, fallback := s.resolveOrigin(c.Request.Context(), params)
	ranked, err := s.dispatcher.RankForSession(c.Request.Context(), session, origin)
	switch err {
	case nil:
	case dispatch.ErrStaleRanking:
		abortWithEncoding(c, http.StatusConflict, errorStaleRanking, err)
		return
	default:
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

func (s *Server) latestCallHospitals(c *gin.Context) {
	session, err := s.session(c.Param("callID"))
	if err != nil {
		abortWithCallError(c, err)
		return
	}

	ranked, ok := session.Rankings().Latest()
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorNoRankingForCall)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": ranked})
}

func (s *Server) dispatchAmbulance(c *gin.Context) {
	if err := s.store.MarkDispatched(c.Param("callID"), time.Now()); err != nil {
		abortWithCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) endCall(c *gin.Context) {
	callID := c.Param("callID")

	var params struct {
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	switch params.Status {
	case "":
		params.Status = schema.CALL_COMPLETED
	case schema.CALL_COMPLETED, schema.CALL_CANCELLED:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.EndCall(callID, params.Status, time.Now()); err != nil {
		abortWithCallError(c, err)
		return
	}
	s.sessions.End(callID)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
