package api

import (
	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",

		1100: store.ErrPatientNotFound.Error(),
		1101: store.ErrPatientDuplicate.Error(),

		1200: store.ErrCallNotFound.Error(),
		1201: store.ErrCallNotActive.Error(),

		1301: "query hospitals error",
		1302: dispatch.ErrStaleRanking.Error(),
		1303: "no hospital ranking for the call",

		1400: "dispatch pass error",
		1401: "dispatch refresh workflow is not available",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters = errorJSON(1010)

	errorPatientNotFound  = errorJSON(1100)
	errorPatientDuplicate = errorJSON(1101)

	errorCallNotFound  = errorJSON(1200)
	errorCallNotActive = errorJSON(1201)

	errorQueryHospitals    = errorJSON(1301)
	errorStaleRanking      = errorJSON(1302)
	errorNoRankingForCall  = errorJSON(1303)
	errorDispatch          = errorJSON(1400)
	errorRefreshNotEnabled = errorJSON(1401)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
