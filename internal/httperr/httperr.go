package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var statusByCode = map[string]int{
	"customer_not_found":    http.StatusNotFound,
	"consultant_not_found":  http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"overlap_not_confirmed": http.StatusConflict,
}

// Status maps a classified error to its HTTP status. Unknown business codes
// are treated as bad input, anything else as an internal failure.
func Status(err error) int {
	var be BusinessError
	if errors.As(err, &be) {
		if s, ok := statusByCode[be.Code]; ok {
			return s
		}
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// FromError writes err using its classification. Storage failures never
// leak their cause to the client.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		Write(c, Status(err), be.Code, msg)
		return
	}
	if IsStorage(err) {
		Internal(c, "storage_error", "Could not reach the appointment store.")
		return
	}
	Internal(c, "internal_error", "Unexpected error.")
}
