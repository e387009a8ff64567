package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
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

var defaultMessages = map[string]string{
	CodeValidation:         "Invalid request.",
	CodeInvalidCredentials: "Invalid credentials.",
	CodeUnauthorized:       "Authentication required.",
	CodeForbidden:          "You are not allowed to do that.",
	CodeJobNotFound:        "Job not found.",
	CodeReportNotFound:     "Report not found.",
	CodeUserNotFound:       "User not found.",
	CodeDuplicateUser:      "User already exists.",
	CodeDuplicateReport:    "A report has already been submitted for this job.",
	CodeUploadFailed:       "Photo upload failed.",
	CodePartialWrite:       "The report could not be saved cleanly and needs manual reconciliation.",
	CodeInternal:           "Internal server error.",
}

// StatusFor maps a business code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeInvalidCredentials, CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeJobNotFound, CodeReportNotFound, CodeUserNotFound:
		return http.StatusNotFound
	case CodeDuplicateUser, CodeDuplicateReport:
		return http.StatusConflict
	case CodeUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// From writes err using the stable taxonomy. Anything that is not a
// BusinessError is logged and reported as internal_error.
func From(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		Internal(c, CodeInternal, defaultMessages[CodeInternal])
		return
	}

	if be.Err != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), be)
	}

	msg := be.Message
	if msg == "" {
		msg = defaultMessages[be.Code]
	}
	if msg == "" {
		msg = defaultMessages[CodeInternal]
	}

	Write(c, StatusFor(be.Code), be.Code, msg)
}
