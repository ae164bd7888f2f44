package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps engine errors onto HTTP statuses: conflicts and
// out-of-sequence operations are 409, missing records 404, bad input 400,
// storage failures 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAlreadySubscribed):
		RespondError(c, http.StatusConflict, "User is already subscribed")
	case errors.Is(err, ErrNotSubscribed):
		RespondError(c, http.StatusNotFound, "User is not subscribed to the lottery")
	case errors.Is(err, ErrNumberNotFound):
		RespondError(c, http.StatusNotFound, "Lottery number not found")
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, ErrNoEligibleEntries):
		RespondError(c, http.StatusConflict, "No eligible lottery tickets found")
	case errors.Is(err, ErrNoWinnerYet):
		RespondError(c, http.StatusConflict, "No winner found, lottery data not cleared")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
