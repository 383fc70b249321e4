package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"society_connect/internal/apierr"
)

// Body is the envelope every endpoint returns.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// Success writes a success envelope with the given status.
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{Success: true, Message: message, Data: data})
}

// failureBody keeps errors in the payload even when empty. Body's
// omitempty would drop the field, and clients expect the array.
type failureBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// Fail writes a failure envelope with the given status and aborts the
// request.
func Fail(c *gin.Context, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.AbortWithStatusJSON(status, failureBody{Message: message, Errors: errs})
}

// Error writes the failure envelope for err. Known api errors keep their
// message and mapped status; anything else is logged and surfaced as a
// generic 500 without internal detail.
func Error(c *gin.Context, err error) {
	if apiErr, ok := apierr.As(err); ok {
		Fail(c, apiErr.Status(), apiErr.Message, apiErr.Errs...)
		return
	}

	logrus.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
	Fail(c, http.StatusInternalServerError, "Internal Server Error")
}
