package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"society_connect/internal/apierr"
)

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, Body) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body Body
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Created(c, "Visitor scheduled", gin.H{"id": 1})
	})
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if !body.Success || body.Message != "Visitor scheduled" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}

func TestErrorEnvelopeForAPIError(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Error(c, apierr.Forbidden("You cannot delete this visitor record"))
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if body.Success {
		t.Error("success must be false")
	}
	if body.Message != "You cannot delete this visitor record" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Errors == nil {
		t.Error("errors array must be present")
	}
}

func TestErrorEnvelopeHidesInternalDetail(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Error(c, errors.New("pq: connection refused"))
	})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if body.Message != "Internal Server Error" {
		t.Errorf("internal detail leaked: %q", body.Message)
	}
}
