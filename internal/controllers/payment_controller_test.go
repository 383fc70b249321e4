package controllers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"society_connect/internal/response"
)

var errStoreDown = errors.New("store unavailable")

type downConnector struct{}

func (downConnector) Connect(context.Context) (driver.Conn, error) { return downConn{}, nil }
func (downConnector) Driver() driver.Driver                        { return downDriver{} }

type downDriver struct{}

func (downDriver) Open(string) (driver.Conn, error) { return downConn{}, nil }

type downConn struct{}

func (downConn) Prepare(string) (driver.Stmt, error) { return nil, errStoreDown }
func (downConn) Close() error                        { return nil }
func (downConn) Begin() (driver.Tx, error)           { return nil, errStoreDown }

// downDB opens a gorm handle whose every statement fails at the driver.
func downDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sql.OpenDB(downConnector{})}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return db
}

func TestSettleBillSurfacesStoreError(t *testing.T) {
	pc := NewPaymentController(downDB(t))
	if err := pc.settleBill(1); err == nil {
		t.Fatal("bill write failure must be returned, not swallowed")
	}
}

func TestUpdateStatusSurfacesStoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pc := NewPaymentController(downDB(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/payments/1", strings.NewReader(`{"status":"successful"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	pc.UpdateStatus(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	var body response.Body
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if body.Success || body.Message != "Internal Server Error" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}
