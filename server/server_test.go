package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"txnloader/models"
	"txnloader/progress"

	"github.com/gin-gonic/gin"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewStatusServer(progress.New(100, time.Now())).Router()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, EndPointHealth, nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status %d, expected 200", rec.Code)
	}
}

func TestProgressEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	agg := progress.New(100, time.Now().Add(-time.Second))
	agg.RecordBatch(1, 25)
	router := NewStatusServer(agg).Router()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, EndPointProgress, nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, expected 200", rec.Code)
	}

	var snap models.ProgressSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("response is not a snapshot: %v", err)
	}
	if snap.Inserted != 25 || snap.Total != 100 {
		t.Errorf("snapshot %d/%d, expected 25/100", snap.Inserted, snap.Total)
	}
	if snap.Percent != 25 {
		t.Errorf("percent %f, expected 25", snap.Percent)
	}
	if snap.WorkerID != -1 {
		t.Errorf("worker id %d, expected -1 for a read-only snapshot", snap.WorkerID)
	}
}
