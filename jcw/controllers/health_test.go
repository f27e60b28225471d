package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jcw/jcw/services/indexer"
)

func TestHealthCheck(t *testing.T) {
	hc := NewHealthController(nil)
	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	hc.HealthCheck(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %v", rr.Header().Get("Content-Type"))
	}
}

func TestHealthCheckReportsIndex(t *testing.T) {
	src, _ := indexer.NewCatalogSource()
	ix := indexer.New(src)
	if err := ix.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	rr := httptest.NewRecorder()
	NewHealthController(ix).HealthCheck(rr, httptest.NewRequest("GET", "/", nil))

	var body map[string]any
	json.Unmarshal(rr.Body.Bytes(), &body)
	if body["indexed_pages"] != float64(5) {
		t.Errorf("expected 5 indexed pages, got %v", body["indexed_pages"])
	}
	if _, ok := body["content_updated_at"]; !ok {
		t.Errorf("expected content_updated_at")
	}
}
