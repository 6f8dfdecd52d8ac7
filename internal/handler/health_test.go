package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth_ReportsStorageAndEmail(t *testing.T) {
	h := NewHealthHandler("production", "filesystem", false)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("expected status=OK, got %q", resp.Status)
	}
	if resp.Env != "production" {
		t.Errorf("expected env=production, got %q", resp.Env)
	}
	if resp.Storage != "filesystem" {
		t.Errorf("expected storage=filesystem, got %q", resp.Storage)
	}
	if resp.Email != "not configured" {
		t.Errorf("expected email='not configured', got %q", resp.Email)
	}
	if resp.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestHealth_EmailConfigured(t *testing.T) {
	h := NewHealthHandler("development", "mongodb", true)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var resp healthResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Email != "configured" {
		t.Errorf("expected email=configured, got %q", resp.Email)
	}
	if resp.Storage != "mongodb" {
		t.Errorf("expected storage=mongodb, got %q", resp.Storage)
	}
}
