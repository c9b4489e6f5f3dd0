package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paris-metro/planner/internal/models"
)

type stubHealthStore struct {
	pingErr error
	info    *models.ImportInfo
	infoErr error
}

func (s *stubHealthStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *stubHealthStore) LastImport(ctx context.Context) (*models.ImportInfo, error) {
	return s.info, s.infoErr
}

func TestGetHealth(t *testing.T) {
	n := planningNetwork(t)
	store := &stubHealthStore{
		info: &models.ImportInfo{
			ID:           "5f0c4d1e-9a1b-4f5e-8f38-1f8f44a0c9d2",
			Source:       "metro.txt",
			StationCount: len(n.Stations),
			TripCount:    len(n.Trips),
			ImportedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	NewHealthHandler(store, n).GetHealth(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Database != "connected" {
		t.Errorf("status = %q/%q, want ok/connected", resp.Status, resp.Database)
	}
	if resp.Stations != len(n.Stations) || resp.Trips != len(n.Trips) {
		t.Errorf("counts = %d/%d, want %d/%d", resp.Stations, resp.Trips, len(n.Stations), len(n.Trips))
	}
	if resp.LastImport == nil || resp.LastImport.Source != "metro.txt" {
		t.Errorf("lastImport = %+v, want metro.txt provenance", resp.LastImport)
	}
}

func TestGetHealthDatabaseDown(t *testing.T) {
	store := &stubHealthStore{pingErr: errors.New("connection refused")}

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	NewHealthHandler(store, planningNetwork(t)).GetHealth(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" || resp.Database != "disconnected" {
		t.Errorf("status = %q/%q, want error/disconnected", resp.Status, resp.Database)
	}
}

func TestGetHealthNoImportYet(t *testing.T) {
	store := &stubHealthStore{}

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	NewHealthHandler(store, planningNetwork(t)).GetHealth(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.LastImport != nil {
		t.Errorf("lastImport = %+v, want nil", resp.LastImport)
	}
}
