package httputils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetJSONDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept header, got %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"name":"acme"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	if err := GetJSON(context.Background(), srv.Client(), srv.URL, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "acme" {
		t.Errorf("expected acme, got %q", out.Name)
	}
}

func TestDoJSONUsesErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"name is required"}`))
	}))
	defer srv.Close()

	err := PostJSON(context.Background(), srv.Client(), srv.URL, map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "name is required" || apiErr.Status != http.StatusBadRequest {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if StatusOf(err) != http.StatusBadRequest {
		t.Errorf("StatusOf = %d", StatusOf(err))
	}
}

func TestDoJSONFallsBackWhenBodyIsNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	err := DoJSON(context.Background(), srv.Client(), http.MethodDelete, srv.URL, nil, nil, "Request failed")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.Message != "Request failed" {
		t.Errorf("expected fallback message, got %q", apiErr.Message)
	}
}

func TestDoAcceptsEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var out map[string]any
	if err := DoJSON(context.Background(), nil, http.MethodDelete, srv.URL, nil, &out, "Request failed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
