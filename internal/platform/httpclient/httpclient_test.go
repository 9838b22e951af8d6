package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/ping" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "k" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", 0, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "v1/ping", map[string]string{"X-Api-Key": "k"}, map[string]string{"a": "b"}, &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected ok=true")
	}
}

func TestDoJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, 0, nil)
	err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)

	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 StatusError, got %v", err)
	}
}

func TestDoJSON_RelativeWithoutBase(t *testing.T) {
	c, _ := New("", 0, nil)
	if err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	if _, err := New("not a url", 0, nil); err == nil {
		t.Fatalf("expected error")
	}
}
