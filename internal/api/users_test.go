package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUpdateProfileOmitsBlankPassword(t *testing.T) {
	var gotBody []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	client := New(backend.URL)
	req := UpdateProfileRequest{Email: "a@b.com", Name: "Ann", Phone: "010-0000-0000"}
	if err := client.UpdateProfile(context.Background(), "tok", req); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if _, present := payload["password"]; present {
		t.Fatalf("password key present in payload %s; must be omitted when blank", gotBody)
	}
}

func TestUpdateProfileSendsTypedPassword(t *testing.T) {
	var gotBody []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	client := New(backend.URL)
	pw := "new-secret"
	req := UpdateProfileRequest{Email: "a@b.com", Name: "Ann", Phone: "010-0000-0000", Password: &pw}
	if err := client.UpdateProfile(context.Background(), "tok", req); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if payload["password"] != "new-secret" {
		t.Fatalf("password = %v, want new-secret", payload["password"])
	}
}
