package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		write  func(rec *httptest.ResponseRecorder)
		status int
	}{
		{"bad request", func(rec *httptest.ResponseRecorder) { BadRequest(rec, "bad input") }, 400},
		{"forbidden", func(rec *httptest.ResponseRecorder) { Forbidden(rec, "bad input") }, 403},
		{"not found", func(rec *httptest.ResponseRecorder) { NotFound(rec, "bad input") }, 404},
		{"internal", func(rec *httptest.ResponseRecorder) { InternalServerError(rec, "bad input") }, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			if rec.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("unexpected content type: %q", ct)
			}

			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Error != "bad input" {
				t.Errorf("unexpected error message: %q", body.Error)
			}
		})
	}
}

func TestParseItemID(t *testing.T) {
	t.Run("valid ids", func(t *testing.T) {
		for token, want := range map[string]uint{"1": 1, "42": 42, "4294967295": 4294967295} {
			id, err := parseItemID(token)
			if err != nil {
				t.Errorf("parseItemID(%q) failed: %v", token, err)
				continue
			}
			if id != want {
				t.Errorf("parseItemID(%q) = %d, want %d", token, id, want)
			}
		}
	})

	t.Run("invalid ids", func(t *testing.T) {
		for _, token := range []string{"", "abc", "1.5", "-1", "0", "4294967296", " 1"} {
			if _, err := parseItemID(token); err == nil {
				t.Errorf("parseItemID(%q): expected error", token)
			}
		}
	})
}
