package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer("tagged")
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func postJSON(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestParseJSON(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(s, `{"grammar":"array","input":"[1,[2]]"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := map[string]any{
		"ok":     true,
		"cursor": float64(7),
		"result": []any{float64(1), []any{float64(2)}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONFailure(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(s, `{"input":"colour:red"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got struct {
		OK    bool `json:"ok"`
		Error struct {
			Position int    `json:"position"`
			Message  string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.OK {
		t.Error("ok = true, want false")
	}
	if got.Error.Position != 7 {
		t.Errorf("position = %d, want 7", got.Error.Position)
	}
}

func TestParseBadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"grammar":`},
		{"unknown grammar", `{"grammar":"cobol","input":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postJSON(s, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestParseForm(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{"grammar": {"tagged"}, "input": {"diceroll:2d8"}}
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "diceroll:2d8") {
		t.Errorf("body does not show the result:\n%s", body)
	}
	if strings.Contains(body, `class="error"`) {
		t.Error("successful parse rendered as error")
	}
}

func TestIndexAndGrammars(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `<option value="array"`) {
		t.Errorf("index: status %d, body:\n%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/grammars", nil))
	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff([]string{"array", "tagged"}, names); diff != "" {
		t.Errorf("grammars mismatch (-want +got):\n%s", diff)
	}
}
