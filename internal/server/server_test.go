package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/fetch"
	"github.com/glanceworks/tododash/internal/todoist"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSource struct {
	tasks    []todoist.RawTask
	projects []todoist.RawProject
}

func (f *fakeSource) Tasks(context.Context) ([]todoist.RawTask, error)       { return f.tasks, nil }
func (f *fakeSource) Projects(context.Context) ([]todoist.RawProject, error) { return f.projects, nil }
func (f *fakeSource) User(context.Context) (*todoist.RawProfile, error)      { return nil, nil }

func newTestServer(t *testing.T, source *fakeSource) *Server {
	t.Helper()
	fetcher := fetch.New(fetch.NewCache(), fetch.WithSource(func(string) fetch.Source {
		return source
	}))
	return New(t.TempDir(), fetcher)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("non-JSON response %q: %v", w.Body.String(), err)
	}
	return w, envelope
}

func success(t *testing.T, envelope map[string]json.RawMessage) bool {
	t.Helper()
	var ok bool
	if err := json.Unmarshal(envelope["success"], &ok); err != nil {
		t.Fatalf("missing success field: %v", err)
	}
	return ok
}

func TestAccountLifecycle(t *testing.T) {
	srv := newTestServer(t, &fakeSource{})
	h := srv.Handler()

	t.Run("empty list", func(t *testing.T) {
		w, envelope := doJSON(t, h, http.MethodGet, "/api/accounts/default", nil)
		if w.Code != http.StatusOK || !success(t, envelope) {
			t.Fatalf("status %d body %s", w.Code, w.Body)
		}
	})

	t.Run("add", func(t *testing.T) {
		w, envelope := doJSON(t, h, http.MethodPost, "/api/accounts/default",
			account.Account{Name: "Work", Token: "tok-1"})
		if w.Code != http.StatusOK || !success(t, envelope) {
			t.Fatalf("status %d body %s", w.Code, w.Body)
		}
	})

	t.Run("duplicate token conflicts", func(t *testing.T) {
		w, envelope := doJSON(t, h, http.MethodPost, "/api/accounts/default",
			account.Account{Name: "Other", Token: "tok-1"})
		if w.Code != http.StatusConflict || success(t, envelope) {
			t.Fatalf("status %d body %s", w.Code, w.Body)
		}
	})

	t.Run("invalid payload rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/accounts/default",
			bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		w, _ := doJSON(t, h, http.MethodPut, "/api/accounts/default",
			account.Account{Name: "Job", Token: "tok-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("status %d body %s", w.Code, w.Body)
		}

		_, envelope := doJSON(t, h, http.MethodGet, "/api/accounts/default", nil)
		var accounts []account.Account
		if err := json.Unmarshal(envelope["accounts"], &accounts); err != nil {
			t.Fatal(err)
		}
		if len(accounts) != 1 || accounts[0].Name != "Job" {
			t.Errorf("got %+v", accounts)
		}
	})

	t.Run("update unknown token 404s", func(t *testing.T) {
		w, _ := doJSON(t, h, http.MethodPut, "/api/accounts/default",
			account.Account{Name: "Ghost", Token: "nope"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		w, _ := doJSON(t, h, http.MethodDelete, "/api/accounts/default/tok-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d body %s", w.Code, w.Body)
		}
		w, _ = doJSON(t, h, http.MethodDelete, "/api/accounts/default/tok-1", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("repeat delete status %d", w.Code)
		}
	})
}

func TestSettingsRoundtrip(t *testing.T) {
	srv := newTestServer(t, &fakeSource{})
	h := srv.Handler()

	t.Run("defaults before any save", func(t *testing.T) {
		w, envelope := doJSON(t, h, http.MethodGet, "/api/settings/default", nil)
		if w.Code != http.StatusOK || !success(t, envelope) {
			t.Fatalf("status %d body %s", w.Code, w.Body)
		}
		var settings struct {
			GroupBy string `json:"groupBy"`
		}
		if err := json.Unmarshal(envelope["settings"], &settings); err != nil {
			t.Fatal(err)
		}
		if settings.GroupBy != "project" {
			t.Errorf("got groupBy %q, want project", settings.GroupBy)
		}
	})

	t.Run("save then load", func(t *testing.T) {
		payload := map[string]any{"groupBy": "date", "dayLimit": 3}
		w, _ := doJSON(t, h, http.MethodPost, "/api/settings/default", payload)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d body %s", w.Code, w.Body)
		}

		_, envelope := doJSON(t, h, http.MethodGet, "/api/settings/default", nil)
		var settings struct {
			GroupBy  string `json:"groupBy"`
			DayLimit int    `json:"dayLimit"`
		}
		if err := json.Unmarshal(envelope["settings"], &settings); err != nil {
			t.Fatal(err)
		}
		if settings.GroupBy != "date" || settings.DayLimit != 3 {
			t.Errorf("got %+v", settings)
		}
	})
}

func TestProjectSelection(t *testing.T) {
	srv := newTestServer(t, &fakeSource{})
	h := srv.Handler()

	payload := map[string]any{"selectedProjects": []string{"p1", "p2"}}
	w, _ := doJSON(t, h, http.MethodPost, "/api/projects/default", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}

	_, envelope := doJSON(t, h, http.MethodGet, "/api/projects/default", nil)
	var selected []string
	if err := json.Unmarshal(envelope["selectedProjects"], &selected); err != nil {
		t.Fatal(err)
	}
	if len(selected) != 2 || selected[0] != "p1" {
		t.Errorf("got %v", selected)
	}
}

func TestTasksEndpoint(t *testing.T) {
	source := &fakeSource{
		tasks: []todoist.RawTask{
			{ID: "1", Content: "water plants", ProjectID: "p1", Priority: 1},
		},
		projects: []todoist.RawProject{{ID: "p1", Name: "Work", Color: "blue"}},
	}
	srv := newTestServer(t, source)
	h := srv.Handler()

	_, envelope := doJSON(t, h, http.MethodPost, "/api/accounts/widget",
		account.Account{Name: "Main", Token: "tok-1"})
	if !success(t, envelope) {
		t.Fatal("account setup failed")
	}

	w, envelope := doJSON(t, h, http.MethodGet, "/api/tasks/widget", nil)
	if w.Code != http.StatusOK || !success(t, envelope) {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}

	var items []struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(envelope["items"], &items); err != nil {
		t.Fatal(err)
	}
	// One project header followed by the task.
	if len(items) != 2 || items[0].Kind != "header" || items[1].Kind != "task" {
		t.Errorf("got items %+v", items)
	}

	var legend []struct {
		ProjectID string `json:"projectId"`
	}
	if err := json.Unmarshal(envelope["legend"], &legend); err != nil {
		t.Fatal(err)
	}
	if len(legend) != 1 || legend[0].ProjectID != "p1" {
		t.Errorf("got legend %+v", legend)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &fakeSource{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}
