package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wherethephoque/phoquedle/internal/dataset"
	"github.com/wherethephoque/phoquedle/internal/engine"
	"github.com/wherethephoque/phoquedle/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	flags, err := dataset.LoadFlags()
	if err != nil {
		t.Fatalf("LoadFlags: %v", err)
	}
	eng, err := engine.New(engine.VariantFlag, engine.GameConfig{}, nil, flags, storage.NewMemoryStore(), zerolog.Nop())
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	eng.Init(context.Background())
	return New(eng)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestStateSnapshot(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/state", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.State != engine.StatePlaying || !snap.IsDailyMode {
		t.Fatalf("fresh state: %s daily=%v", snap.State, snap.IsDailyMode)
	}
	if snap.MaxAttempts != 6 || len(snap.Grid) != 6 {
		t.Fatalf("grid shape: maxAttempts=%d rows=%d", snap.MaxAttempts, len(snap.Grid))
	}
}

func TestIncompleteGuessIsNotAnHTTPError(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/guess", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("validation failures ride a 200, got %d", rec.Code)
	}
	var res struct {
		OK        bool   `json:"ok"`
		Error     string `json:"error"`
		ErrorText string `json:"errorText"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.OK || res.Error != string(engine.ErrIncomplete) {
		t.Fatalf("got ok=%v error=%s", res.OK, res.Error)
	}
	if res.ErrorText == "" {
		t.Fatal("error tags must resolve to display text at this boundary")
	}
}

func TestInputAndGuessFlow(t *testing.T) {
	s := newTestServer(t)

	steps := []struct {
		path string
		body any
	}{
		{"/input/color", map[string]string{"position": "primary", "color": "green"}},
		{"/input/color", map[string]string{"position": "secondary", "color": "yellow"}},
		{"/input/pattern", map[string]string{"pattern": "solid"}},
	}
	for _, step := range steps {
		rec := do(t, s, http.MethodPost, step.path, step.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", step.path, rec.Code)
		}
	}

	rec := do(t, s, http.MethodPost, "/guess", nil)
	var res struct {
		OK      bool            `json:"ok"`
		Message string          `json:"message"`
		State   engine.Snapshot `json:"state"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.OK {
		t.Fatalf("submit failed: %s", rec.Body.String())
	}
	if res.State.CurrentRow != 1 || !res.State.Grid[0].IsSubmitted {
		t.Fatalf("state after guess: row=%d", res.State.CurrentRow)
	}
}

func TestBadJSONIsRejected(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/input/color", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: status %d, want 400", rec.Code)
	}
}

func TestPracticeReset(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/practice", nil)
	var snap engine.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.IsDailyMode {
		t.Fatal("practice must leave daily mode")
	}
	if snap.CurrentRow != 0 || snap.State != engine.StatePlaying {
		t.Fatalf("practice must start fresh: row=%d state=%s", snap.CurrentRow, snap.State)
	}
}
