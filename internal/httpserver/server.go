// internal/httpserver/server.go
//
// JSON adapter over the game engine.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON
//     content type, CORS for the web client).
//   - One endpoint per engine operation; handlers never touch engine state
//     directly, they call the documented operations and return snapshots.
//   - Resolving error tags to display text (presentation concern, kept out
//     of the core).
//
// The engine is single-threaded by contract; the serve mutex serializes
// concurrent requests so every operation runs to completion before the next.
package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wherethephoque/phoquedle/internal/engine"
)

// errorText maps engine error tags to user-facing notification text.
var errorText = map[engine.ErrorTag]string{
	engine.ErrGameNotActive:     "Game is not active",
	engine.ErrIncomplete:        "Please finish your guess first",
	engine.ErrAlreadyTried:      "This guess has already been tried",
	engine.ErrDictionaryInvalid: "Not a valid word",
	engine.ErrNoLettersToRemove: "Nothing to delete",
	engine.ErrAttributeNotSet:   "This attribute is not set",
	engine.ErrRowFull:           "The row is already complete",
	engine.ErrInvalidValue:      "Invalid selection",
	engine.ErrNoMoreHints:       "No more hints available",
	engine.ErrHardModeViolation: "Hard mode: use all revealed letters",
}

// Server bundles the router and the engine.
type Server struct {
	r   *chi.Mux
	eng *engine.Engine
	mu  sync.Mutex // serializes engine operations
}

// New constructs a Server, installs middleware, and registers routes.
func New(eng *engine.Engine) *Server {
	s := &Server{r: chi.NewRouter(), eng: eng}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"phoquedle","endpoints":["/health","GET /state","POST /input/*","POST /guess","POST /hint","POST /practice"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/state", s.handleState)
	s.r.Post("/input/letter", s.handleLetter)
	s.r.Post("/input/backspace", s.handleBackspace)
	s.r.Post("/input/color", s.handleColor)
	s.r.Post("/input/pattern", s.handlePattern)
	s.r.Post("/input/clear", s.handleClear)
	s.r.Post("/guess", s.handleGuess)
	s.r.Post("/hint", s.handleHint)
	s.r.Post("/hint/ack", s.handleHintAck)
	s.r.Post("/practice", s.handlePractice)
	s.r.Post("/config", s.handleConfig)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers -----------------------------------

// actionResponse wraps an engine result with display text and the new state.
// Validation failures are part of normal game flow, so they still ship a 200
// with ok=false; only malformed requests get HTTP error codes.
type actionResponse struct {
	engine.ActionResult
	ErrorText string          `json:"errorText,omitempty"`
	State     engine.Snapshot `json:"state"`
}

func (s *Server) respond(w http.ResponseWriter, res engine.ActionResult) {
	out := actionResponse{ActionResult: res, State: s.eng.Snapshot()}
	if res.Error != "" {
		out.ErrorText = errorText[res.Error]
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleState rolls the daily puzzle over if the date changed (the web
// client calls this on every visibility/focus transition) and returns the
// current snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.CheckForNewDay(r.Context())
	_ = json.NewEncoder(w).Encode(s.eng.Snapshot())
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.AddLetter(req.Letter))
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.RemoveLetter())
}

type colorReq struct {
	Position string `json:"position"` // "primary" | "secondary" | "tertiary"
	Color    string `json:"color"`
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	var req colorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.SetColor(req.Position, req.Color))
}

type patternReq struct {
	Pattern string `json:"pattern"`
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	var req patternReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.SetPattern(req.Pattern))
}

type clearReq struct {
	Attribute string `json:"attribute"` // primaryColor|secondaryColor|tertiaryColor|pattern
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.ClearAttribute(req.Attribute))
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.SubmitGuess(r.Context()))
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.RequestHint(r.Context()))
}

func (s *Server) handleHintAck(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.AcknowledgeHint()
	_ = json.NewEncoder(w).Encode(s.eng.Snapshot())
}

func (s *Server) handlePractice(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.StartPractice()
	_ = json.NewEncoder(w).Encode(s.eng.Snapshot())
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	var cfg engine.GameConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respond(w, s.eng.UpdateConfig(r.Context(), cfg))
}
