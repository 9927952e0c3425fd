package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"eshop-chatbot/internal/config"
	"eshop-chatbot/internal/dialog"
	"eshop-chatbot/internal/store"
	"eshop-chatbot/internal/types"
)

// Server is the thin HTTP binding around the dialogue engine: one chat
// endpoint plus a health check. All decision logic lives in internal/dialog.
type Server struct {
	router *chi.Mux
	store  *store.SessionStore
	engine *dialog.Engine
	cfg    config.Config
}

func NewServer(cfg config.Config, engine *dialog.Engine) *Server {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session-Id"},
		ExposedHeaders:   []string{"X-Session-Id"},
		AllowCredentials: true, // session cookie
		MaxAge:           300,
	}))

	s := &Server{
		router: r,
		store:  store.NewSessionStore(),
		engine: engine,
		cfg:    cfg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	// An empty message is a legal turn; it falls through to the fallback rule.
	sid := req.SessionID
	if sid == "" {
		sid = getOrCreateSessionID(r, w)
	}

	var reply string
	err := s.store.WithSession(sid, func(sess *dialog.Session) error {
		var err error
		reply, err = s.engine.Reply(req.Message, sess)
		return err
	})
	if err != nil {
		log.Printf("[chat] reply failed for session %s: %v", sid, err)
		s.writeError(w, http.StatusInternalServerError, "failed to generate a reply")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Session-Id", sid)
	_ = json.NewEncoder(w).Encode(types.ChatResponse{SessionID: sid, Reply: reply})
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg})
}

func newSessionID() string {
	return fmt.Sprintf("s_%d", time.Now().UnixNano())
}

// getSessionID retrieves the session ID from cookie, header or query.
func getSessionID(r *http.Request) string {
	if cookie, err := GetSessionCookie(r); err == nil && cookie != "" {
		return cookie
	}
	if sid := r.Header.Get("X-Session-Id"); sid != "" {
		return sid
	}
	if sid := r.URL.Query().Get("sessionId"); sid != "" {
		return sid
	}
	return ""
}

// getOrCreateSessionID gets the existing session ID or creates a new one,
// setting the cookie.
func getOrCreateSessionID(r *http.Request, w http.ResponseWriter) string {
	sid := getSessionID(r)
	if sid == "" {
		sid = newSessionID()
		SetSessionCookie(w, sid)
	}
	return sid
}
