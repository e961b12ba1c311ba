package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"svoji/internal/advisor"
	"svoji/internal/auth"
	"svoji/internal/budget"
	"svoji/internal/chat"
	"svoji/internal/checklist"
	"svoji/internal/couple"
	"svoji/internal/guest"
	"svoji/internal/vendor"
	"svoji/internal/website"
)

// Server is the HTTP API server.
type Server struct {
	auth     *auth.Service
	couples  *couple.Repository
	items    *checklist.Repository
	guests   *guest.Repository
	budgets  *budget.Repository
	chats    *chat.Repository
	websites *website.Repository
	vendors  *vendor.Repository
	advisor  *advisor.Advisor
	log      zerolog.Logger
	mux      *http.ServeMux
}

// Deps bundles the collaborators the server needs.
type Deps struct {
	Auth     *auth.Service
	Couples  *couple.Repository
	Items    *checklist.Repository
	Guests   *guest.Repository
	Budgets  *budget.Repository
	Chats    *chat.Repository
	Websites *website.Repository
	Vendors  *vendor.Repository
	Advisor  *advisor.Advisor
	Log      zerolog.Logger
}

// New creates a new Server.
func New(d Deps) *Server {
	s := &Server{
		auth:     d.Auth,
		couples:  d.Couples,
		items:    d.Items,
		guests:   d.Guests,
		budgets:  d.Budgets,
		chats:    d.Chats,
		websites: d.Websites,
		vendors:  d.Vendors,
		advisor:  d.Advisor,
		log:      d.Log,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Dur("duration", time.Since(start)).
		Msg("request")
}

func (s *Server) routes() {
	// Auth
	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Profile / onboarding
	s.mux.HandleFunc("GET /api/profile", s.authed(s.handleProfileGet))
	s.mux.HandleFunc("PUT /api/profile", s.authed(s.handleProfilePut))

	// Checklist
	s.mux.HandleFunc("GET /api/checklist", s.authed(s.handleChecklistGet))
	s.mux.HandleFunc("PATCH /api/checklist/{id}", s.authed(s.handleChecklistToggle))

	// Guests
	s.mux.HandleFunc("GET /api/guests", s.authed(s.handleGuestList))
	s.mux.HandleFunc("POST /api/guests", s.authed(s.handleGuestCreate))
	s.mux.HandleFunc("PATCH /api/guests/{id}", s.authed(s.handleGuestUpdate))
	s.mux.HandleFunc("DELETE /api/guests/{id}", s.authed(s.handleGuestDelete))
	s.mux.HandleFunc("GET /api/guests/export.csv", s.authed(s.handleGuestExport))

	// Budget
	s.mux.HandleFunc("GET /api/budget", s.authed(s.handleBudgetList))
	s.mux.HandleFunc("POST /api/budget", s.authed(s.handleBudgetCreate))
	s.mux.HandleFunc("PATCH /api/budget/{id}", s.authed(s.handleBudgetUpdate))
	s.mux.HandleFunc("DELETE /api/budget/{id}", s.authed(s.handleBudgetDelete))
	s.mux.HandleFunc("GET /api/budget/summary", s.authed(s.handleBudgetSummary))

	// Advisor chat
	s.mux.HandleFunc("GET /api/chat", s.authed(s.handleChatHistory))
	s.mux.HandleFunc("POST /api/chat", s.authed(s.handleChatAsk))

	// Microsite
	s.mux.HandleFunc("GET /api/website", s.authed(s.handleWebsiteGet))
	s.mux.HandleFunc("PUT /api/website", s.authed(s.handleWebsitePut))
	s.mux.HandleFunc("GET /w/{slug}", s.handleMicrosite)
	s.mux.HandleFunc("POST /api/rsvp", s.handleRSVP)

	// Vendor directory
	s.mux.HandleFunc("GET /api/vendors", s.handleVendorList)

	// System
	s.mux.HandleFunc("GET /health", s.handleHealth)
}

// authed wraps a handler with bearer-token authentication and resolves the
// couple ID from the token subject.
func (s *Server) authed(next func(w http.ResponseWriter, r *http.Request, coupleID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		coupleID, err := s.auth.VerifyToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(w, r, coupleID)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
