package api

import (
	"encoding/json"
	"net/http"

	"svoji/internal/couple"
)

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request, coupleID string) {
	c, err := s.couples.GetByID(r.Context(), coupleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "couple not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleProfilePut is the onboarding endpoint: it stores the wedding date,
// size and budget. Date plausibility ("must be in the future") is enforced
// here, not in the checklist generator.
func (s *Server) handleProfilePut(w http.ResponseWriter, r *http.Request, coupleID string) {
	var p couple.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if p.Partner1Name == "" || p.Partner2Name == "" {
		writeError(w, http.StatusBadRequest, "both partner names are required")
		return
	}
	if p.WeddingDate.IsZero() {
		writeError(w, http.StatusBadRequest, "wedding date is required")
		return
	}
	if !p.WeddingSize.Valid() {
		writeError(w, http.StatusBadRequest, "wedding size must be small, medium or large")
		return
	}

	c, err := s.couples.UpdateProfile(r.Context(), coupleID, p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}
