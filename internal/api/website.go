package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"svoji/internal/guest"
	"svoji/internal/website"
)

func (s *Server) handleWebsiteGet(w http.ResponseWriter, r *http.Request, coupleID string) {
	site, err := s.websites.GetByCouple(r.Context(), coupleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if site == nil {
		writeError(w, http.StatusNotFound, "website not created yet")
		return
	}
	writeJSON(w, http.StatusOK, site)
}

func (s *Server) handleWebsitePut(w http.ResponseWriter, r *http.Request, coupleID string) {
	var site website.Website
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if site.CoupleNames == "" {
		writeError(w, http.StatusBadRequest, "couple_names is required")
		return
	}

	site.CoupleID = coupleID
	saved, err := s.websites.Upsert(r.Context(), &site, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// handleMicrosite serves the public wedding page.
func (s *Server) handleMicrosite(w http.ResponseWriter, r *http.Request) {
	site, err := s.websites.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if site == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := website.Render(w, site, time.Now()); err != nil {
		s.log.Error().Err(err).Str("slug", site.Slug).Msg("microsite render failed")
	}
}

// handleRSVP accepts RSVP submissions from the public microsite, both as
// JSON and as a plain form post. The guest is matched by email: repeat
// submissions update the earlier answer instead of duplicating the guest.
func (s *Server) handleRSVP(w http.ResponseWriter, r *http.Request) {
	var slug string
	var sub guest.RSVPSubmission

	if r.Header.Get("Content-Type") == "application/json" {
		var body struct {
			Slug      string `json:"slug"`
			Name      string `json:"name"`
			Email     string `json:"email"`
			Attending string `json:"attending"`
			Dietary   string `json:"dietary"`
			Notes     string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
		slug = body.Slug
		sub = guest.RSVPSubmission{
			Name:      body.Name,
			Email:     body.Email,
			Attending: body.Attending == "yes",
			Dietary:   body.Dietary,
			Notes:     body.Notes,
		}
		if body.Attending != "yes" && body.Attending != "no" {
			writeError(w, http.StatusBadRequest, "attending must be \"yes\" or \"no\"")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form data")
			return
		}
		slug = r.FormValue("slug")
		sub = guest.RSVPSubmission{
			Name:      r.FormValue("name"),
			Email:     r.FormValue("email"),
			Attending: r.FormValue("attending") == "yes",
			Dietary:   r.FormValue("dietary"),
			Notes:     r.FormValue("notes"),
		}
	}

	if len(sub.Name) < 2 {
		writeError(w, http.StatusBadRequest, "name must be at least 2 characters")
		return
	}
	if !validEmail(sub.Email) {
		writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}

	site, err := s.websites.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if site == nil {
		writeError(w, http.StatusNotFound, "wedding website not found")
		return
	}

	if _, err := s.guests.UpsertRSVP(r.Context(), site.CoupleID, sub, time.Now()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1 && strings.IndexByte(s[at+1:], '@') < 0
}
