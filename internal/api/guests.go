package api

import (
	"encoding/json"
	"net/http"
	"time"

	"svoji/internal/guest"
)

func (s *Server) handleGuestList(w http.ResponseWriter, r *http.Request, coupleID string) {
	guests, err := s.guests.ListByCouple(r.Context(), coupleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

func (s *Server) handleGuestCreate(w http.ResponseWriter, r *http.Request, coupleID string) {
	var g guest.Guest
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if g.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	g.CoupleID = coupleID
	created, err := s.guests.Create(r.Context(), &g, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGuestUpdate(w http.ResponseWriter, r *http.Request, coupleID string) {
	var g guest.Guest
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	g.ID = r.PathValue("id")

	updated, err := s.guests.Update(r.Context(), coupleID, &g)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "guest not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleGuestDelete(w http.ResponseWriter, r *http.Request, coupleID string) {
	if err := s.guests.Delete(r.Context(), coupleID, r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGuestExport(w http.ResponseWriter, r *http.Request, coupleID string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="hoste.csv"`)
	if err := s.guests.WriteCSV(r.Context(), coupleID, w); err != nil {
		s.log.Error().Err(err).Msg("guest csv export failed")
	}
}
