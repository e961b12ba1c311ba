package api

import (
	"encoding/json"
	"net/http"
	"time"

	"svoji/internal/budget"
)

func (s *Server) handleBudgetList(w http.ResponseWriter, r *http.Request, coupleID string) {
	items, err := s.budgets.ListByCouple(r.Context(), coupleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleBudgetCreate(w http.ResponseWriter, r *http.Request, coupleID string) {
	var it budget.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if it.Name == "" || it.Category == "" {
		writeError(w, http.StatusBadRequest, "name and category are required")
		return
	}

	it.CoupleID = coupleID
	created, err := s.budgets.Create(r.Context(), &it, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleBudgetUpdate(w http.ResponseWriter, r *http.Request, coupleID string) {
	var it budget.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	it.ID = r.PathValue("id")

	updated, err := s.budgets.Update(r.Context(), coupleID, &it)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "budget item not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleBudgetDelete(w http.ResponseWriter, r *http.Request, coupleID string) {
	if err := s.budgets.Delete(r.Context(), coupleID, r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBudgetSummary(w http.ResponseWriter, r *http.Request, coupleID string) {
	summary, err := s.budgets.Summarize(r.Context(), coupleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
