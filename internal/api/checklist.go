package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svoji/internal/checklist"
)

// handleChecklistGet returns the couple's checklist, generating and storing
// it first if none exists yet. Generation happens exactly once per couple:
// the insert is guarded at the store boundary, so a concurrent duplicate
// request simply reads the winner's items.
func (s *Server) handleChecklistGet(w http.ResponseWriter, r *http.Request, coupleID string) {
	ctx := r.Context()

	items, err := s.items.ListByCouple(ctx, coupleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(items) == 0 {
		c, err := s.couples.GetByID(ctx, coupleID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if c == nil {
			writeError(w, http.StatusNotFound, "couple not found")
			return
		}
		if c.WeddingDate == nil || c.WeddingSize == nil {
			writeError(w, http.StatusConflict, "complete onboarding before requesting the checklist")
			return
		}

		generated, err := checklist.GenerateChecklist(checklist.Config{
			WeddingDate: *c.WeddingDate,
			WeddingSize: *c.WeddingSize,
		})
		if err != nil {
			var cfgErr *checklist.ConfigurationError
			if errors.As(err, &cfgErr) {
				writeError(w, http.StatusUnprocessableEntity, cfgErr.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		err = s.items.InsertGenerated(ctx, coupleID, generated, time.Now())
		if err != nil && !errors.Is(err, checklist.ErrAlreadyGenerated) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		items, err = s.items.ListByCouple(ctx, coupleID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleChecklistToggle(w http.ResponseWriter, r *http.Request, coupleID string) {
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	item, err := s.items.SetCompleted(r.Context(), coupleID, r.PathValue("id"), body.Completed, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "checklist item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
