package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request, coupleID string) {
	messages, err := s.chats.History(r.Context(), coupleID, 100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleChatAsk(w http.ResponseWriter, r *http.Request, coupleID string) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	body.Message = strings.TrimSpace(body.Message)
	if body.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	c, err := s.couples.GetByID(r.Context(), coupleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "couple not found")
		return
	}
	if c.WeddingDate == nil || c.WeddingSize == nil {
		writeError(w, http.StatusConflict, "complete onboarding before using the advisor")
		return
	}

	reply, err := s.advisor.Ask(r.Context(), c, body.Message, time.Now())
	if err != nil {
		s.log.Error().Err(err).Str("couple_id", coupleID).Msg("advisor request failed")
		writeError(w, http.StatusBadGateway, "advisor is unavailable, try again later")
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
