package api

import "net/http"

func (s *Server) handleVendorList(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.vendors.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, vendors)
}
