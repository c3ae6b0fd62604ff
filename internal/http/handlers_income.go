package http

import "net/http"

func (s *Server) handleListIncome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.income.List(r.Context()))
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := req.toIncome()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	created, err := s.income.Add(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := req.toIncome()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	in.ID = r.PathValue("id")

	updated, err := s.income.Update(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	if err := s.income.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
