package http

import "net/http"

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.expenses.List(r.Context()))
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := req.toExpense()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	created, err := s.expenses.Add(r.Context(), e)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := req.toExpense()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	e.ID = r.PathValue("id")

	updated, err := s.expenses.Update(r.Context(), e)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
