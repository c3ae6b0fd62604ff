package http

import "net/http"

// handleListBudgets returns the categories available to the expense
// flow, seeding the default set when the collection is empty.
func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	if _, err := s.expenses.Categories(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	// Re-read through the budget service so spent is recomputed
	writeJSON(w, http.StatusOK, s.budgets.List(r.Context()))
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := req.toCategory()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	created, err := s.budgets.Add(r.Context(), c)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := req.toCategory()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	c.ID = r.PathValue("id")

	updated, err := s.budgets.Update(r.Context(), c)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := s.budgets.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
