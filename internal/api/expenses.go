package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsplit/tripsplit/internal/middleware"
	"github.com/tripsplit/tripsplit/internal/service"
)

type expenseRequest struct {
	Name         string   `json:"name"`
	Amount       float64  `json:"amount"`
	PaidBy       string   `json:"paidBy"`
	Participants []string `json:"participants"`
	Description  string   `json:"description"`
}

func (r expenseRequest) toService() service.ExpenseRequest {
	return service.ExpenseRequest{
		Name:         r.Name,
		Amount:       r.Amount,
		PaidBy:       r.PaidBy,
		Participants: r.Participants,
		Description:  r.Description,
	}
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	expense, err := s.trips.AddExpense(r.Context(), middleware.GetUserID(r.Context()),
		chi.URLParam(r, "tripID"), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseJSON(expense))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.trips.ListExpenses(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]expenseJSON, len(expenses))
	for i, expense := range expenses {
		out[i] = toExpenseJSON(expense)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	expense, err := s.trips.UpdateExpense(r.Context(), middleware.GetUserID(r.Context()),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "expenseID"), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseJSON(expense))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	err := s.trips.DeleteExpense(r.Context(), middleware.GetUserID(r.Context()),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "expenseID"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
