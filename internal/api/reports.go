package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsplit/tripsplit/internal/middleware"
	"github.com/tripsplit/tripsplit/internal/service"
)

type settlementRequest struct {
	Payer    string  `json:"payer"`
	Receiver string  `json:"receiver"`
	Amount   float64 `json:"amount"`
}

func (r settlementRequest) toService() service.SettlementRequest {
	return service.SettlementRequest{Payer: r.Payer, Receiver: r.Receiver, Amount: r.Amount}
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.GetReport(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportJSON(report))
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := s.reports.ListSettlements(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]settlementJSON, len(settlements))
	for i, settlement := range settlements {
		out[i] = toSettlementJSON(settlement)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRecordSettlement(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	result, err := s.reports.RecordSettlement(r.Context(), middleware.GetUserID(r.Context()),
		chi.URLParam(r, "tripID"), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSettlementResultJSON(result))
}

func (s *Server) handlePreviewSettlement(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	result, err := s.reports.PreviewSettlement(r.Context(), middleware.GetUserID(r.Context()),
		chi.URLParam(r, "tripID"), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettlementResultJSON(result))
}
