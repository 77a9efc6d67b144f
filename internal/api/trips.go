package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsplit/tripsplit/internal/middleware"
	"github.com/tripsplit/tripsplit/internal/service"
)

type tripRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Currency string `json:"currency"`
	Passcode string `json:"passcode"`
}

func (r tripRequest) toService() service.TripRequest {
	return service.TripRequest{Name: r.Name, Date: r.Date, Currency: r.Currency, Passcode: r.Passcode}
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	trip, err := s.trips.CreateTrip(r.Context(), middleware.GetUserID(r.Context()), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTripJSON(trip))
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.ListTrips(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]tripJSON, len(trips))
	for i, trip := range trips {
		out[i] = toTripJSON(trip)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetTrip(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTripJSON(trip))
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	trip, err := s.trips.UpdateTrip(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTripJSON(trip))
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.DeleteTrip(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVerifyPasscode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Passcode string `json:"passcode"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	granted, err := s.trips.VerifyPasscode(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"), req.Passcode)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"granted": granted})
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	member, err := s.trips.AddMember(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemberJSON(member))
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.trips.ListMembers(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]memberJSON, len(members))
	for i, member := range members {
		out[i] = toMemberJSON(member)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRenameMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	member, err := s.trips.RenameMember(r.Context(), middleware.GetUserID(r.Context()),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "memberID"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberJSON(member))
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	err := s.trips.RemoveMember(r.Context(), middleware.GetUserID(r.Context()),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "memberID"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
