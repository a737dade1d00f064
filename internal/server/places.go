package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

func (srv *Server) CreatePlaceHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}

	place, err := srv.storage.CreatePlace(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, place)
}

func (srv *Server) ListPlacesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.PlaceFilter{
		LocalType: query.Get("local_type"),
		Status:    model.PlaceStatus(query.Get("status")),
	}
	if raw := query.Get("user"); raw != "" {
		userID, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid user filter", http.StatusBadRequest)
			return
		}
		filter.UserID = userID
	}

	places, err := srv.storage.ListPlaces(r.Context(), filter)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(places) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, places)
}

func (srv *Server) GetPlaceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	place, err := srv.storage.GetPlace(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, place)
}

func (srv *Server) ClosePlaceHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	place, err := srv.storage.GetPlace(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if place.UserID != user.ID {
		writeError(w, errs.ErrNotOwner)
		return
	}

	if err := srv.storage.ClosePlace(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (srv *Server) CreatePlanHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.PlanType != model.PlanDaily && req.PlanType != model.PlanPackage {
		http.Error(w, "plan_type must be daily or package", http.StatusBadRequest)
		return
	}
	if len(req.WeekDays) == 0 {
		writeError(w, errs.ErrEmptyWeekDays)
		return
	}
	for _, day := range req.WeekDays {
		if day < 1 || day > 7 {
			http.Error(w, "week days must be between 1 and 7", http.StatusBadRequest)
			return
		}
	}

	place, err := srv.storage.GetPlace(r.Context(), req.PlaceID)
	if err != nil {
		writeError(w, err)
		return
	}
	if place.UserID != user.ID {
		writeError(w, errs.ErrNotOwner)
		return
	}

	plan, err := srv.storage.CreatePlan(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

func (srv *Server) ListPlansHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	plans, err := srv.storage.ListPlansByPlace(r.Context(), id)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(plans) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, plans)
}
