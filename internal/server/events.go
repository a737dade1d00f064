package server

import (
	"encoding/json"
	"net/http"

	"github.com/lucasribeirorsousa/desopila-api/internal/booking"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/metrics"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

func (srv *Server) CreateEventOrderHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.EventOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if len(req.DatesSelected) == 0 {
		http.Error(w, "dates_selected required", http.StatusBadRequest)
		return
	}

	place, err := srv.storage.GetPlace(r.Context(), req.PlaceID)
	if err != nil {
		writeError(w, err)
		return
	}
	if place.Status != model.PlaceOpen {
		writeError(w, errs.ErrPlaceNotFound)
		return
	}
	if place.UserID == user.ID {
		writeError(w, errs.ErrOwnPlaceOrder)
		return
	}

	plan, err := srv.storage.GetPlan(r.Context(), req.PlanID)
	if err != nil {
		writeError(w, err)
		return
	}

	dates := booking.ParseDates(req.DatesSelected)
	price, err := booking.Quote(plan, place.ID, dates)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := srv.storage.CreateEventOrder(r.Context(), model.EventOrder{
		UserID:        user.ID,
		PlaceID:       place.ID,
		DatesSelected: dates,
		Title:         req.Title,
		Description:   req.Description,
		Price:         price,
		PlanType:      plan.PlanType,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.EventOrdersCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, order)
}

func (srv *Server) ListEventOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := srv.storage.ListEventOrders(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// isParticipant reports whether the user placed the order or owns the place
// it was placed on.
func (srv *Server) isParticipant(r *http.Request, user model.User, order model.EventOrder) bool {
	if order.UserID == user.ID {
		return true
	}
	place, err := srv.storage.GetPlace(r.Context(), order.PlaceID)
	if err != nil {
		return false
	}
	return place.UserID == user.ID
}

func (srv *Server) GetEventOrderHandler(w http.ResponseWriter, r *http.Request) {
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

	order, err := srv.storage.GetEventOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !srv.isParticipant(r, user, order) {
		writeError(w, errs.ErrOrderNotFound)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (srv *Server) OrderHistoryHandler(w http.ResponseWriter, r *http.Request) {
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

	order, err := srv.storage.GetEventOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !srv.isParticipant(r, user, order) {
		writeError(w, errs.ErrOrderNotFound)
		return
	}

	history, err := srv.storage.ListOrderHistory(r.Context(), id)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

// decideOrder resolves the place owner behind an accept or refuse request.
func (srv *Server) decideOrder(w http.ResponseWriter, r *http.Request) (model.User, model.EventOrder, bool) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return model.User{}, model.EventOrder{}, false
	}

	var req model.OrderDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return model.User{}, model.EventOrder{}, false
	}

	order, err := srv.storage.GetEventOrder(r.Context(), req.EventOrderID)
	if err != nil {
		writeError(w, err)
		return model.User{}, model.EventOrder{}, false
	}

	place, err := srv.storage.GetPlace(r.Context(), order.PlaceID)
	if err != nil {
		writeError(w, err)
		return model.User{}, model.EventOrder{}, false
	}
	if place.UserID != user.ID {
		writeError(w, errs.ErrNotOwner)
		return model.User{}, model.EventOrder{}, false
	}

	return user, order, true
}

func (srv *Server) AcceptOrderHandler(w http.ResponseWriter, r *http.Request) {
	user, order, ok := srv.decideOrder(w, r)
	if !ok {
		return
	}

	if err := srv.storage.AcceptOrder(r.Context(), order.ID, user.ID, srv.config.UnlockPrice); err != nil {
		writeError(w, err)
		return
	}

	metrics.EventOrdersAcceptedTotal.Inc()
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) RefuseOrderHandler(w http.ResponseWriter, r *http.Request) {
	user, order, ok := srv.decideOrder(w, r)
	if !ok {
		return
	}

	if err := srv.storage.RefuseOrder(r.Context(), order.ID, user.ID); err != nil {
		writeError(w, err)
		return
	}

	metrics.EventOrdersRefusedTotal.Inc()
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) CancelOrderHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.CancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Justification == "" {
		http.Error(w, "justification required", http.StatusBadRequest)
		return
	}

	order, err := srv.storage.GetEventOrder(r.Context(), req.EventOrderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !srv.isParticipant(r, user, order) {
		writeError(w, errs.ErrOrderNotFound)
		return
	}

	cancellation, err := srv.storage.CancelOrder(r.Context(), order.ID, user.ID, req.Justification)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.EventOrdersCanceledTotal.Inc()
	writeJSON(w, http.StatusOK, cancellation)
}

func (srv *Server) UpdateOrderDatesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.UpdateDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if len(req.DatesSelected) == 0 {
		http.Error(w, "dates_selected required", http.StatusBadRequest)
		return
	}

	order, err := srv.storage.GetEventOrder(r.Context(), req.EventOrderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if order.UserID != user.ID {
		writeError(w, errs.ErrNotOrderingUser)
		return
	}

	plan, err := srv.storage.GetPlan(r.Context(), req.PlanID)
	if err != nil {
		writeError(w, err)
		return
	}

	dates := booking.ParseDates(req.DatesSelected)
	price, err := booking.QuoteAmendment(order, plan, dates)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := srv.storage.UpdateOrderDates(r.Context(), order.ID, user.ID, dates, price); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (srv *Server) ListCancellationsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cancellations, err := srv.storage.ListCancellations(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(cancellations) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, cancellations)
}
