package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lucasribeirorsousa/desopila-api/internal/checkout"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/gateway"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

func (srv *Server) GetCreditHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	credit, err := srv.storage.GetCredit(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, credit)
}

func (srv *Server) ListCreditPacksHandler(w http.ResponseWriter, r *http.Request) {
	packs, err := srv.storage.ListCreditPacks(r.Context())
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(packs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, packs)
}

func (srv *Server) ListPaymentMethodsHandler(w http.ResponseWriter, r *http.Request) {
	methods, err := srv.storage.ListPaymentMethods(r.Context())
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(methods) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, methods)
}

func (srv *Server) ListCardsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cards, err := srv.storage.ListCards(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(cards) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (srv *Server) CreateCardHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Number == "" || req.HolderName == "" || req.ExpMonth == 0 || req.ExpYear == 0 {
		http.Error(w, "number, holder_name, exp_month and exp_year required", http.StatusBadRequest)
		return
	}

	card, err := srv.checkout.CreateCard(r.Context(), user, req)
	if err != nil {
		srv.writeGatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

func (srv *Server) DeleteCardHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := srv.checkout.DeleteCard(r.Context(), user, id); err != nil {
		srv.writeGatewayError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (srv *Server) ListCreditOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := srv.storage.ListCreditOrders(r.Context(), user.ID)
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

func (srv *Server) CreateCreditOrderHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.CreditOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	order, err := srv.checkout.CreateCreditOrder(r.Context(), user, req)
	if err != nil {
		srv.writeGatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// writeGatewayError surfaces provider rejections to the client: the raw
// gateway payload on an HTTP-level refusal, the decline reasons otherwise.
func (srv *Server) writeGatewayError(w http.ResponseWriter, err error) {
	var gatewayErr *gateway.Error
	if errors.As(err, &gatewayErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write(gatewayErr.Payload); err != nil {
			srv.deps.Logger.Errorf("write gateway payload: %v", err)
		}
		return
	}

	if errors.Is(err, checkout.ErrChargeDeclined) {
		http.Error(w, err.Error(), http.StatusPaymentRequired)
		return
	}

	writeError(w, err)
}

// RegisterWebhookHandler stores a webhook id issued by the gateway dashboard.
// Inbound callbacks are accepted only for registered ids.
func (srv *Server) RegisterWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(r); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var registration model.WebhookRegistration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if registration.WebhookID == "" {
		http.Error(w, "webhook_id required", http.StatusBadRequest)
		return
	}

	if err := srv.storage.SaveWebhookRegistration(r.Context(), registration); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (srv *Server) handleWebhook(w http.ResponseWriter, r *http.Request, process func(r *http.Request, gatewayOrderID string) error) {
	var payload model.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if payload.ID == "" || payload.Data.ID == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	registered, err := srv.storage.IsWebhookRegistered(r.Context(), payload.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if !registered {
		srv.deps.Logger.Warnf("%v: %s", errs.ErrUnknownWebhook, payload.ID)
		http.Error(w, errs.ErrUnknownWebhook.Error(), http.StatusUnauthorized)
		return
	}

	if err := process(r, payload.Data.ID); err != nil {
		switch {
		case errors.Is(err, errs.ErrCreditOrderNotFound):
			http.Error(w, "unknown order", http.StatusNotFound)
		case errors.Is(err, errs.ErrCreditOrderNotPending):
			// Repeated delivery, acknowledge so the gateway stops retrying.
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "processing failed", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (srv *Server) OrderPaidWebhookHandler(w http.ResponseWriter, r *http.Request) {
	srv.handleWebhook(w, r, func(r *http.Request, gatewayOrderID string) error {
		return srv.checkout.OrderPaid(r.Context(), gatewayOrderID)
	})
}

func (srv *Server) OrderCanceledWebhookHandler(w http.ResponseWriter, r *http.Request) {
	srv.handleWebhook(w, r, func(r *http.Request, gatewayOrderID string) error {
		return srv.checkout.OrderCanceled(r.Context(), gatewayOrderID)
	})
}
