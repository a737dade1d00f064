package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/lucasribeirorsousa/desopila-api/internal/config"
	"github.com/lucasribeirorsousa/desopila-api/internal/deps"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/middleware"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Storage interface {
	Ping(ctx context.Context) error

	CheckUserConflicts(ctx context.Context, req model.RegisterRequest) (map[string]string, error)
	CreateUser(ctx context.Context, req model.RegisterRequest, passwordHash string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, string, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)
	GetPasswordHash(ctx context.Context, userID int) (string, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	GetUserAddress(ctx context.Context, userID int) (model.Address, error)

	CreatePlace(ctx context.Context, userID int, req model.PlaceRequest) (model.Place, error)
	GetPlace(ctx context.Context, id int) (model.Place, error)
	ListPlaces(ctx context.Context, filter model.PlaceFilter) ([]model.Place, error)
	ClosePlace(ctx context.Context, id int) error
	CreatePlan(ctx context.Context, req model.PlanRequest) (model.Plan, error)
	GetPlan(ctx context.Context, id int) (model.Plan, error)
	ListPlansByPlace(ctx context.Context, placeID int) ([]model.Plan, error)

	CreateEventOrder(ctx context.Context, order model.EventOrder) (model.EventOrder, error)
	GetEventOrder(ctx context.Context, id int) (model.EventOrder, error)
	ListEventOrders(ctx context.Context, userID int) ([]model.EventOrder, error)
	AcceptOrder(ctx context.Context, orderID int, ownerID int, unlockFee float64) error
	RefuseOrder(ctx context.Context, orderID int, ownerID int) error
	CancelOrder(ctx context.Context, orderID int, userID int, justification string) (model.Cancellation, error)
	UpdateOrderDates(ctx context.Context, orderID int, userID int, dates []time.Time, price float64) error
	ListCancellations(ctx context.Context, userID int) ([]model.Cancellation, error)
	ListOrderHistory(ctx context.Context, orderID int) ([]model.History, error)

	CreateRating(ctx context.Context, rating model.Rating) (model.Rating, error)
	ListUserRatings(ctx context.Context, userID int) ([]model.Rating, error)
	ListPlaceRatings(ctx context.Context, placeID int) ([]model.Rating, error)

	GetCredit(ctx context.Context, userID int) (model.Credit, error)
	ListCreditPacks(ctx context.Context) ([]model.CreditPack, error)
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	ListCards(ctx context.Context, userID int) ([]model.Card, error)
	ListCreditOrders(ctx context.Context, userID int) ([]model.CreditOrder, error)
	IsWebhookRegistered(ctx context.Context, webhookID string) (bool, error)
	SaveWebhookRegistration(ctx context.Context, registration model.WebhookRegistration) error
}

// CheckoutService covers the operations that talk to the payment gateway.
type CheckoutService interface {
	RegisterCustomer(ctx context.Context, user model.User, address model.Address) error
	CreateCard(ctx context.Context, user model.User, req model.CardRequest) (model.Card, error)
	DeleteCard(ctx context.Context, user model.User, cardID int) error
	CreateCreditOrder(ctx context.Context, user model.User, req model.CreditOrderRequest) (model.CreditOrder, error)
	OrderPaid(ctx context.Context, gatewayOrderID string) error
	OrderCanceled(ctx context.Context, gatewayOrderID string) error
}

type Server struct {
	storage  Storage
	config   *config.Config
	deps     *deps.Deps
	checkout CheckoutService
}

func NewServer(storage Storage, config *config.Config, deps *deps.Deps, checkout CheckoutService) *Server {
	return &Server{
		storage:  storage,
		config:   config,
		deps:     deps,
		checkout: checkout,
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Get("/ping", srv.PingHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.Post("/api/user/register", srv.RegisterHandler)
	router.Post("/api/user/login", srv.LoginHandler)
	router.Post("/api/user/refresh", srv.RefreshHandler)

	router.Post("/webhooks/order-paid", srv.OrderPaidWebhookHandler)
	router.Post("/webhooks/order-canceled", srv.OrderCanceledWebhookHandler)

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.storage, srv.deps.TokenManager))

		r.Get("/api/user", srv.GetUserHandler)
		r.Put("/api/user/password", srv.ChangePasswordHandler)

		r.Post("/api/places", srv.CreatePlaceHandler)
		r.Get("/api/places", srv.ListPlacesHandler)
		r.Get("/api/places/{id}", srv.GetPlaceHandler)
		r.Post("/api/places/{id}/close", srv.ClosePlaceHandler)
		r.Get("/api/places/{id}/plans", srv.ListPlansHandler)
		r.Post("/api/plans", srv.CreatePlanHandler)

		r.Post("/api/orders", srv.CreateEventOrderHandler)
		r.Get("/api/orders", srv.ListEventOrdersHandler)
		r.Get("/api/orders/{id}", srv.GetEventOrderHandler)
		r.Get("/api/orders/{id}/history", srv.OrderHistoryHandler)
		r.Post("/api/orders/accept", srv.AcceptOrderHandler)
		r.Post("/api/orders/refuse", srv.RefuseOrderHandler)
		r.Post("/api/orders/cancel", srv.CancelOrderHandler)
		r.Put("/api/orders/dates", srv.UpdateOrderDatesHandler)
		r.Get("/api/cancellations", srv.ListCancellationsHandler)

		r.Post("/api/ratings", srv.CreateRatingHandler)
		r.Get("/api/places/{id}/ratings", srv.ListPlaceRatingsHandler)
		r.Get("/api/users/{id}/ratings", srv.ListUserRatingsHandler)

		r.Get("/api/checkout/credit", srv.GetCreditHandler)
		r.Get("/api/checkout/packs", srv.ListCreditPacksHandler)
		r.Get("/api/checkout/methods", srv.ListPaymentMethodsHandler)
		r.Get("/api/checkout/cards", srv.ListCardsHandler)
		r.Post("/api/checkout/cards", srv.CreateCardHandler)
		r.Delete("/api/checkout/cards/{id}", srv.DeleteCardHandler)
		r.Get("/api/checkout/orders", srv.ListCreditOrdersHandler)
		r.Post("/api/checkout/orders", srv.CreateCreditOrderHandler)
		r.Post("/api/checkout/webhooks", srv.RegisterWebhookHandler)
	})

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.storage.Ping(r.Context()); err != nil {
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func currentUser(r *http.Request) (model.User, bool) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	return user, ok
}

func urlID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

// writeError maps domain errors onto HTTP statuses; anything unmapped is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrAddressNotFound),
		errors.Is(err, errs.ErrPlaceNotFound),
		errors.Is(err, errs.ErrPlanNotFound),
		errors.Is(err, errs.ErrOrderNotFound),
		errors.Is(err, errs.ErrCardNotFound),
		errors.Is(err, errs.ErrCreditPackNotFound),
		errors.Is(err, errs.ErrPaymentMethodNotFound),
		errors.Is(err, errs.ErrCreditOrderNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidCredentials), errors.Is(err, errs.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrInsufficientCredit):
		status = http.StatusPaymentRequired
		message = err.Error()
	case errors.Is(err, errs.ErrNotOwner), errors.Is(err, errs.ErrNotOrderingUser):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidRatingScore),
		errors.Is(err, errs.ErrAmbiguousRatingTarget),
		errors.Is(err, errs.ErrEmptyWeekDays),
		errors.Is(err, errs.ErrPlanPlaceMismatch),
		errors.Is(err, errs.ErrPlanTypeMismatch),
		errors.Is(err, errs.ErrDailyDaysNotAllowed),
		errors.Is(err, errs.ErrPackageDaysMismatch),
		errors.Is(err, errs.ErrOrderNotOpen),
		errors.Is(err, errs.ErrOrderNotCancelable),
		errors.Is(err, errs.ErrOwnPlaceOrder),
		errors.Is(err, errs.ErrNoGatewayCustomer):
		status = http.StatusBadRequest
		message = err.Error()
	}

	http.Error(w, message, status)
}
