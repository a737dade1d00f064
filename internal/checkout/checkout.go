// Package checkout orchestrates card registration and credit purchases
// against the payment gateway. Local writes and the gateway call share one
// transaction boundary: any failure rolls back every local row, while the
// remote side effect is not compensated.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/gateway"
	"github.com/lucasribeirorsousa/desopila-api/internal/metrics"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
	"github.com/lucasribeirorsousa/desopila-api/internal/notify"
	"go.uber.org/zap"
)

var ErrChargeDeclined = errors.New("charge declined by gateway")

type Storage interface {
	GetUserByID(ctx context.Context, id int) (model.User, error)
	GetOwnedAddress(ctx context.Context, userID, addressID int) (model.Address, error)

	SaveGatewayUser(ctx context.Context, gu model.GatewayUser) error
	GetGatewayUser(ctx context.Context, gateway string, userID int) (model.GatewayUser, error)

	GetCard(ctx context.Context, id int) (model.Card, error)
	GetGatewayCard(ctx context.Context, gateway string, cardID int) (model.GatewayCard, error)
	CreateCardWithRef(ctx context.Context, card model.Card, gateway string, refID string) (model.Card, error)
	DeleteCardWithRef(ctx context.Context, cardID int) error

	GetCreditPack(ctx context.Context, id int) (model.CreditPack, error)
	GetPaymentMethod(ctx context.Context, id int) (model.PaymentMethod, error)
	CreateCreditOrder(ctx context.Context, order model.CreditOrder, gateway string, charge func(ctx context.Context, order model.CreditOrder) (string, error)) (model.CreditOrder, error)
	CompleteCreditOrder(ctx context.Context, gateway string, refID string) (model.CreditOrder, error)
	CancelCreditOrder(ctx context.Context, gateway string, refID string) (model.CreditOrder, error)
}

type Service struct {
	storage  Storage
	gateway  gateway.Gateway
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

func NewService(storage Storage, gw gateway.Gateway, notifier notify.Notifier, logger *zap.SugaredLogger) *Service {
	return &Service{
		storage:  storage,
		gateway:  gw,
		notifier: notifier,
		logger:   logger,
	}
}

// RegisterCustomer creates the user's account on the gateway and stores the
// mapping. Called at registration time; a gateway failure does not block the
// registration, the user just cannot check out until retried.
func (s *Service) RegisterCustomer(ctx context.Context, user model.User, address model.Address) error {
	customerID, err := s.gateway.CreateCustomer(ctx, user, address)
	if err != nil {
		return fmt.Errorf("create gateway customer: %w", err)
	}

	return s.storage.SaveGatewayUser(ctx, model.GatewayUser{
		Gateway:    s.gateway.Name(),
		UserID:     user.ID,
		CustomerID: customerID,
	})
}

// CreateCard registers the card on the gateway first and persists the local
// card plus its gateway mapping only after the remote call succeeded.
func (s *Service) CreateCard(ctx context.Context, user model.User, req model.CardRequest) (model.Card, error) {
	gatewayUser, err := s.storage.GetGatewayUser(ctx, s.gateway.Name(), user.ID)
	if err != nil {
		return model.Card{}, err
	}

	// The billing address must belong to the requesting user; an arbitrary
	// address id is treated as not found.
	address, err := s.storage.GetOwnedAddress(ctx, user.ID, req.BillingAddressID)
	if err != nil {
		return model.Card{}, err
	}

	refID, err := s.gateway.CreateCard(ctx, gatewayUser.CustomerID, req, address)
	if err != nil {
		return model.Card{}, err
	}

	card := model.Card{
		UserID:           user.ID,
		Brand:            req.Brand,
		LastDigits:       lastDigits(req.Number),
		HolderName:       req.HolderName,
		BillingAddressID: address.ID,
	}

	return s.storage.CreateCardWithRef(ctx, card, s.gateway.Name(), refID)
}

func (s *Service) DeleteCard(ctx context.Context, user model.User, cardID int) error {
	card, err := s.storage.GetCard(ctx, cardID)
	if err != nil {
		return err
	}
	if card.UserID != user.ID {
		return errs.ErrCardNotFound
	}

	gatewayUser, err := s.storage.GetGatewayUser(ctx, s.gateway.Name(), user.ID)
	if err != nil {
		return err
	}

	gatewayCard, err := s.storage.GetGatewayCard(ctx, s.gateway.Name(), card.ID)
	if err != nil {
		return err
	}

	if err := s.gateway.DeleteCard(ctx, gatewayUser.CustomerID, gatewayCard.RefID); err != nil {
		return err
	}

	return s.storage.DeleteCardWithRef(ctx, card.ID)
}

// CreateCreditOrder charges the card while the pending order's transaction is
// still open. The order and its gateway mapping are committed only when the
// gateway answered with an HTTP success and the provider-level approved code.
func (s *Service) CreateCreditOrder(ctx context.Context, user model.User, req model.CreditOrderRequest) (model.CreditOrder, error) {
	pack, err := s.storage.GetCreditPack(ctx, req.CreditPackID)
	if err != nil {
		return model.CreditOrder{}, err
	}
	if !pack.Activated {
		return model.CreditOrder{}, errs.ErrCreditPackNotFound
	}

	if _, err := s.storage.GetPaymentMethod(ctx, req.PaymentMethodID); err != nil {
		return model.CreditOrder{}, err
	}

	card, err := s.storage.GetCard(ctx, req.CardID)
	if err != nil {
		return model.CreditOrder{}, err
	}
	if card.UserID != user.ID {
		return model.CreditOrder{}, errs.ErrCardNotFound
	}

	gatewayUser, err := s.storage.GetGatewayUser(ctx, s.gateway.Name(), user.ID)
	if err != nil {
		return model.CreditOrder{}, err
	}

	gatewayCard, err := s.storage.GetGatewayCard(ctx, s.gateway.Name(), card.ID)
	if err != nil {
		return model.CreditOrder{}, err
	}

	installments := req.Installments
	if installments < 1 {
		installments = 1
	}

	order := model.CreditOrder{
		UserID:          user.ID,
		CreditPackID:    pack.ID,
		PaymentMethodID: req.PaymentMethodID,
		CardID:          card.ID,
	}

	charge := func(ctx context.Context, order model.CreditOrder) (string, error) {
		metrics.PaymentAttemptsTotal.Inc()

		purchase := gateway.Purchase{
			Amount:      pack.Price,
			Description: pack.Name,
			Code:        pack.ID,
		}

		result, err := s.gateway.CreditCardPayment(ctx, gatewayCard.RefID, gatewayUser.CustomerID, installments, purchase)
		if err != nil {
			metrics.PaymentDeclinedTotal.WithLabelValues("transport").Inc()
			return "", err
		}
		if result.StatusCode < 200 || result.StatusCode >= 300 {
			metrics.PaymentDeclinedTotal.WithLabelValues("http").Inc()
			return "", &gateway.Error{StatusCode: result.StatusCode, Payload: result.Raw}
		}
		if !result.Approved {
			metrics.PaymentDeclinedTotal.WithLabelValues("provider").Inc()
			return "", fmt.Errorf("%w: %s", ErrChargeDeclined, strings.Join(result.Errors, "; "))
		}

		metrics.PaymentApprovedTotal.Inc()
		return result.OrderID, nil
	}

	created, err := s.storage.CreateCreditOrder(ctx, order, s.gateway.Name(), charge)
	if err != nil {
		return model.CreditOrder{}, err
	}

	s.notifier.Notify(user.Email,
		"Credit purchase awaiting payment",
		"We are waiting for the payment confirmation to add your credits. The purchase is canceled if the payment does not complete.")

	return created, nil
}

// OrderPaid handles the gateway's payment confirmation. The status guard in
// the storage layer makes a second delivery fail instead of crediting twice.
func (s *Service) OrderPaid(ctx context.Context, gatewayOrderID string) error {
	order, err := s.storage.CompleteCreditOrder(ctx, s.gateway.Name(), gatewayOrderID)
	if err != nil {
		return err
	}

	metrics.WebhooksProcessedTotal.WithLabelValues("order-paid").Inc()

	user, err := s.storage.GetUserByID(ctx, order.UserID)
	if err != nil {
		s.logger.Errorf("notify paid order %d: %v", order.ID, err)
		return nil
	}

	s.notifier.Notify(user.Email,
		"Credit purchase completed",
		"Your payment went through and the credits were added to your account. Thank you for using our app!")

	return nil
}

// OrderCanceled mirrors OrderPaid: guarded by the pending status and
// notifying the order's owner.
func (s *Service) OrderCanceled(ctx context.Context, gatewayOrderID string) error {
	order, err := s.storage.CancelCreditOrder(ctx, s.gateway.Name(), gatewayOrderID)
	if err != nil {
		return err
	}

	metrics.WebhooksProcessedTotal.WithLabelValues("order-canceled").Inc()

	user, err := s.storage.GetUserByID(ctx, order.UserID)
	if err != nil {
		s.logger.Errorf("notify canceled order %d: %v", order.ID, err)
		return nil
	}

	s.notifier.Notify(user.Email,
		"Credit purchase canceled",
		"Unfortunately your purchase was canceled.")

	return nil
}

func lastDigits(number string) string {
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}
