package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/gateway"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeStorage struct {
	getUserByID         func(ctx context.Context, id int) (model.User, error)
	getOwnedAddress     func(ctx context.Context, userID, addressID int) (model.Address, error)
	saveGatewayUser     func(ctx context.Context, gu model.GatewayUser) error
	getGatewayUser      func(ctx context.Context, gw string, userID int) (model.GatewayUser, error)
	getCard             func(ctx context.Context, id int) (model.Card, error)
	getGatewayCard      func(ctx context.Context, gw string, cardID int) (model.GatewayCard, error)
	createCardWithRef   func(ctx context.Context, card model.Card, gw string, refID string) (model.Card, error)
	deleteCardWithRef   func(ctx context.Context, cardID int) error
	getCreditPack       func(ctx context.Context, id int) (model.CreditPack, error)
	getPaymentMethod    func(ctx context.Context, id int) (model.PaymentMethod, error)
	createCreditOrder   func(ctx context.Context, order model.CreditOrder, gw string, charge func(ctx context.Context, order model.CreditOrder) (string, error)) (model.CreditOrder, error)
	completeCreditOrder func(ctx context.Context, gw string, refID string) (model.CreditOrder, error)
	cancelCreditOrder   func(ctx context.Context, gw string, refID string) (model.CreditOrder, error)
}

func (f *fakeStorage) GetUserByID(ctx context.Context, id int) (model.User, error) {
	return f.getUserByID(ctx, id)
}

func (f *fakeStorage) GetOwnedAddress(ctx context.Context, userID, addressID int) (model.Address, error) {
	return f.getOwnedAddress(ctx, userID, addressID)
}

func (f *fakeStorage) SaveGatewayUser(ctx context.Context, gu model.GatewayUser) error {
	return f.saveGatewayUser(ctx, gu)
}

func (f *fakeStorage) GetGatewayUser(ctx context.Context, gw string, userID int) (model.GatewayUser, error) {
	return f.getGatewayUser(ctx, gw, userID)
}

func (f *fakeStorage) GetCard(ctx context.Context, id int) (model.Card, error) {
	return f.getCard(ctx, id)
}

func (f *fakeStorage) GetGatewayCard(ctx context.Context, gw string, cardID int) (model.GatewayCard, error) {
	return f.getGatewayCard(ctx, gw, cardID)
}

func (f *fakeStorage) CreateCardWithRef(ctx context.Context, card model.Card, gw string, refID string) (model.Card, error) {
	return f.createCardWithRef(ctx, card, gw, refID)
}

func (f *fakeStorage) DeleteCardWithRef(ctx context.Context, cardID int) error {
	return f.deleteCardWithRef(ctx, cardID)
}

func (f *fakeStorage) GetCreditPack(ctx context.Context, id int) (model.CreditPack, error) {
	return f.getCreditPack(ctx, id)
}

func (f *fakeStorage) GetPaymentMethod(ctx context.Context, id int) (model.PaymentMethod, error) {
	return f.getPaymentMethod(ctx, id)
}

func (f *fakeStorage) CreateCreditOrder(ctx context.Context, order model.CreditOrder, gw string, charge func(ctx context.Context, order model.CreditOrder) (string, error)) (model.CreditOrder, error) {
	return f.createCreditOrder(ctx, order, gw, charge)
}

func (f *fakeStorage) CompleteCreditOrder(ctx context.Context, gw string, refID string) (model.CreditOrder, error) {
	return f.completeCreditOrder(ctx, gw, refID)
}

func (f *fakeStorage) CancelCreditOrder(ctx context.Context, gw string, refID string) (model.CreditOrder, error) {
	return f.cancelCreditOrder(ctx, gw, refID)
}

type fakeGateway struct {
	customerID  string
	cardRefID   string
	cardErr     error
	cardCalls   int
	deleteErr   error
	deleteCalls int
	payResult   *gateway.OrderResult
	payErr      error
	payCalls    int
}

func (g *fakeGateway) Name() string { return "fakepay" }

func (g *fakeGateway) CreateCustomer(ctx context.Context, user model.User, address model.Address) (string, error) {
	return g.customerID, nil
}

func (g *fakeGateway) CreateCard(ctx context.Context, customerID string, card model.CardRequest, address model.Address) (string, error) {
	g.cardCalls++
	return g.cardRefID, g.cardErr
}

func (g *fakeGateway) DeleteCard(ctx context.Context, customerID string, cardRefID string) error {
	g.deleteCalls++
	return g.deleteErr
}

func (g *fakeGateway) CreateOrder(ctx context.Context, customerID string, payment map[string]any, purchase gateway.Purchase) (*gateway.OrderResult, error) {
	return g.payResult, g.payErr
}

func (g *fakeGateway) CreditCardPayment(ctx context.Context, cardRefID string, customerID string, installments int, purchase gateway.Purchase) (*gateway.OrderResult, error) {
	g.payCalls++
	return g.payResult, g.payErr
}

type recordingNotifier struct {
	emails   []string
	subjects []string
}

func (n *recordingNotifier) Notify(email, subject, message string) {
	n.emails = append(n.emails, email)
	n.subjects = append(n.subjects, subject)
}

func checkoutStorage() *fakeStorage {
	return &fakeStorage{
		getCreditPack: func(ctx context.Context, id int) (model.CreditPack, error) {
			return model.CreditPack{ID: id, Name: "Pack 50", Price: 50, CreditAmount: 55, Activated: true}, nil
		},
		getPaymentMethod: func(ctx context.Context, id int) (model.PaymentMethod, error) {
			return model.PaymentMethod{ID: id, Method: "credit_card"}, nil
		},
		getCard: func(ctx context.Context, id int) (model.Card, error) {
			return model.Card{ID: id, UserID: 1, LastDigits: "4242"}, nil
		},
		getGatewayUser: func(ctx context.Context, gw string, userID int) (model.GatewayUser, error) {
			return model.GatewayUser{Gateway: gw, UserID: userID, CustomerID: "cus_1"}, nil
		},
		getGatewayCard: func(ctx context.Context, gw string, cardID int) (model.GatewayCard, error) {
			return model.GatewayCard{Gateway: gw, CardID: cardID, RefID: "card_1"}, nil
		},
		createCreditOrder: func(ctx context.Context, order model.CreditOrder, gw string, charge func(ctx context.Context, order model.CreditOrder) (string, error)) (model.CreditOrder, error) {
			order.ID = 7
			order.Status = model.CreditOrderPending
			if _, err := charge(ctx, order); err != nil {
				return model.CreditOrder{}, err
			}
			return order, nil
		},
	}
}

func TestCreateCreditOrderApproved(t *testing.T) {
	gw := &fakeGateway{payResult: &gateway.OrderResult{OrderID: "or_1", StatusCode: 200, Approved: true}}
	notifier := &recordingNotifier{}
	service := NewService(checkoutStorage(), gw, notifier, zaptest.NewLogger(t).Sugar())

	user := model.User{ID: 1, Email: "ana@example.com"}
	order, err := service.CreateCreditOrder(context.Background(), user, model.CreditOrderRequest{
		CreditPackID: 3, PaymentMethodID: 1, CardID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, model.CreditOrderPending, order.Status)
	assert.Equal(t, 1, gw.payCalls)
	require.Len(t, notifier.emails, 1)
	assert.Equal(t, "ana@example.com", notifier.emails[0])
}

func TestCreateCreditOrderDeclinedByProvider(t *testing.T) {
	gw := &fakeGateway{payResult: &gateway.OrderResult{
		OrderID:    "or_2",
		StatusCode: 200,
		Approved:   false,
		Errors:     []string{"insufficient funds"},
	}}
	notifier := &recordingNotifier{}
	service := NewService(checkoutStorage(), gw, notifier, zaptest.NewLogger(t).Sugar())

	_, err := service.CreateCreditOrder(context.Background(), model.User{ID: 1}, model.CreditOrderRequest{
		CreditPackID: 3, PaymentMethodID: 1, CardID: 5,
	})

	require.ErrorIs(t, err, ErrChargeDeclined)
	assert.Contains(t, err.Error(), "insufficient funds")
	assert.Empty(t, notifier.emails)
}

func TestCreateCreditOrderGatewayHTTPError(t *testing.T) {
	gw := &fakeGateway{payResult: &gateway.OrderResult{
		StatusCode: 422,
		Raw:        json.RawMessage(`{"message":"invalid card"}`),
	}}
	service := NewService(checkoutStorage(), gw, &recordingNotifier{}, zaptest.NewLogger(t).Sugar())

	_, err := service.CreateCreditOrder(context.Background(), model.User{ID: 1}, model.CreditOrderRequest{
		CreditPackID: 3, PaymentMethodID: 1, CardID: 5,
	})

	var gatewayErr *gateway.Error
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, 422, gatewayErr.StatusCode)
}

func TestCreateCreditOrderRejectsForeignCard(t *testing.T) {
	storage := checkoutStorage()
	storage.getCard = func(ctx context.Context, id int) (model.Card, error) {
		return model.Card{ID: id, UserID: 99}, nil
	}
	gw := &fakeGateway{payResult: &gateway.OrderResult{StatusCode: 200, Approved: true}}
	service := NewService(storage, gw, &recordingNotifier{}, zaptest.NewLogger(t).Sugar())

	_, err := service.CreateCreditOrder(context.Background(), model.User{ID: 1}, model.CreditOrderRequest{
		CreditPackID: 3, PaymentMethodID: 1, CardID: 5,
	})

	assert.ErrorIs(t, err, errs.ErrCardNotFound)
	assert.Zero(t, gw.payCalls)
}

func TestCreateCreditOrderInactivePack(t *testing.T) {
	storage := checkoutStorage()
	storage.getCreditPack = func(ctx context.Context, id int) (model.CreditPack, error) {
		return model.CreditPack{ID: id, Activated: false}, nil
	}
	service := NewService(storage, &fakeGateway{}, &recordingNotifier{}, zaptest.NewLogger(t).Sugar())

	_, err := service.CreateCreditOrder(context.Background(), model.User{ID: 1}, model.CreditOrderRequest{CreditPackID: 3})

	assert.ErrorIs(t, err, errs.ErrCreditPackNotFound)
}

func TestCreateCardRequiresGatewayCustomer(t *testing.T) {
	storage := checkoutStorage()
	storage.getGatewayUser = func(ctx context.Context, gw string, userID int) (model.GatewayUser, error) {
		return model.GatewayUser{}, errs.ErrNoGatewayCustomer
	}
	service := NewService(storage, &fakeGateway{}, &recordingNotifier{}, zaptest.NewLogger(t).Sugar())

	_, err := service.CreateCard(context.Background(), model.User{ID: 1}, model.CardRequest{Number: "4242424242424242"})

	assert.ErrorIs(t, err, errs.ErrNoGatewayCustomer)
}

func TestCreateCardRejectsForeignBillingAddress(t *testing.T) {
	storage := checkoutStorage()
	storage.getOwnedAddress = func(ctx context.Context, userID, addressID int) (model.Address, error) {
		return model.Address{}, errs.ErrAddressNotFound
	}
	gw := &fakeGateway{cardRefID: "card_9"}
	service := NewService(storage, gw, &recordingNotifier{}, zaptest.NewLogger(t).Sugar())

	_, err := service.CreateCard(context.Background(), model.User{ID: 1}, model.CardRequest{
		Number:           "4242424242424242",
		BillingAddressID: 99,
	})

	assert.ErrorIs(t, err, errs.ErrAddressNotFound)
	assert.Zero(t, gw.cardCalls)
}

func TestCreateCardPersistsAfterRemoteSuccess(t *testing.T) {
	var saved model.Card
	var savedRef string
	storage := checkoutStorage()
	storage.getOwnedAddress = func(ctx context.Context, userID, addressID int) (model.Address, error) {
		return model.Address{ID: addressID}, nil
	}
	storage.createCardWithRef = func(ctx context.Context, card model.Card, gw string, refID string) (model.Card, error) {
		saved = card
		savedRef = refID
		card.ID = 12
		return card, nil
	}
	gw := &fakeGateway{cardRefID: "card_9"}
	service := NewService(storage, gw, &recordingNotifier{}, zaptest.NewLogger(t).Sugar())

	card, err := service.CreateCard(context.Background(), model.User{ID: 1}, model.CardRequest{
		Number:           "4242424242424242",
		HolderName:       "ANA SILVA",
		Brand:            "visa",
		BillingAddressID: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, 12, card.ID)
	assert.Equal(t, "4242", saved.LastDigits)
	assert.Equal(t, "ANA SILVA", saved.HolderName)
	assert.Equal(t, "card_9", savedRef)
}

func TestDeleteCardStopsOnRemoteFailure(t *testing.T) {
	localDeletes := 0
	storage := checkoutStorage()
	storage.deleteCardWithRef = func(ctx context.Context, cardID int) error {
		localDeletes++
		return nil
	}
	gw := &fakeGateway{deleteErr: errors.New("gateway unavailable")}
	service := NewService(storage, gw, &recordingNotifier{}, zaptest.NewLogger(t).Sugar())

	err := service.DeleteCard(context.Background(), model.User{ID: 1}, 5)

	require.Error(t, err)
	assert.Equal(t, 1, gw.deleteCalls)
	assert.Zero(t, localDeletes)
}

func TestOrderPaidNotifiesOwner(t *testing.T) {
	storage := checkoutStorage()
	storage.completeCreditOrder = func(ctx context.Context, gw string, refID string) (model.CreditOrder, error) {
		return model.CreditOrder{ID: 7, UserID: 1, Status: model.CreditOrderCompleted}, nil
	}
	storage.getUserByID = func(ctx context.Context, id int) (model.User, error) {
		return model.User{ID: id, Email: "ana@example.com"}, nil
	}
	notifier := &recordingNotifier{}
	service := NewService(storage, &fakeGateway{}, notifier, zaptest.NewLogger(t).Sugar())

	require.NoError(t, service.OrderPaid(context.Background(), "or_1"))
	require.Len(t, notifier.emails, 1)
	assert.Equal(t, "ana@example.com", notifier.emails[0])
}

func TestOrderPaidSecondDelivery(t *testing.T) {
	storage := checkoutStorage()
	storage.completeCreditOrder = func(ctx context.Context, gw string, refID string) (model.CreditOrder, error) {
		return model.CreditOrder{}, errs.ErrCreditOrderNotPending
	}
	notifier := &recordingNotifier{}
	service := NewService(storage, &fakeGateway{}, notifier, zaptest.NewLogger(t).Sugar())

	err := service.OrderPaid(context.Background(), "or_1")

	assert.ErrorIs(t, err, errs.ErrCreditOrderNotPending)
	assert.Empty(t, notifier.emails)
}

func TestOrderCanceledNotifiesOwner(t *testing.T) {
	storage := checkoutStorage()
	storage.cancelCreditOrder = func(ctx context.Context, gw string, refID string) (model.CreditOrder, error) {
		return model.CreditOrder{ID: 7, UserID: 1, Status: model.CreditOrderCanceled}, nil
	}
	storage.getUserByID = func(ctx context.Context, id int) (model.User, error) {
		return model.User{ID: id, Email: "ana@example.com"}, nil
	}
	notifier := &recordingNotifier{}
	service := NewService(storage, &fakeGateway{}, notifier, zaptest.NewLogger(t).Sugar())

	require.NoError(t, service.OrderCanceled(context.Background(), "or_1"))
	require.Len(t, notifier.subjects, 1)
	assert.Equal(t, "Credit purchase canceled", notifier.subjects[0])
}
