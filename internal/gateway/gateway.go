// Package gateway integrates the external payment providers behind one
// provider-agnostic interface. Providers register themselves at init time and
// the active one is selected by name from configuration.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

// Config carries everything a provider needs. Replaces the original dynamic
// keyword-argument wiring with an explicit struct.
type Config struct {
	Token   string
	BaseURL string
	Client  *http.Client
}

// Purchase describes what is being charged, independent of any provider.
type Purchase struct {
	Amount      float64
	Description string
	Code        int
}

// OrderResult is the provider's answer to a charge attempt. Callers decide
// success from the HTTP status code plus the provider's embedded response
// code; the raw payload is kept for error reporting.
type OrderResult struct {
	OrderID      string
	StatusCode   int
	Approved     bool
	ResponseCode string
	Errors       []string
	Raw          json.RawMessage
}

// Error is a gateway rejection carrying the provider payload so the HTTP
// boundary can embed it in the response.
type Error struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Payload)
}

type Gateway interface {
	Name() string
	CreateCustomer(ctx context.Context, user model.User, address model.Address) (string, error)
	CreateCard(ctx context.Context, customerID string, card model.CardRequest, address model.Address) (string, error)
	DeleteCard(ctx context.Context, customerID string, cardRefID string) error
	CreateOrder(ctx context.Context, customerID string, payment map[string]any, purchase Purchase) (*OrderResult, error)
	CreditCardPayment(ctx context.Context, cardRefID string, customerID string, installments int, purchase Purchase) (*OrderResult, error)
}

type factory func(cfg Config) Gateway

var registry = map[string]factory{}

func register(name string, f factory) {
	registry[name] = f
}

// New builds the provider registered under name.
func New(name string, cfg Config) (Gateway, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownGateway, name)
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}
	return f(cfg), nil
}
