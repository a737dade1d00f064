package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucasribeirorsousa/desopila-api/internal/model"
	"github.com/stretchr/testify/require"
)

func newPagarme(t *testing.T, handler http.HandlerFunc) (*Pagarme, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	gw, err := New(pagarmeName, Config{Token: "sk_test", BaseURL: ts.URL})
	require.NoError(t, err)

	return gw.(*Pagarme), ts
}

func TestNewUnknownGateway(t *testing.T) {
	_, err := New("stripe", Config{})
	require.Error(t, err)
}

func TestPagarmeCreateCustomer(t *testing.T) {
	gw, _ := newPagarme(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "CPF", body["document_type"])

		json.NewEncoder(w).Encode(map[string]any{"id": "cus_123"})
	})

	user := model.User{FirstName: "MARIA", LastName: "SILVA", Email: "maria@test.com", Document: "12345678901", Phone: "11987654321"}
	customerID, err := gw.CreateCustomer(context.Background(), user, model.Address{Street: "Rua A", PostalCode: "01001000"})
	require.NoError(t, err)
	require.Equal(t, "cus_123", customerID)
}

func TestPagarmeCreateCardFailure(t *testing.T) {
	gw, _ := newPagarme(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid card"})
	})

	_, err := gw.CreateCard(context.Background(), "cus_123", model.CardRequest{Number: "4111111111111111"}, model.Address{})
	require.Error(t, err)

	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, http.StatusUnprocessableEntity, gwErr.StatusCode)
}

func TestPagarmeCreditCardPaymentApproved(t *testing.T) {
	gw, _ := newPagarme(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		items := body["items"].([]any)
		item := items[0].(map[string]any)
		require.Equal(t, float64(5000), item["amount"]) // cents

		json.NewEncoder(w).Encode(map[string]any{
			"id": "or_123",
			"charges": []map[string]any{{
				"last_transaction": map[string]any{
					"gateway_response": map[string]any{"code": "200"},
				},
			}},
		})
	})

	result, err := gw.CreditCardPayment(context.Background(), "card_1", "cus_123", 1, Purchase{Amount: 50, Description: "pack", Code: 7})
	require.NoError(t, err)
	require.True(t, result.Approved)
	require.Equal(t, "or_123", result.OrderID)
	require.Equal(t, "200", result.ResponseCode)
}

func TestPagarmeCreditCardPaymentDeclined(t *testing.T) {
	gw, _ := newPagarme(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": "or_456",
			"charges": []map[string]any{{
				"last_transaction": map[string]any{
					"gateway_response": map[string]any{
						"code": "412",
						"errors": []map[string]any{
							{"message": "card declined"},
						},
					},
				},
			}},
		})
	})

	result, err := gw.CreditCardPayment(context.Background(), "card_1", "cus_123", 1, Purchase{Amount: 50})
	require.NoError(t, err)
	require.False(t, result.Approved)
	require.Equal(t, []string{"card declined"}, result.Errors)
}

func TestPagarmeDeleteCard(t *testing.T) {
	gw, _ := newPagarme(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/customers/cus_123/cards/card_1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": "card_1"})
	})

	err := gw.DeleteCard(context.Background(), "cus_123", "card_1")
	require.NoError(t, err)
}
