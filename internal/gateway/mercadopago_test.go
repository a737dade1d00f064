package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMercadoPago(t *testing.T, handler http.HandlerFunc) *MercadoPago {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	gw, err := New(mercadoPagoName, Config{Token: "TEST-token", BaseURL: ts.URL})
	require.NoError(t, err)

	return gw.(*MercadoPago)
}

func TestMercadoPagoPaymentApproved(t *testing.T) {
	gw := newMercadoPago(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payments", r.URL.Path)
		require.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":     123456,
			"status": "approved",
		})
	})

	result, err := gw.CreditCardPayment(context.Background(), "tok_1", "cus_9", 1, Purchase{Amount: 49.9, Description: "pack", Code: 3})
	require.NoError(t, err)
	require.True(t, result.Approved)
	require.Equal(t, "123456", result.OrderID)
}

func TestMercadoPagoPaymentRejected(t *testing.T) {
	gw := newMercadoPago(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":            123457,
			"status":        "rejected",
			"status_detail": "cc_rejected_insufficient_amount",
		})
	})

	result, err := gw.CreditCardPayment(context.Background(), "tok_1", "cus_9", 1, Purchase{Amount: 49.9})
	require.NoError(t, err)
	require.False(t, result.Approved)
	require.Contains(t, result.Errors, "cc_rejected_insufficient_amount")
}
