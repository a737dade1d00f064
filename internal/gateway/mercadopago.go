package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

const mercadoPagoName = "mercadopago"
const mercadoPagoBaseURL = "https://api.mercadopago.com"

func init() {
	register(mercadoPagoName, func(cfg Config) Gateway {
		if cfg.BaseURL == "" {
			cfg.BaseURL = mercadoPagoBaseURL
		}
		return &MercadoPago{cfg: cfg}
	})
}

type MercadoPago struct {
	cfg Config
}

func (m *MercadoPago) Name() string { return mercadoPagoName }

func (m *MercadoPago) request(ctx context.Context, method, route string, body any) (int, []byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/%s", m.cfg.BaseURL, route)
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Idempotency-Key", uuid.New().String())

	resp, err := m.cfg.Client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, data, nil
}

func (m *MercadoPago) CreateCustomer(ctx context.Context, user model.User, address model.Address) (string, error) {
	customerData := map[string]any{
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"identification": map[string]any{
			"type":   "CPF",
			"number": user.Document,
		},
		"address": map[string]any{
			"street_name": address.Street,
			"zip_code":    address.PostalCode,
		},
	}

	status, body, err := m.request(ctx, http.MethodPost, "v1/customers", customerData)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", &Error{StatusCode: status, Payload: body}
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode customer response: %w", err)
	}

	return response.ID, nil
}

func (m *MercadoPago) CreateCard(ctx context.Context, customerID string, card model.CardRequest, address model.Address) (string, error) {
	cardData := map[string]any{
		"card_number":      card.Number,
		"expiration_month": card.ExpMonth,
		"expiration_year":  card.ExpYear,
		"security_code":    card.CVV,
		"cardholder": map[string]any{
			"name": card.HolderName,
			"identification": map[string]any{
				"type":   "CPF",
				"number": card.HolderDocument,
			},
		},
	}

	route := fmt.Sprintf("v1/customers/%s/cards", customerID)
	status, body, err := m.request(ctx, http.MethodPost, route, cardData)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", &Error{StatusCode: status, Payload: body}
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode card response: %w", err)
	}

	return response.ID, nil
}

func (m *MercadoPago) DeleteCard(ctx context.Context, customerID string, cardRefID string) error {
	route := fmt.Sprintf("v1/customers/%s/cards/%s", customerID, cardRefID)
	status, body, err := m.request(ctx, http.MethodDelete, route, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &Error{StatusCode: status, Payload: body}
	}

	return nil
}

func (m *MercadoPago) CreateOrder(ctx context.Context, customerID string, payment map[string]any, purchase Purchase) (*OrderResult, error) {
	paymentData := map[string]any{
		"transaction_amount": purchase.Amount,
		"description":        purchase.Description,
		"external_reference": strconv.Itoa(purchase.Code),
		"payer": map[string]any{
			"type": "customer",
			"id":   customerID,
		},
	}
	for key, value := range payment {
		paymentData[key] = value
	}

	status, body, err := m.request(ctx, http.MethodPost, "v1/payments", paymentData)
	if err != nil {
		return nil, err
	}

	result := &OrderResult{StatusCode: status, Raw: body}

	var response struct {
		ID           json.Number `json:"id"`
		Status       string      `json:"status"`
		StatusDetail string      `json:"status_detail"`
	}
	if err := json.Unmarshal(body, &response); err == nil {
		result.OrderID = response.ID.String()
		result.ResponseCode = response.Status
		if response.Status != "approved" && response.StatusDetail != "" {
			result.Errors = append(result.Errors, response.StatusDetail)
		}
	}

	result.Approved = (status == http.StatusOK || status == http.StatusCreated) && result.ResponseCode == "approved"
	return result, nil
}

func (m *MercadoPago) CreditCardPayment(ctx context.Context, cardRefID string, customerID string, installments int, purchase Purchase) (*OrderResult, error) {
	payment := map[string]any{
		"installments": installments,
		"token":        cardRefID,
	}

	return m.CreateOrder(ctx, customerID, payment, purchase)
}
