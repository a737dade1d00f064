package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

const pagarmeName = "pagarme"
const pagarmeBaseURL = "https://api.pagar.me/core/v5"

func init() {
	register(pagarmeName, func(cfg Config) Gateway {
		if cfg.BaseURL == "" {
			cfg.BaseURL = pagarmeBaseURL
		}
		return &Pagarme{cfg: cfg}
	})
}

type Pagarme struct {
	cfg Config
}

func (p *Pagarme) Name() string { return pagarmeName }

func (p *Pagarme) headers() map[string]string {
	basic := base64.StdEncoding.EncodeToString([]byte(p.cfg.Token + ":"))
	return map[string]string{
		"Authorization": "Basic " + basic,
		"Content-Type":  "application/json",
	}
}

func (p *Pagarme) request(ctx context.Context, method, route string, body any) (int, []byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/%s", p.cfg.BaseURL, route)
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	for key, value := range p.headers() {
		req.Header.Set(key, value)
	}
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := p.cfg.Client.Do(req)
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

func pagarmeAddress(address model.Address) map[string]any {
	return map[string]any{
		"line_1":   address.Street,
		"line_2":   address.Reference,
		"zip_code": address.PostalCode,
		"city":     "N/A",
		"state":    "N/A",
		"country":  "BR",
	}
}

func (p *Pagarme) CreateCustomer(ctx context.Context, user model.User, address model.Address) (string, error) {
	documentType := "CPF"
	if len(user.Document) > 11 {
		documentType = "CNPJ"
	}

	customerData := map[string]any{
		"name":          user.FirstName + " " + user.LastName,
		"email":         user.Email,
		"document":      user.Document,
		"type":          "individual",
		"document_type": documentType,
		"address":       pagarmeAddress(address),
	}
	if len(user.Phone) >= 11 {
		customerData["phones"] = map[string]any{
			"home_phone": map[string]any{
				"country_code": "55",
				"area_code":    user.Phone[:2],
				"number":       user.Phone[2:11],
			},
		}
	}

	status, body, err := p.request(ctx, http.MethodPost, "customers", customerData)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
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

func (p *Pagarme) CreateCard(ctx context.Context, customerID string, card model.CardRequest, address model.Address) (string, error) {
	cardData := map[string]any{
		"number":          card.Number,
		"holder_name":     card.HolderName,
		"holder_document": card.HolderDocument,
		"exp_month":       card.ExpMonth,
		"exp_year":        card.ExpYear,
		"cvv":             card.CVV,
		"brand":           card.Brand,
		"label":           card.Label,
		"billing_address": pagarmeAddress(address),
		"options": map[string]any{
			"verify_card": true,
		},
	}

	route := fmt.Sprintf("customers/%s/cards", customerID)
	status, body, err := p.request(ctx, http.MethodPost, route, cardData)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
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

func (p *Pagarme) DeleteCard(ctx context.Context, customerID string, cardRefID string) error {
	route := fmt.Sprintf("customers/%s/cards/%s", customerID, cardRefID)
	status, body, err := p.request(ctx, http.MethodDelete, route, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &Error{StatusCode: status, Payload: body}
	}

	return nil
}

func (p *Pagarme) CreateOrder(ctx context.Context, customerID string, payment map[string]any, purchase Purchase) (*OrderResult, error) {
	orderData := map[string]any{
		"items": []map[string]any{{
			"amount":      int(purchase.Amount * 100),
			"description": purchase.Description,
			"quantity":    1,
			"code":        purchase.Code,
		}},
		"customer_id":       customerID,
		"payments":          []map[string]any{payment},
		"closed":            true,
		"antifraud_enabled": true,
	}

	status, body, err := p.request(ctx, http.MethodPost, "orders", orderData)
	if err != nil {
		return nil, err
	}

	result := &OrderResult{StatusCode: status, Raw: body}

	var response struct {
		ID      string `json:"id"`
		Charges []struct {
			LastTransaction struct {
				GatewayResponse struct {
					Code   string `json:"code"`
					Errors []struct {
						Message string `json:"message"`
					} `json:"errors"`
				} `json:"gateway_response"`
			} `json:"last_transaction"`
		} `json:"charges"`
	}
	if err := json.Unmarshal(body, &response); err == nil {
		result.OrderID = response.ID
		if len(response.Charges) > 0 {
			gr := response.Charges[0].LastTransaction.GatewayResponse
			result.ResponseCode = gr.Code
			for _, e := range gr.Errors {
				result.Errors = append(result.Errors, e.Message)
			}
		}
	}

	result.Approved = status == http.StatusOK && result.ResponseCode == "200"
	return result, nil
}

func (p *Pagarme) CreditCardPayment(ctx context.Context, cardRefID string, customerID string, installments int, purchase Purchase) (*OrderResult, error) {
	payment := map[string]any{
		"payment_method": "credit_card",
		"credit_card": map[string]any{
			"recurrence":           false,
			"installments":         installments,
			"statement_descriptor": "App Desopila",
			"operation_type":       "auth_and_capture",
			"card_id":              cardRefID,
		},
	}

	return p.CreateOrder(ctx, customerID, payment, purchase)
}
