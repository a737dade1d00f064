package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

func (s *PostgresStorage) GetCredit(ctx context.Context, userID int) (model.Credit, error) {
	const query = `SELECT user_id, amount, modified FROM credits WHERE user_id = $1`

	var credit model.Credit
	err := s.db.QueryRow(ctx, query, userID).Scan(&credit.UserID, &credit.Amount, &credit.Modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Credit{}, errs.ErrUserNotFound
		}
		return model.Credit{}, fmt.Errorf("get credit: %w", err)
	}

	return credit, nil
}

func (s *PostgresStorage) ListCreditPacks(ctx context.Context) ([]model.CreditPack, error) {
	const query = `
		SELECT id, name, price, credit_amount, activated, created_at
		FROM credit_packs
		WHERE activated
		ORDER BY price ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credit packs: %w", err)
	}
	defer rows.Close()

	var packs []model.CreditPack
	for rows.Next() {
		var pack model.CreditPack
		if err := rows.Scan(&pack.ID, &pack.Name, &pack.Price, &pack.CreditAmount, &pack.Activated, &pack.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit pack: %w", err)
		}
		packs = append(packs, pack)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return packs, nil
}

func (s *PostgresStorage) GetCreditPack(ctx context.Context, id int) (model.CreditPack, error) {
	const query = `SELECT id, name, price, credit_amount, activated, created_at FROM credit_packs WHERE id = $1`

	var pack model.CreditPack
	err := s.db.QueryRow(ctx, query, id).Scan(&pack.ID, &pack.Name, &pack.Price, &pack.CreditAmount, &pack.Activated, &pack.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CreditPack{}, errs.ErrCreditPackNotFound
		}
		return model.CreditPack{}, fmt.Errorf("get credit pack: %w", err)
	}

	return pack, nil
}

func (s *PostgresStorage) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	const query = `SELECT id, method FROM payment_methods ORDER BY id ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []model.PaymentMethod
	for rows.Next() {
		var method model.PaymentMethod
		if err := rows.Scan(&method.ID, &method.Method); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, method)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return methods, nil
}

func (s *PostgresStorage) GetPaymentMethod(ctx context.Context, id int) (model.PaymentMethod, error) {
	const query = `SELECT id, method FROM payment_methods WHERE id = $1`

	var method model.PaymentMethod
	err := s.db.QueryRow(ctx, query, id).Scan(&method.ID, &method.Method)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PaymentMethod{}, errs.ErrPaymentMethodNotFound
		}
		return model.PaymentMethod{}, fmt.Errorf("get payment method: %w", err)
	}

	return method, nil
}

func (s *PostgresStorage) GetCard(ctx context.Context, id int) (model.Card, error) {
	const query = `
		SELECT id, user_id, brand, last_digits, holder_name, billing_address_id, created_at
		FROM cards WHERE id = $1`

	var card model.Card
	err := s.db.QueryRow(ctx, query, id).Scan(
		&card.ID, &card.UserID, &card.Brand, &card.LastDigits,
		&card.HolderName, &card.BillingAddressID, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Card{}, errs.ErrCardNotFound
		}
		return model.Card{}, fmt.Errorf("get card: %w", err)
	}

	return card, nil
}

func (s *PostgresStorage) ListCards(ctx context.Context, userID int) ([]model.Card, error) {
	const query = `
		SELECT id, user_id, brand, last_digits, holder_name, billing_address_id, created_at
		FROM cards
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var card model.Card
		err := rows.Scan(
			&card.ID, &card.UserID, &card.Brand, &card.LastDigits,
			&card.HolderName, &card.BillingAddressID, &card.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return cards, nil
}

func (s *PostgresStorage) GetGatewayCard(ctx context.Context, gateway string, cardID int) (model.GatewayCard, error) {
	const query = `SELECT id, gateway, card_id, ref_id FROM gateway_cards WHERE gateway = $1 AND card_id = $2`

	var gc model.GatewayCard
	err := s.db.QueryRow(ctx, query, gateway, cardID).Scan(&gc.ID, &gc.Gateway, &gc.CardID, &gc.RefID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GatewayCard{}, errs.ErrCardNotFound
		}
		return model.GatewayCard{}, fmt.Errorf("get gateway card: %w", err)
	}

	return gc, nil
}

// CreateCardWithRef persists the local card together with its gateway mapping.
// Both rows exist only when the whole transaction commits.
func (s *PostgresStorage) CreateCardWithRef(ctx context.Context, card model.Card, gateway string, refID string) (model.Card, error) {
	const insertCardQuery = `
		INSERT INTO cards (user_id, brand, last_digits, holder_name, billing_address_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	const insertRefQuery = `INSERT INTO gateway_cards (gateway, card_id, ref_id) VALUES ($1, $2, $3)`

	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertCardQuery,
			card.UserID, card.Brand, card.LastDigits, card.HolderName, card.BillingAddressID,
		).Scan(&card.ID, &card.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert card: %w", err)
		}

		if _, err := tx.Exec(ctx, insertRefQuery, gateway, card.ID, refID); err != nil {
			return fmt.Errorf("insert gateway card: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Card{}, err
	}

	return card, nil
}

func (s *PostgresStorage) DeleteCardWithRef(ctx context.Context, cardID int) error {
	const deleteRefQuery = `DELETE FROM gateway_cards WHERE card_id = $1`
	const deleteCardQuery = `DELETE FROM cards WHERE id = $1`

	return s.withinTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteRefQuery, cardID); err != nil {
			return fmt.Errorf("delete gateway card: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, deleteCardQuery, cardID)
		if err != nil {
			return fmt.Errorf("delete card: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return errs.ErrCardNotFound
		}

		return nil
	})
}

// CreateCreditOrder inserts the pending order, runs the charge while the
// transaction is open and stores the gateway mapping the charge returned.
// Any failure rolls back every local write.
func (s *PostgresStorage) CreateCreditOrder(ctx context.Context, order model.CreditOrder, gateway string, charge func(ctx context.Context, order model.CreditOrder) (string, error)) (model.CreditOrder, error) {
	const insertOrderQuery = `
		INSERT INTO credit_orders (user_id, credit_pack_id, payment_method_id, card_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at`

	const insertRefQuery = `INSERT INTO gateway_credit_orders (gateway, credit_order_id, ref_id) VALUES ($1, $2, $3)`

	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrderQuery,
			order.UserID, order.CreditPackID, order.PaymentMethodID, order.CardID,
		).Scan(&order.ID, &order.Status, &order.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert credit order: %w", err)
		}

		refID, err := charge(ctx, order)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, insertRefQuery, gateway, order.ID, refID); err != nil {
			return fmt.Errorf("insert gateway credit order: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.CreditOrder{}, err
	}

	return order, nil
}

func (s *PostgresStorage) ListCreditOrders(ctx context.Context, userID int) ([]model.CreditOrder, error) {
	const query = `
		SELECT id, user_id, credit_pack_id, payment_method_id, COALESCE(card_id, 0), status, created_at
		FROM credit_orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list credit orders: %w", err)
	}
	defer rows.Close()

	var orders []model.CreditOrder
	for rows.Next() {
		var order model.CreditOrder
		err := rows.Scan(&order.ID, &order.UserID, &order.CreditPackID, &order.PaymentMethodID, &order.CardID, &order.Status, &order.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan credit order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

const lockCreditOrderByRefQuery = `
	SELECT o.id, o.user_id, o.credit_pack_id, o.payment_method_id, COALESCE(o.card_id, 0), o.status, o.created_at
	FROM credit_orders o
	JOIN gateway_credit_orders g ON g.credit_order_id = o.id
	WHERE g.gateway = $1 AND g.ref_id = $2
	FOR UPDATE OF o`

// CompleteCreditOrder marks a pending order completed and credits the buyer
// with the pack price. A second delivery for the same order fails, so a
// purchase is never credited twice.
func (s *PostgresStorage) CompleteCreditOrder(ctx context.Context, gateway string, refID string) (model.CreditOrder, error) {
	const completeQuery = `UPDATE credit_orders SET status = 'completed' WHERE id = $1`
	const creditQuery = `UPDATE credits SET amount = amount + $1, modified = NOW() WHERE user_id = $2`
	const packPriceQuery = `SELECT price FROM credit_packs WHERE id = $1`

	var order model.CreditOrder
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, lockCreditOrderByRefQuery, gateway, refID).Scan(
			&order.ID, &order.UserID, &order.CreditPackID, &order.PaymentMethodID,
			&order.CardID, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrCreditOrderNotFound
			}
			return fmt.Errorf("lock credit order: %w", err)
		}
		if order.Status != model.CreditOrderPending {
			return errs.ErrCreditOrderNotPending
		}

		if _, err := tx.Exec(ctx, completeQuery, order.ID); err != nil {
			return fmt.Errorf("complete credit order: %w", err)
		}

		var packPrice float64
		if err := tx.QueryRow(ctx, packPriceQuery, order.CreditPackID).Scan(&packPrice); err != nil {
			return fmt.Errorf("get pack price: %w", err)
		}

		if _, err := tx.Exec(ctx, creditQuery, packPrice, order.UserID); err != nil {
			return fmt.Errorf("credit balance: %w", err)
		}

		order.Status = model.CreditOrderCompleted
		return nil
	})
	if err != nil {
		return model.CreditOrder{}, err
	}

	return order, nil
}

// CancelCreditOrder is guarded the same way as completion: only a pending
// order can move to canceled.
func (s *PostgresStorage) CancelCreditOrder(ctx context.Context, gateway string, refID string) (model.CreditOrder, error) {
	const cancelQuery = `UPDATE credit_orders SET status = 'canceled' WHERE id = $1`

	var order model.CreditOrder
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, lockCreditOrderByRefQuery, gateway, refID).Scan(
			&order.ID, &order.UserID, &order.CreditPackID, &order.PaymentMethodID,
			&order.CardID, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrCreditOrderNotFound
			}
			return fmt.Errorf("lock credit order: %w", err)
		}
		if order.Status != model.CreditOrderPending {
			return errs.ErrCreditOrderNotPending
		}

		if _, err := tx.Exec(ctx, cancelQuery, order.ID); err != nil {
			return fmt.Errorf("cancel credit order: %w", err)
		}

		order.Status = model.CreditOrderCanceled
		return nil
	})
	if err != nil {
		return model.CreditOrder{}, err
	}

	return order, nil
}

func (s *PostgresStorage) IsWebhookRegistered(ctx context.Context, webhookID string) (bool, error) {
	const query = `SELECT id FROM webhook_registrations WHERE webhook_id = $1`

	var id int
	err := s.db.QueryRow(ctx, query, webhookID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check webhook registration: %w", err)
	}

	return true, nil
}

func (s *PostgresStorage) SaveWebhookRegistration(ctx context.Context, registration model.WebhookRegistration) error {
	const query = `
		INSERT INTO webhook_registrations (webhook_id, description)
		VALUES ($1, $2)
		ON CONFLICT (webhook_id) DO UPDATE SET description = $2`

	if _, err := s.db.Exec(ctx, query, registration.WebhookID, registration.Description); err != nil {
		return fmt.Errorf("save webhook registration: %w", err)
	}

	return nil
}
