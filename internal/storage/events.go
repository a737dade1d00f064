package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

const selectEventOrderFields = `id, user_id, place_id, dates_selected, title, description, price, status, plan_type, created_at`

func scanEventOrder(row pgx.Row) (model.EventOrder, error) {
	var order model.EventOrder
	err := row.Scan(
		&order.ID, &order.UserID, &order.PlaceID, &order.DatesSelected,
		&order.Title, &order.Description, &order.Price, &order.Status,
		&order.PlanType, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.EventOrder{}, errs.ErrOrderNotFound
		}
		return model.EventOrder{}, fmt.Errorf("scan event order: %w", err)
	}
	return order, nil
}

func (s *PostgresStorage) CreateEventOrder(ctx context.Context, order model.EventOrder) (model.EventOrder, error) {
	const insertOrderQuery = `
		INSERT INTO event_orders (user_id, place_id, dates_selected, title, description, price, plan_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at`

	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrderQuery,
			order.UserID, order.PlaceID, order.DatesSelected,
			order.Title, order.Description, order.Price, order.PlanType,
		).Scan(&order.ID, &order.Status, &order.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert event order: %w", err)
		}

		return insertHistory(ctx, tx, order.UserID, order.ID, "event order created")
	})
	if err != nil {
		return model.EventOrder{}, err
	}

	return order, nil
}

func (s *PostgresStorage) GetEventOrder(ctx context.Context, id int) (model.EventOrder, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_orders WHERE id = $1`, selectEventOrderFields)

	return scanEventOrder(s.db.QueryRow(ctx, query, id))
}

// ListEventOrders returns orders the user placed plus orders received on the
// user's places.
func (s *PostgresStorage) ListEventOrders(ctx context.Context, userID int) ([]model.EventOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM event_orders
		WHERE user_id = $1
		   OR place_id IN (SELECT id FROM places WHERE user_id = $1)
		ORDER BY created_at DESC`, selectEventOrderFields)

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list event orders: %w", err)
	}
	defer rows.Close()

	var orders []model.EventOrder
	for rows.Next() {
		order, err := scanEventOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// AcceptOrder moves an open order to accepted and debits the unlock fee from
// the owner's credit balance in the same transaction. The debit never drives
// the balance negative: an insufficient balance aborts the whole transition.
func (s *PostgresStorage) AcceptOrder(ctx context.Context, orderID int, ownerID int, unlockFee float64) error {
	const lockOrderQuery = `SELECT status FROM event_orders WHERE id = $1 FOR UPDATE`
	const lockCreditQuery = `SELECT amount FROM credits WHERE user_id = $1 FOR UPDATE`
	const debitQuery = `UPDATE credits SET amount = amount - $1, modified = NOW() WHERE user_id = $2`
	const acceptQuery = `UPDATE event_orders SET status = 'accepted' WHERE id = $1`

	return s.withinTx(ctx, func(tx pgx.Tx) error {
		var status model.OrderStatus
		err := tx.QueryRow(ctx, lockOrderQuery, orderID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrOrderNotFound
			}
			return fmt.Errorf("lock event order: %w", err)
		}
		if status != model.OrderOpen {
			return errs.ErrOrderNotOpen
		}

		var balance float64
		err = tx.QueryRow(ctx, lockCreditQuery, ownerID).Scan(&balance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrInsufficientCredit
			}
			return fmt.Errorf("lock credit: %w", err)
		}
		if balance-unlockFee < 0 {
			return errs.ErrInsufficientCredit
		}

		if _, err := tx.Exec(ctx, debitQuery, unlockFee, ownerID); err != nil {
			return fmt.Errorf("debit unlock fee: %w", err)
		}

		if _, err := tx.Exec(ctx, acceptQuery, orderID); err != nil {
			return fmt.Errorf("accept event order: %w", err)
		}

		return insertHistory(ctx, tx, ownerID, orderID, "event order accepted")
	})
}

func (s *PostgresStorage) RefuseOrder(ctx context.Context, orderID int, ownerID int) error {
	const lockOrderQuery = `SELECT status FROM event_orders WHERE id = $1 FOR UPDATE`
	const refuseQuery = `UPDATE event_orders SET status = 'refused' WHERE id = $1`

	return s.withinTx(ctx, func(tx pgx.Tx) error {
		var status model.OrderStatus
		err := tx.QueryRow(ctx, lockOrderQuery, orderID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrOrderNotFound
			}
			return fmt.Errorf("lock event order: %w", err)
		}
		if status != model.OrderOpen {
			return errs.ErrOrderNotOpen
		}

		if _, err := tx.Exec(ctx, refuseQuery, orderID); err != nil {
			return fmt.Errorf("refuse event order: %w", err)
		}

		return insertHistory(ctx, tx, ownerID, orderID, "event order refused")
	})
}

// CancelOrder is allowed from open or accepted and records the justification.
func (s *PostgresStorage) CancelOrder(ctx context.Context, orderID int, userID int, justification string) (model.Cancellation, error) {
	const lockOrderQuery = `SELECT status FROM event_orders WHERE id = $1 FOR UPDATE`
	const cancelQuery = `UPDATE event_orders SET status = 'canceled' WHERE id = $1`
	const insertCancellationQuery = `
		INSERT INTO cancellations (event_order_id, justification)
		VALUES ($1, $2)
		RETURNING id, created_at`

	var cancellation model.Cancellation
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		var status model.OrderStatus
		err := tx.QueryRow(ctx, lockOrderQuery, orderID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrOrderNotFound
			}
			return fmt.Errorf("lock event order: %w", err)
		}
		if status != model.OrderOpen && status != model.OrderAccepted {
			return errs.ErrOrderNotCancelable
		}

		if _, err := tx.Exec(ctx, cancelQuery, orderID); err != nil {
			return fmt.Errorf("cancel event order: %w", err)
		}

		cancellation = model.Cancellation{EventOrderID: orderID, Justification: justification}
		err = tx.QueryRow(ctx, insertCancellationQuery, orderID, justification).Scan(&cancellation.ID, &cancellation.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert cancellation: %w", err)
		}

		return insertHistory(ctx, tx, userID, orderID, "event order canceled: "+justification)
	})
	if err != nil {
		return model.Cancellation{}, err
	}

	return cancellation, nil
}

// UpdateOrderDates overwrites the selected dates and the price of an order
// that is still open. The caller revalidates the dates against the plan
// before getting here.
func (s *PostgresStorage) UpdateOrderDates(ctx context.Context, orderID int, userID int, dates []time.Time, price float64) error {
	const lockOrderQuery = `SELECT status FROM event_orders WHERE id = $1 FOR UPDATE`
	const updateQuery = `UPDATE event_orders SET dates_selected = $1, price = $2 WHERE id = $3`

	return s.withinTx(ctx, func(tx pgx.Tx) error {
		var status model.OrderStatus
		err := tx.QueryRow(ctx, lockOrderQuery, orderID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrOrderNotFound
			}
			return fmt.Errorf("lock event order: %w", err)
		}
		if status != model.OrderOpen {
			return errs.ErrOrderNotOpen
		}

		if _, err := tx.Exec(ctx, updateQuery, dates, price, orderID); err != nil {
			return fmt.Errorf("update event order dates: %w", err)
		}

		return insertHistory(ctx, tx, userID, orderID, "event order dates changed")
	})
}

func (s *PostgresStorage) ListCancellations(ctx context.Context, userID int) ([]model.Cancellation, error) {
	const query = `
		SELECT c.id, c.event_order_id, c.justification, c.created_at
		FROM cancellations c
		JOIN event_orders o ON o.id = c.event_order_id
		WHERE o.user_id = $1
		   OR o.place_id IN (SELECT id FROM places WHERE user_id = $1)
		ORDER BY c.created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cancellations: %w", err)
	}
	defer rows.Close()

	var cancellations []model.Cancellation
	for rows.Next() {
		var c model.Cancellation
		if err := rows.Scan(&c.ID, &c.EventOrderID, &c.Justification, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cancellation: %w", err)
		}
		cancellations = append(cancellations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return cancellations, nil
}

func (s *PostgresStorage) ListOrderHistory(ctx context.Context, orderID int) ([]model.History, error) {
	const query = `
		SELECT id, user_id, event_order_id, description, created_at
		FROM history
		WHERE event_order_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order history: %w", err)
	}
	defer rows.Close()

	var entries []model.History
	for rows.Next() {
		var h model.History
		if err := rows.Scan(&h.ID, &h.UserID, &h.EventOrderID, &h.Description, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entries = append(entries, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return entries, nil
}

func insertHistory(ctx context.Context, q querier, userID, orderID int, description string) error {
	const query = `INSERT INTO history (user_id, event_order_id, description) VALUES ($1, $2, $3)`

	if _, err := q.Exec(ctx, query, userID, orderID, description); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	return nil
}
