package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

// CheckUserConflicts reports every registration field already taken by
// another account. A missing row is the expected outcome here; only real
// query failures surface as errors.
func (s *PostgresStorage) CheckUserConflicts(ctx context.Context, req model.RegisterRequest) (map[string]string, error) {
	checks := []struct {
		field   string
		value   string
		message string
	}{
		{"email", req.Email, "email already registered"},
		{"username", req.Username, "username already registered"},
		{"document", req.Document, "document already registered"},
		{"phone", req.Phone, "phone already registered"},
	}

	conflicts := map[string]string{}
	for _, check := range checks {
		query := fmt.Sprintf(`SELECT id FROM users WHERE %s = $1`, check.field)

		var id int
		err := s.db.QueryRow(ctx, query, check.value).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("check %s conflict: %w", check.field, err)
		}
		conflicts[check.field] = check.message
	}

	return conflicts, nil
}

// CreateUser inserts the address, the user and an empty credit balance in one
// transaction.
func (s *PostgresStorage) CreateUser(ctx context.Context, req model.RegisterRequest, passwordHash string) (model.User, error) {
	const insertAddressQuery = `
		INSERT INTO addresses (street, reference, postal_code, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	const insertUserQuery = `
		INSERT INTO users (email, username, document, phone, first_name, last_name, password_hash, address_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	const insertCreditQuery = `INSERT INTO credits (user_id) VALUES ($1)`

	var user model.User
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		var addressID int
		addr := req.Address
		err := tx.QueryRow(ctx, insertAddressQuery, addr.Street, addr.Reference, addr.PostalCode, addr.Latitude, addr.Longitude).Scan(&addressID)
		if err != nil {
			return fmt.Errorf("insert address: %w", err)
		}

		user = model.User{
			Email:     req.Email,
			Username:  req.Username,
			Document:  req.Document,
			Phone:     req.Phone,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}

		err = tx.QueryRow(ctx, insertUserQuery,
			user.Email, user.Username, user.Document, user.Phone,
			user.FirstName, user.LastName, passwordHash, addressID,
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			// SQLSTATE 23505: a concurrent registration won the unique
			// constraint race after the conflict pre-check passed.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return errs.ErrUserAlreadyExists
			}
			return fmt.Errorf("insert user: %w", err)
		}

		if _, err := tx.Exec(ctx, insertCreditQuery, user.ID); err != nil {
			return fmt.Errorf("insert credit: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (model.User, string, error) {
	const query = `
		SELECT id, email, username, document, phone, first_name, last_name, password_hash, created_at
		FROM users WHERE email = $1`

	var user model.User
	var hash string

	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Username, &user.Document, &user.Phone,
		&user.FirstName, &user.LastName, &hash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, "", errs.ErrUserNotFound
		}
		return model.User{}, "", fmt.Errorf("get user by email: %w", err)
	}

	return user, hash, nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id int) (model.User, error) {
	const query = `
		SELECT id, email, username, document, phone, first_name, last_name, created_at
		FROM users WHERE id = $1`

	var user model.User

	err := s.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Username, &user.Document, &user.Phone,
		&user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (s *PostgresStorage) GetPasswordHash(ctx context.Context, userID int) (string, error) {
	const query = `SELECT password_hash FROM users WHERE id = $1`

	var hash string
	err := s.db.QueryRow(ctx, query, userID).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrUserNotFound
		}
		return "", fmt.Errorf("get password hash: %w", err)
	}

	return hash, nil
}

func (s *PostgresStorage) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE id = $2`

	cmdTag, err := s.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

func (s *PostgresStorage) GetUserAddress(ctx context.Context, userID int) (model.Address, error) {
	const query = `
		SELECT a.id, a.street, a.reference, a.postal_code, a.latitude, a.longitude
		FROM addresses a
		JOIN users u ON u.address_id = a.id
		WHERE u.id = $1`

	return scanAddress(s.db.QueryRow(ctx, query, userID))
}

// GetOwnedAddress resolves an address only when it belongs to the user: their
// registration address or the address of one of their places. Anything else
// looks like a missing address to the caller.
func (s *PostgresStorage) GetOwnedAddress(ctx context.Context, userID, addressID int) (model.Address, error) {
	const query = `
		SELECT a.id, a.street, a.reference, a.postal_code, a.latitude, a.longitude
		FROM addresses a
		WHERE a.id = $2 AND (
			EXISTS (SELECT 1 FROM users u WHERE u.id = $1 AND u.address_id = a.id)
			OR EXISTS (SELECT 1 FROM places p WHERE p.user_id = $1 AND p.address_id = a.id)
		)`

	return scanAddress(s.db.QueryRow(ctx, query, userID, addressID))
}

func scanAddress(row pgx.Row) (model.Address, error) {
	var addr model.Address
	err := row.Scan(&addr.ID, &addr.Street, &addr.Reference, &addr.PostalCode, &addr.Latitude, &addr.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Address{}, errs.ErrAddressNotFound
		}
		return model.Address{}, fmt.Errorf("get address: %w", err)
	}
	return addr, nil
}

func (s *PostgresStorage) SaveGatewayUser(ctx context.Context, gu model.GatewayUser) error {
	const query = `
		INSERT INTO gateway_users (gateway, user_id, customer_id, receiver_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (gateway, user_id) DO UPDATE SET customer_id = $3, receiver_id = $4`

	_, err := s.db.Exec(ctx, query, gu.Gateway, gu.UserID, gu.CustomerID, gu.ReceiverID)
	if err != nil {
		return fmt.Errorf("save gateway user: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetGatewayUser(ctx context.Context, gateway string, userID int) (model.GatewayUser, error) {
	const query = `
		SELECT id, gateway, user_id, customer_id, receiver_id
		FROM gateway_users WHERE gateway = $1 AND user_id = $2`

	var gu model.GatewayUser
	err := s.db.QueryRow(ctx, query, gateway, userID).Scan(&gu.ID, &gu.Gateway, &gu.UserID, &gu.CustomerID, &gu.ReceiverID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GatewayUser{}, errs.ErrNoGatewayCustomer
		}
		return model.GatewayUser{}, fmt.Errorf("get gateway user: %w", err)
	}

	return gu, nil
}
