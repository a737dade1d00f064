package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the query helpers
// can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (store *PostgresStorage) initSchema(ctx context.Context) error {
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS addresses (
		id SERIAL PRIMARY KEY,
		street TEXT NOT NULL,
		reference TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		username TEXT UNIQUE NOT NULL,
		document TEXT UNIQUE NOT NULL,
		phone TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		address_id INT REFERENCES addresses(id),
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS places (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		address_id INT NOT NULL REFERENCES addresses(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		local_type TEXT NOT NULL,
		capacity INT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'open',
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS plans (
		id SERIAL PRIMARY KEY,
		place_id INT NOT NULL REFERENCES places(id),
		plan_type TEXT NOT NULL,
		name TEXT NOT NULL,
		price NUMERIC NOT NULL,
		week_days BIGINT[] NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS event_orders (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		place_id INT NOT NULL REFERENCES places(id),
		dates_selected TIMESTAMPTZ[] NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'open',
		plan_type TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS ratings (
		id SERIAL PRIMARY KEY,
		sender_id INT NOT NULL REFERENCES users(id),
		target_user_id INT NOT NULL DEFAULT 0,
		place_id INT NOT NULL DEFAULT 0,
		score INT NOT NULL CHECK (score BETWEEN 1 AND 5),
		message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ DEFAULT NOW(),
		CHECK ((target_user_id = 0) <> (place_id = 0))
	);
	CREATE TABLE IF NOT EXISTS cancellations (
		id SERIAL PRIMARY KEY,
		event_order_id INT NOT NULL REFERENCES event_orders(id),
		justification TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS history (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		event_order_id INT NOT NULL REFERENCES event_orders(id),
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS credits (
		user_id INT PRIMARY KEY REFERENCES users(id),
		amount NUMERIC NOT NULL DEFAULT 0 CHECK (amount >= 0),
		modified TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS credit_packs (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC NOT NULL,
		credit_amount NUMERIC NOT NULL,
		activated BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS payment_methods (
		id SERIAL PRIMARY KEY,
		method TEXT UNIQUE NOT NULL
	);
	CREATE TABLE IF NOT EXISTS cards (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		brand TEXT NOT NULL,
		last_digits TEXT NOT NULL,
		holder_name TEXT NOT NULL,
		billing_address_id INT NOT NULL REFERENCES addresses(id),
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS credit_orders (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		credit_pack_id INT NOT NULL REFERENCES credit_packs(id),
		payment_method_id INT NOT NULL REFERENCES payment_methods(id),
		card_id INT REFERENCES cards(id),
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS gateway_users (
		id SERIAL PRIMARY KEY,
		gateway TEXT NOT NULL,
		user_id INT NOT NULL REFERENCES users(id),
		customer_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL DEFAULT '',
		UNIQUE (gateway, user_id)
	);
	CREATE TABLE IF NOT EXISTS gateway_cards (
		id SERIAL PRIMARY KEY,
		gateway TEXT NOT NULL,
		card_id INT NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
		ref_id TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS gateway_credit_orders (
		id SERIAL PRIMARY KEY,
		gateway TEXT NOT NULL,
		credit_order_id INT NOT NULL REFERENCES credit_orders(id),
		ref_id TEXT NOT NULL,
		UNIQUE (gateway, ref_id)
	);
	CREATE TABLE IF NOT EXISTS webhook_registrations (
		id SERIAL PRIMARY KEY,
		webhook_id TEXT UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);
	INSERT INTO payment_methods (method)
	VALUES ('credit'), ('debit'), ('pix')
	ON CONFLICT (method) DO NOTHING;`

	_, err := store.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgresStorage(ctx context.Context, databaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		return nil, err
	}

	return storage, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

func (store *PostgresStorage) Close() {
	store.db.Close()
}

// withinTx runs fn inside a transaction, rolling back on any error.
func (store *PostgresStorage) withinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := store.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
