package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

func (s *PostgresStorage) CreatePlace(ctx context.Context, userID int, req model.PlaceRequest) (model.Place, error) {
	const insertAddressQuery = `
		INSERT INTO addresses (street, reference, postal_code, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	const insertPlaceQuery = `
		INSERT INTO places (user_id, address_id, title, description, local_type, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at`

	var place model.Place
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		var addressID int
		addr := req.Address
		err := tx.QueryRow(ctx, insertAddressQuery, addr.Street, addr.Reference, addr.PostalCode, addr.Latitude, addr.Longitude).Scan(&addressID)
		if err != nil {
			return fmt.Errorf("insert address: %w", err)
		}

		place = model.Place{
			UserID:      userID,
			AddressID:   addressID,
			Title:       req.Title,
			Description: req.Description,
			LocalType:   req.LocalType,
			Capacity:    req.Capacity,
		}

		err = tx.QueryRow(ctx, insertPlaceQuery,
			userID, addressID, req.Title, req.Description, req.LocalType, req.Capacity,
		).Scan(&place.ID, &place.Status, &place.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert place: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Place{}, err
	}

	return place, nil
}

func (s *PostgresStorage) GetPlace(ctx context.Context, id int) (model.Place, error) {
	const query = `
		SELECT id, user_id, address_id, title, description, local_type, capacity, status, created_at
		FROM places WHERE id = $1`

	var place model.Place
	err := s.db.QueryRow(ctx, query, id).Scan(
		&place.ID, &place.UserID, &place.AddressID, &place.Title, &place.Description,
		&place.LocalType, &place.Capacity, &place.Status, &place.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Place{}, errs.ErrPlaceNotFound
		}
		return model.Place{}, fmt.Errorf("get place: %w", err)
	}

	return place, nil
}

func (s *PostgresStorage) ListPlaces(ctx context.Context, filter model.PlaceFilter) ([]model.Place, error) {
	status := filter.Status
	if status == "" {
		status = model.PlaceOpen
	}

	query := `
		SELECT id, user_id, address_id, title, description, local_type, capacity, status, created_at
		FROM places
		WHERE status = $1`
	args := []any{status}

	if filter.LocalType != "" {
		args = append(args, filter.LocalType)
		query += fmt.Sprintf(" AND local_type = $%d", len(args))
	}
	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var places []model.Place
	for rows.Next() {
		var place model.Place
		err := rows.Scan(
			&place.ID, &place.UserID, &place.AddressID, &place.Title, &place.Description,
			&place.LocalType, &place.Capacity, &place.Status, &place.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return places, nil
}

func (s *PostgresStorage) ClosePlace(ctx context.Context, id int) error {
	const query = `UPDATE places SET status = 'closed' WHERE id = $1`

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("close place: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrPlaceNotFound
	}

	return nil
}

func (s *PostgresStorage) CreatePlan(ctx context.Context, req model.PlanRequest) (model.Plan, error) {
	const query = `
		INSERT INTO plans (place_id, plan_type, name, price, week_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	plan := model.Plan{
		PlaceID:  req.PlaceID,
		PlanType: req.PlanType,
		Name:     req.Name,
		Price:    req.Price,
		WeekDays: req.WeekDays,
	}

	err := s.db.QueryRow(ctx, query, req.PlaceID, req.PlanType, req.Name, req.Price, req.WeekDays).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return model.Plan{}, fmt.Errorf("insert plan: %w", err)
	}

	return plan, nil
}

func (s *PostgresStorage) GetPlan(ctx context.Context, id int) (model.Plan, error) {
	const query = `
		SELECT id, place_id, plan_type, name, price, week_days, created_at
		FROM plans WHERE id = $1`

	var plan model.Plan
	err := s.db.QueryRow(ctx, query, id).Scan(
		&plan.ID, &plan.PlaceID, &plan.PlanType, &plan.Name, &plan.Price, &plan.WeekDays, &plan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Plan{}, errs.ErrPlanNotFound
		}
		return model.Plan{}, fmt.Errorf("get plan: %w", err)
	}

	return plan, nil
}

func (s *PostgresStorage) ListPlansByPlace(ctx context.Context, placeID int) ([]model.Plan, error) {
	const query = `
		SELECT id, place_id, plan_type, name, price, week_days, created_at
		FROM plans
		WHERE place_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.Query(ctx, query, placeID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []model.Plan
	for rows.Next() {
		var plan model.Plan
		err := rows.Scan(&plan.ID, &plan.PlaceID, &plan.PlanType, &plan.Name, &plan.Price, &plan.WeekDays, &plan.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return plans, nil
}
