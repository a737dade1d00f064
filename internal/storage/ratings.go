package storage

import (
	"context"
	"fmt"

	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

func (s *PostgresStorage) CreateRating(ctx context.Context, rating model.Rating) (model.Rating, error) {
	const query = `
		INSERT INTO ratings (sender_id, target_user_id, place_id, score, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		rating.SenderID, rating.TargetUserID, rating.PlaceID, rating.Score, rating.Message,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		return model.Rating{}, fmt.Errorf("insert rating: %w", err)
	}

	return rating, nil
}

// ListUserRatings returns ratings received by the user, newest first.
func (s *PostgresStorage) ListUserRatings(ctx context.Context, userID int) ([]model.Rating, error) {
	const query = `
		SELECT id, sender_id, target_user_id, place_id, score, message, created_at
		FROM ratings
		WHERE target_user_id = $1
		ORDER BY created_at DESC`

	return s.listRatings(ctx, query, userID)
}

func (s *PostgresStorage) ListPlaceRatings(ctx context.Context, placeID int) ([]model.Rating, error) {
	const query = `
		SELECT id, sender_id, target_user_id, place_id, score, message, created_at
		FROM ratings
		WHERE place_id = $1
		ORDER BY created_at DESC`

	return s.listRatings(ctx, query, placeID)
}

func (s *PostgresStorage) listRatings(ctx context.Context, query string, arg any) ([]model.Rating, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []model.Rating
	for rows.Next() {
		var rating model.Rating
		err := rows.Scan(
			&rating.ID, &rating.SenderID, &rating.TargetUserID, &rating.PlaceID,
			&rating.Score, &rating.Message, &rating.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return ratings, nil
}
