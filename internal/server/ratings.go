package server

import (
	"encoding/json"
	"net/http"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

// CreateRatingHandler records a score for another user or for a place. The
// request must name exactly one target, and the target must exist.
func (srv *Server) CreateRatingHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		writeError(w, errs.ErrInvalidRatingScore)
		return
	}
	if (req.TargetUserID == 0) == (req.PlaceID == 0) {
		writeError(w, errs.ErrAmbiguousRatingTarget)
		return
	}

	if req.TargetUserID != 0 {
		if _, err := srv.storage.GetUserByID(r.Context(), req.TargetUserID); err != nil {
			writeError(w, err)
			return
		}
	} else {
		if _, err := srv.storage.GetPlace(r.Context(), req.PlaceID); err != nil {
			writeError(w, err)
			return
		}
	}

	rating, err := srv.storage.CreateRating(r.Context(), model.Rating{
		SenderID:     user.ID,
		TargetUserID: req.TargetUserID,
		PlaceID:      req.PlaceID,
		Score:        req.Score,
		Message:      req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rating)
}

func (srv *Server) ListPlaceRatingsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ratings, err := srv.storage.ListPlaceRatings(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(ratings) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}

func (srv *Server) ListUserRatingsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ratings, err := srv.storage.ListUserRatings(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(ratings) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}
