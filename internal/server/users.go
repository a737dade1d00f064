package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (srv *Server) issueTokens(userID int) (tokenPair, error) {
	access, err := srv.deps.TokenManager.GenerateToken(userID)
	if err != nil {
		return tokenPair{}, err
	}
	refresh, err := srv.deps.TokenManager.GenerateRefreshToken(userID)
	if err != nil {
		return tokenPair{}, err
	}
	return tokenPair{Access: access, Refresh: refresh}, nil
}

func (srv *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Username == "" || req.Document == "" || req.Password == "" {
		http.Error(w, "email, username, document and password required", http.StatusBadRequest)
		return
	}

	conflicts, err := srv.storage.CheckUserConflicts(r.Context(), req)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if len(conflicts) > 0 {
		writeJSON(w, http.StatusConflict, map[string]any{"conflicts": conflicts})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}

	user, err := srv.storage.CreateUser(r.Context(), req, string(hash))
	if err != nil {
		if errors.Is(err, errs.ErrUserAlreadyExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	// The gateway account is created best effort: the user can still log in
	// and browse, checkout retries the mapping lookup on demand.
	if address, err := srv.storage.GetUserAddress(r.Context(), user.ID); err == nil {
		if err := srv.checkout.RegisterCustomer(r.Context(), user, address); err != nil {
			srv.deps.Logger.Errorf("register gateway customer for user %d: %v", user.ID, err)
		}
	}

	tokens, err := srv.issueTokens(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, tokens)
}

func (srv *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	user, hash, err := srv.storage.GetUserByEmail(r.Context(), creds.Email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	tokens, err := srv.issueTokens(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

func (srv *Server) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	userID, err := srv.deps.TokenManager.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := srv.storage.GetUserByID(r.Context(), userID); err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	tokens, err := srv.issueTokens(userID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

func (srv *Server) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (srv *Server) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.NewPassword == "" {
		http.Error(w, "new password required", http.StatusBadRequest)
		return
	}

	hash, err := srv.storage.GetPasswordHash(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.OldPassword)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}

	if err := srv.storage.UpdatePassword(r.Context(), user.ID, string(newHash)); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
