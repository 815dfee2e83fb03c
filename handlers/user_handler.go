package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"budgettracker/models"
	"budgettracker/repository"
	"budgettracker/utils"

	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	Users     repository.UserRepository
	JWTSecret string
	Log       *slog.Logger
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Signup registers a user with a hashed credential and returns a bearer
// token. Users created earlier by invite or add-by-email can claim their
// account here only if they never set a password.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("hash password", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	user, err := h.Users.GetUserByEmail(body.Email)
	if err != nil {
		h.Log.Error("get user", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	switch {
	case user == nil:
		user = &models.User{
			Name:     body.Name,
			Email:    body.Email,
			Password: string(hash),
		}
		if err := h.Users.CreateUser(user); err != nil {
			h.Log.Error("create user", "error", err)
			respondError(w, http.StatusInternalServerError, CodeServerError)
			return
		}
	case user.Password == "":
		user.Name = body.Name
		user.Password = string(hash)
		if err := h.Users.UpdateUser(user); err != nil {
			h.Log.Error("update user", "error", err)
			respondError(w, http.StatusInternalServerError, CodeServerError)
			return
		}
	default:
		respondError(w, http.StatusBadRequest, CodeAlreadyExists)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, h.JWTSecret)
	if err != nil {
		h.Log.Error("generate token", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	respondOK(w, authResponse{User: user, Token: token})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	user, err := h.Users.GetUserByEmail(body.Email)
	if err != nil {
		h.Log.Error("get user", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if user == nil || user.Password == "" {
		respondError(w, http.StatusUnauthorized, CodeNotFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, CodeNotFound)
		return
	}

	user.LastLoginAt = time.Now().UTC()
	if err := h.Users.UpdateUser(user); err != nil {
		h.Log.Warn("update last login", "user", user.ID, "error", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, h.JWTSecret)
	if err != nil {
		h.Log.Error("generate token", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	respondOK(w, authResponse{User: user, Token: token})
}
