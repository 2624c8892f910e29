package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/shoply/internal/auth"
	"github.com/vaughan-dsouza/shoply/internal/models"
	"github.com/vaughan-dsouza/shoply/internal/store"
	"github.com/vaughan-dsouza/shoply/internal/utils"
)

var validate = validator.New()

type AuthHandler struct {
	Users      store.UserStore
	Hasher     auth.Hasher
	Tokens     *auth.TokenManager
	Limiter    *auth.RateLimiter
	AdminEmail string
	Log        zerolog.Logger
}

func NewAuthHandler(d Deps) *AuthHandler {
	return &AuthHandler{
		Users:      d.Users,
		Hasher:     d.Hasher,
		Tokens:     d.Tokens,
		Limiter:    d.Limiter,
		AdminEmail: d.AdminEmail,
		Log:        d.Log,
	}
}

// ----------- Request DTOs -------------

type registerReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// -------------- REGISTER ----------------------

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	// Policy checks run before any store access: rejection is cheap and
	// leaks no timing about existing accounts.
	if !auth.ValidateEmail(req.Email) {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid or malicious email"})
		return
	}

	if !auth.ValidatePasswordStrength(req.Password) {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "Password is too weak"})
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "All fields are required"})
		return
	}

	existing, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		h.registerError(w, err)
		return
	}
	if existing != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "User already exists"})
		return
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		h.registerError(w, err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
		Gender:   req.Gender,
	}

	if err := h.Users.Create(r.Context(), user); err != nil {
		// Concurrent registrations may both pass the lookup above; the
		// unique index breaks the tie, and losing is not a server error.
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "User already exists"})
			return
		}
		h.registerError(w, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID, models.RoleUser)
	if err != nil {
		h.registerError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]string{
		"msg":   "User registered successfully",
		"token": token,
	})
}

func (h *AuthHandler) registerError(w http.ResponseWriter, err error) {
	h.Log.Error().Err(err).Msg("registration failed")
	utils.JSON(w, http.StatusInternalServerError, map[string]string{
		"msg":   "Database operation timeout or connection issue",
		"error": err.Error(),
	})
}

// -------------- LOGIN ------------------------

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Checked before anything else; a limited client never reaches the store.
	if !h.Limiter.Allow(utils.ClientIP(r)) {
		utils.JSON(w, http.StatusTooManyRequests, map[string]string{
			"message": "Too many login attempts. Please try again later.",
		})
		return
	}

	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		h.loginError(w, err)
		return
	}

	// Unknown email and wrong password answer identically so the response
	// reveals nothing about account existence.
	if user == nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
		return
	}

	if !h.Hasher.Compare(req.Password, user.Password) {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
		return
	}

	// Role is recomputed on every login, never read back from storage.
	role := models.RoleUser
	if req.Email == h.AdminEmail {
		role = models.RoleAdmin
	}

	token, err := h.Tokens.Issue(user.ID, role)
	if err != nil {
		h.loginError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"msg":    strings.ToUpper(role[:1]) + role[1:] + " login successful",
		"token":  token,
		"userId": user.ID,
		"role":   role,
	})
}

func (h *AuthHandler) loginError(w http.ResponseWriter, err error) {
	h.Log.Error().Err(err).Msg("login failed")
	utils.JSON(w, http.StatusInternalServerError, map[string]string{
		"msg":   "Server error",
		"error": err.Error(),
	})
}
