package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"impact-log/internal/logging"
	"impact-log/internal/models"
	"impact-log/internal/store"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,notblank,max=255"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		slog.Warn("signup failed: password rejected", "source", "auth", "email", logging.MaskEmail(email), "error", err.Error())
		fail(c, http.StatusUnprocessableEntity, "password cannot be used")
		return
	}

	acc := models.Account{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := h.store.CreateAccount(c.Request.Context(), &acc); err != nil {
		if errors.Is(err, store.ErrConflict) {
			slog.Warn("signup failed: email exists", "source", "auth", "email", logging.MaskEmail(email))
			fail(c, http.StatusBadRequest, "Account already exists")
			return
		}
		internalError(c, "signup", err)
		return
	}

	slog.Info("account created", "source", "auth", "user_id", acc.ID.String(), "email", logging.MaskEmail(email))
	h.respondWithToken(c, &acc)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)

	acc, err := h.store.AccountByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(c, "login", err)
		return
	}
	if acc == nil || !h.hasher.Verify(req.Password, acc.PasswordHash) {
		slog.Warn("login failed", "source", "auth", "email", logging.MaskEmail(email))
		c.Header("WWW-Authenticate", "Bearer")
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	slog.Info("user logged in", "source", "auth", "user_id", acc.ID.String())
	h.respondWithToken(c, acc)
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, renderUser(account(c)))
}

func (h *Handler) respondWithToken(c *gin.Context, acc *models.Account) {
	token, err := h.tokens.Issue(acc.ID, acc.Role)
	if err != nil {
		internalError(c, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token, User: renderUser(acc)})
}
