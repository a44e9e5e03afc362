package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/model"
	"github.com/elantiq/hostel-booking-api/internal/repository"
	"github.com/elantiq/hostel-booking-api/internal/utils"
)

// AuthHandler bundles dependencies for admin auth endpoints.
type AuthHandler struct {
	Admins     AdminStore
	Tokens     utils.TokenService
	BcryptCost int
}

func NewAuthHandler(admins AdminStore, tokens utils.TokenService, bcryptCost int) *AuthHandler {
	return &AuthHandler{Admins: admins, Tokens: tokens, BcryptCost: bcryptCost}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResp is the body returned by register and login.
type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register handles POST /api/admin/register: create the admin and return a
// token immediately. Emails are stored exactly as sent; uniqueness is
// case-sensitive and enforced by the store.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and name are required"})
	}

	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	admin := model.Admin{
		ID:           utils.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Admins.Create(c.Request().Context(), admin); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}

	token, err := h.Tokens.Issue(admin.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: token, TokenType: "bearer"})
}

// Login handles POST /api/admin/login. Unknown email and wrong password get
// the same message so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	admin, err := h.Admins.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !utils.VerifyPassword(admin.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
	}

	token, err := h.Tokens.Issue(admin.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /api/admin/me. Admin only.
func (h *AuthHandler) Me(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":    admin.ID,
		"email": admin.Email,
		"name":  admin.Name,
	})
}
