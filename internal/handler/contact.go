package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/model"
	"github.com/elantiq/hostel-booking-api/internal/utils"
)

// ContactHandler bundles dependencies for the contact form endpoints.
type ContactHandler struct {
	Contacts ContactStore
}

func NewContactHandler(contacts ContactStore) *ContactHandler {
	return &ContactHandler{Contacts: contacts}
}

type contactCreateReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateMessage handles POST /api/contact. Public.
func (h *ContactHandler) CreateMessage(c echo.Context) error {
	var req contactCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and message are required"})
	}

	msg := model.ContactMessage{
		ID:        utils.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Contacts.Create(c.Request().Context(), msg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create message failed"})
	}
	return c.JSON(http.StatusOK, msg)
}

// GetMessages handles GET /api/contact. Admin only. Newest first, capped by
// the store.
func (h *ContactHandler) GetMessages(c echo.Context) error {
	msgs, err := h.Contacts.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, msgs)
}
