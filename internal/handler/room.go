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

// RoomHandler bundles dependencies for room endpoints.
type RoomHandler struct {
	Rooms RoomStore
}

func NewRoomHandler(rooms RoomStore) *RoomHandler { return &RoomHandler{Rooms: rooms} }

// roomCreateReq uses pointers for the fields that carry defaults so an
// omitted field can be told apart from an explicit zero.
type roomCreateReq struct {
	Name               string    `json:"name"`
	RoomType           string    `json:"room_type"`
	Price              float64   `json:"price"`
	SecurityDeposit    *float64  `json:"security_deposit"`
	Description        string    `json:"description"`
	Amenities          []string  `json:"amenities"`
	Images             []string  `json:"images"`
	AvailabilityStatus string    `json:"availability_status"`
	TotalSlots         *int      `json:"total_slots"`
	AvailableSlots     *int      `json:"available_slots"`
}

// GetRooms handles GET /api/rooms with optional room_type and availability
// filters. Public.
func (h *RoomHandler) GetRooms(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context(),
		c.QueryParam("room_type"), c.QueryParam("availability"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id. Public.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	room, err := h.Rooms.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms. Admin only.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req roomCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.RoomType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and room_type are required"})
	}

	room := model.Room{
		ID:                 utils.NewID(),
		Name:               req.Name,
		RoomType:           req.RoomType,
		Price:              req.Price,
		SecurityDeposit:    300,
		Description:        req.Description,
		Amenities:          req.Amenities,
		Images:             req.Images,
		AvailabilityStatus: model.AvailabilityAvailable,
		TotalSlots:         1,
		AvailableSlots:     1,
		CreatedAt:          time.Now().UTC(),
	}
	if req.SecurityDeposit != nil {
		room.SecurityDeposit = *req.SecurityDeposit
	}
	if req.AvailabilityStatus != "" {
		room.AvailabilityStatus = req.AvailabilityStatus
	}
	if req.TotalSlots != nil {
		room.TotalSlots = *req.TotalSlots
	}
	if req.AvailableSlots != nil {
		room.AvailableSlots = *req.AvailableSlots
	}

	if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create room failed"})
	}
	return c.JSON(http.StatusOK, room)
}

// UpdateRoom handles PUT /api/rooms/:id with a partial update body. Admin
// only. Note that availability_status is applied exactly as sent; nothing
// recomputes it from the slot counters.
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	var upd model.RoomUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	room, err := h.Rooms.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update room failed"})
	}
	return c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id. Admin only.
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	if err := h.Rooms.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete room failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted successfully"})
}
