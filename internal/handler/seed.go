package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/elantiq/hostel-booking-api/internal/model"
	"github.com/elantiq/hostel-booking-api/internal/utils"
)

// SeedHandler loads the initial fixture data: five rooms and, when no admin
// exists yet, a default admin account.
type SeedHandler struct {
	Rooms      RoomStore
	Admins     AdminStore
	BcryptCost int
	Log        *zap.Logger
}

func NewSeedHandler(rooms RoomStore, admins AdminStore, bcryptCost int, log *zap.Logger) *SeedHandler {
	return &SeedHandler{Rooms: rooms, Admins: admins, BcryptCost: bcryptCost, Log: log}
}

// Default admin credentials created by the seed. Meant to be changed after
// first login on a real deployment.
const (
	seedAdminEmail    = "admin@elantiq.com"
	seedAdminPassword = "admin123"
	seedAdminName     = "Admin"
)

var seedImages = []string{
	"https://customer-assets.emergentagent.com/job_hostel-booking-4/artifacts/mohc5zyn_WhatsApp%20Image%202026-01-16%20at%208.10.18%20PM.jpeg",
	"https://customer-assets.emergentagent.com/job_hostel-booking-4/artifacts/d91sll3v_WhatsApp%20Image%202026-01-16%20at%208.10.19%20PM%20%281%29.jpeg",
	"https://customer-assets.emergentagent.com/job_hostel-booking-4/artifacts/kdxuhpmm_WhatsApp%20Image%202026-01-16%20at%208.10.19%20PM%20%282%29.jpeg",
	"https://customer-assets.emergentagent.com/job_hostel-booking-4/artifacts/3stoe6m8_WhatsApp%20Image%202026-01-16%20at%208.10.19%20PM%20%283%29.jpeg",
	"https://customer-assets.emergentagent.com/job_hostel-booking-4/artifacts/u8725mp2_WhatsApp%20Image%202026-01-16%20at%208.10.19%20PM.jpeg",
}

var singleAmenities = []string{"Single Bed", "Personal Wardrobe", "Study Desk", "Window View", "Key Lock", "Shared Kitchen Access", "Shared Bathroom"}
var sharedAmenities = []string{"Two Single Beds", "Shared Wardrobe", "Study Area", "Window View", "Key Lock", "Shared Kitchen Access", "Shared Bathroom"}

func seedRooms() []model.Room {
	now := time.Now().UTC()
	return []model.Room{
		{
			ID: utils.NewID(), Name: "Premium Single Room A", RoomType: model.RoomTypeSingle,
			Price: 4700, SecurityDeposit: 300,
			Description: "Spacious single occupancy room perfect for students who value privacy. Features include personal study area, wardrobe, and window with natural lighting. Enjoy the comfort of your own space in our secure, gated compound.",
			Amenities:   singleAmenities,
			Images:      []string{seedImages[0], seedImages[2], seedImages[3]},
			AvailabilityStatus: model.AvailabilityAvailable, TotalSlots: 1, AvailableSlots: 1,
			CreatedAt: now,
		},
		{
			ID: utils.NewID(), Name: "Premium Single Room B", RoomType: model.RoomTypeSingle,
			Price: 4700, SecurityDeposit: 300,
			Description: "Another excellent single occupancy option with ample space for comfortable living. Well-ventilated room with modern finishes in a peaceful environment close to major universities.",
			Amenities:   singleAmenities,
			Images:      []string{seedImages[2], seedImages[0], seedImages[4]},
			AvailabilityStatus: model.AvailabilityAlmostFull, TotalSlots: 1, AvailableSlots: 1,
			CreatedAt: now,
		},
		{
			ID: utils.NewID(), Name: "Shared Room A", RoomType: model.RoomTypeDouble,
			Price: 4500, SecurityDeposit: 300,
			Description: "Comfortable double occupancy room ideal for students seeking affordable accommodation while still enjoying personal space. Share with a like-minded student in a friendly, academic-focused environment.",
			Amenities:   sharedAmenities,
			Images:      []string{seedImages[2], seedImages[1], seedImages[0]},
			AvailabilityStatus: model.AvailabilityAvailable, TotalSlots: 2, AvailableSlots: 2,
			CreatedAt: now,
		},
		{
			ID: utils.NewID(), Name: "Shared Room B", RoomType: model.RoomTypeDouble,
			Price: 4500, SecurityDeposit: 300,
			Description: "Well-maintained shared room with excellent ventilation and natural lighting. Perfect for budget-conscious students who enjoy socializing while maintaining focus on their studies.",
			Amenities:   sharedAmenities,
			Images:      []string{seedImages[0], seedImages[3], seedImages[1]},
			AvailabilityStatus: model.AvailabilityAvailable, TotalSlots: 2, AvailableSlots: 1,
			CreatedAt: now,
		},
		{
			ID: utils.NewID(), Name: "Shared Room C", RoomType: model.RoomTypeDouble,
			Price: 4500, SecurityDeposit: 300,
			Description: "Our most popular shared room option. Recently renovated with modern amenities. Located in a quiet corner of the hostel, perfect for serious students.",
			Amenities:   sharedAmenities,
			Images:      []string{seedImages[4], seedImages[2], seedImages[0]},
			AvailabilityStatus: model.AvailabilityFullyBooked, TotalSlots: 2, AvailableSlots: 0,
			CreatedAt: now,
		},
	}
}

// Seed handles POST /api/seed. Public and idempotent-once: if any room
// already exists the call is a no-op, so running it against a live database
// cannot duplicate or overwrite data.
func (h *SeedHandler) Seed(c echo.Context) error {
	ctx := c.Request().Context()

	existing, err := h.Rooms.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if existing > 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "data already seeded"})
	}

	rooms := seedRooms()
	for _, rm := range rooms {
		if err := h.Rooms.Create(ctx, rm); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed rooms failed"})
		}
	}

	admins, err := h.Admins.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if admins == 0 {
		hash, err := utils.HashPassword(seedAdminPassword, h.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed admin failed"})
		}
		admin := model.Admin{
			ID:           utils.NewID(),
			Email:        seedAdminEmail,
			PasswordHash: hash,
			Name:         seedAdminName,
			CreatedAt:    time.Now().UTC(),
		}
		if err := h.Admins.Create(ctx, admin); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed admin failed"})
		}
		h.Log.Info("seeded default admin", zap.String("email", seedAdminEmail))
	}

	h.Log.Info("seeded fixture rooms", zap.Int("rooms", len(rooms)))
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "data seeded successfully",
		"rooms_created": len(rooms),
	})
}
