package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/model"
	"github.com/elantiq/hostel-booking-api/internal/utils"
)

// AdminKey is the context key under which RequireAdmin stores the
// authenticated admin record for downstream handlers.
const AdminKey = "admin"

// AdminLookup resolves a token subject to a live admin record. Implemented
// by repository.AdminRepo.
type AdminLookup interface {
	GetByID(ctx context.Context, id string) (model.Admin, error)
}

// RequireAdmin returns an Echo middleware that authenticates requests with a
// Bearer token. The check order is contractual, because it decides which
// error the client sees:
//
//  1. no bearer credential        -> 401 "missing bearer token"
//  2. token past its expiry       -> 401 "token expired"
//  3. bad signature / garbage     -> 401 "invalid token"
//  4. subject not in the store    -> 401 "admin not found"
//
// Step 4 runs on every request with no caching, which is what makes deleting
// an admin an immediate lockout even though issued tokens cannot be revoked.
func RequireAdmin(ts utils.TokenService, admins AdminLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			subject, err := ts.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
			}

			admin, err := admins.GetByID(c.Request().Context(), subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "admin not found"})
			}

			c.Set(AdminKey, admin)
			return next(c)
		}
	}
}
