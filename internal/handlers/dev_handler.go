package handlers

import (
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"

	apierrors "fioapi/internal/errors"
	"fioapi/internal/services"
)

// DevHandler handles development-only endpoints of the mock bank
type DevHandler struct {
	seeder *services.LedgerSeeder
	now    func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder *services.LedgerSeeder) *DevHandler {
	return &DevHandler{
		seeder: seeder,
		now:    time.Now,
	}
}

// RegisterRoutes mounts the development endpoints on g
func (h *DevHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/accounts/:token/movements", h.GenerateTestData)
}

// GenerateTestData books generated movements for a token, creating the
// account first when it does not exist
//
// Method: POST /dev/accounts/:token/movements
//
// Query parameters:
//   - count: Number of movements to generate (default: 100, max: 10000)
//   - days: Number of days of history ending yesterday (default: 30, max: 3650)
//
// Success Response: 200 OK with the number of movements created
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	token := c.Param("token")
	if len(token) == 0 {
		return SendError(c, apierrors.APIInvalidRequest)
	}

	count := clamp(getIntQueryParam(c, "count", 100), 1, 10000)
	days := clamp(getIntQueryParam(c, "days", 30), 1, 3650)

	account, created, err := h.seeder.EnsureAccount(token)
	if err != nil {
		return SendSystemError(c, err)
	}

	today := civil.DateOf(h.now().UTC())
	start := today.AddDays(-days)
	end := today.AddDays(-1)

	n, err := h.seeder.AddMovements(token, start, end, count)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":           "test data generated successfully",
		"movements_created": n,
		"account_created":   created,
		"account_id":        account.AccountID,
		"date_range": map[string]string{
			"start": start.String(),
			"end":   end.String(),
		},
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
