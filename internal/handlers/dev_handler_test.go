package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fioapi/internal/database"
	"fioapi/internal/repositories"
	"fioapi/internal/services"
)

func TestDevHandler_GenerateTestData(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := repositories.NewLedgerRepository(db.DB)
	handler := NewDevHandler(services.NewLedgerSeeder(repo, services.NewLedgerGenerator(5), nil))
	handler.now = func() time.Time { return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC) }

	e := echo.New()
	handler.RegisterRoutes(e.Group("/dev"))

	token := strings.Repeat("d", 64)
	req := httptest.NewRequest(http.MethodPost, "/dev/accounts/"+token+"/movements?count=25&days=10", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(25), resp["movements_created"])
	assert.Equal(t, true, resp["account_created"])
	assert.Equal(t, map[string]any{"start": "2024-06-05", "end": "2024-06-14"}, resp["date_range"])

	entries, err := repo.GetAfterID(token, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 25)

	// Second call reuses the account
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dev/accounts/"+token+"/movements?count=abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(100), resp["movements_created"])
	assert.Equal(t, false, resp["account_created"])
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, clamp(-5, 1, 10))
	assert.Equal(t, 10, clamp(50, 1, 10))
	assert.Equal(t, 7, clamp(7, 1, 10))
}
