package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freshalert/freshalert-backend/entities"
	"github.com/freshalert/freshalert-backend/internal/utils"
	"github.com/freshalert/freshalert-backend/pkg/inventory"
	"github.com/freshalert/freshalert-backend/pkg/product"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, uuid.UUID) {
	utils.InitValidator()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Product{},
		&entities.InventoryItem{},
	))

	user := entities.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "secret",
	}
	require.NoError(t, db.Create(&user).Error)

	clock := func() time.Time {
		return time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	}
	service := inventory.NewInventoryService(
		inventory.NewInventoryRepository(db),
		product.NewProductRepository(db),
		clock,
	)
	handler := NewInventoryHandler(service, utils.Validate)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", user.ID.String())
		return c.Next()
	})

	routes := app.Group("/api/v1/inventory")
	routes.Post("/scan", handler.ScanItem)
	routes.Get("/dashboard", handler.GetDashboardStats)
	routes.Get("/:id", handler.GetItemDetails)

	return app, user.ID
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (int, map[string]any) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))
	return res.StatusCode, decoded
}

func TestScanItemEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/inventory/scan", fiber.Map{
		"qr_code":     "ABC12345XYZ",
		"expiry_date": "2026-02-01",
		"location":    "Fridge",
	})

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["status"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "fresh", data["status"])
	assert.Equal(t, "Fridge", data["location"])

	productData := data["product"].(map[string]any)
	assert.Equal(t, "Product ABC12345", productData["name"])

	// The created item is retrievable by ID.
	status, body = doJSON(t, app, fiber.MethodGet, "/api/v1/inventory/"+data["id"].(string), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ABC12345XYZ", body["data"].(map[string]any)["product"].(map[string]any)["qr_code"])
}

func TestScanItemEndpointRejectsPastDate(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/inventory/scan", fiber.Map{
		"qr_code":     "OLDFOOD1",
		"expiry_date": "2026-01-09",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["status"])
}

func TestScanItemEndpointRequiresFields(t *testing.T) {
	app, _ := setupTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/inventory/scan", fiber.Map{
		"qr_code": "NODATE01",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDashboardEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, scan := range []fiber.Map{
		{"qr_code": "FRESH001", "expiry_date": "2026-02-01"},
		{"qr_code": "SOON0001", "expiry_date": "2026-01-12"},
	} {
		status, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/inventory/scan", scan)
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, body := doJSON(t, app, fiber.MethodGet, "/api/v1/inventory/dashboard", nil)
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total_items"])
	assert.Equal(t, float64(1), data["expiring_soon"])
	assert.Equal(t, float64(1), data["fresh_items"])
	assert.Equal(t, float64(0), data["expired"])
}

func TestItemDetailsUnknownID(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/v1/inventory/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["status"])
}
