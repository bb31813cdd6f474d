package inventory

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	app := fiber.New()
	handler := NewHandler(NewService(gormDB, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app, mock
}

func TestHandleGetBalance(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"id", "name", "barcode", "stock_quantity"}).
		AddRow(1, "Rice 1kg", "789100001", 37)
	sqlMock.ExpectQuery("SELECT \\* FROM `products`").WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/inventory/1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(37), body["stock_quantity"])
	assert.Equal(t, "Rice 1kg", body["name"])
}

func TestHandleGetBalance_NotFound(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT \\* FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/inventory/999", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleGetBalance_InvalidID(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/inventory/abc", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
