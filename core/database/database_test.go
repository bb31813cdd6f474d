package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

	return gormDB, mock
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("Barcode", "VARCHAR(64)", "YES", "UNI", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `products`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "products")
	require.NoError(t, err)
	require.Len(t, columns, 2)

	// Field and type are normalized to lowercase
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int(11)", columns[0].Type)
	assert.Equal(t, "barcode", columns[1].Field)
}

func TestHasColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int", "NO", "PRI", nil, "").
		AddRow("stock_quantity", "int", "NO", "", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `products`").WillReturnRows(rows)

	ok, err := HasColumn(db, "products", "STOCK_QUANTITY")
	require.NoError(t, err)
	assert.True(t, ok)
}
