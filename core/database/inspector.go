package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	// Normalize for case-insensitive comparison
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingTables returns the subset of required tables that do not exist in the
// connected schema. Used at startup to warn when the receiving tables have not
// been provisioned by the upstream back-office migration.
func MissingTables(db *gorm.DB, required []string) ([]string, error) {
	var missing []string
	for _, table := range required {
		if !db.Migrator().HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing, nil
}

// HasColumn reports whether a table contains the given column.
func HasColumn(db *gorm.DB, tableName, column string) (bool, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return false, err
	}
	column = strings.ToLower(column)
	for _, col := range columns {
		if col.Field == column {
			return true, nil
		}
	}
	return false, nil
}
