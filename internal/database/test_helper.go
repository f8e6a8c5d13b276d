package database

import (
	"fmt"
	"testing"

	"roundup-savings/internal/config"
	"roundup-savings/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cleanupTables is ordered children first.
var cleanupTables = []string{
	"roundup_records",
	"linked_accounts",
	"linked_items",
	"user_preferences",
	"users",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every pooled connection to ":memory:" is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		Username:     fmt.Sprintf("user_%d", gofakeit.Number(100000, 999999)),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestLinkedItem(t *testing.T, db *DB, user *models.User, itemID string) *models.LinkedItem {
	t.Helper()

	item := &models.LinkedItem{
		UserID:          user.ID,
		AccessToken:     "access-sandbox-" + itemID,
		ItemID:          itemID,
		InstitutionID:   "ins_109508",
		InstitutionName: gofakeit.Company(),
		Status:          models.LinkedItemStatusActive,
	}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test linked item: %v", err)
	}

	return item
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
