package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"travel-backend/config"
	"travel-backend/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := config.ConnectDatabase(&config.AppConfig{
		DBDriver:   "sqlite",
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, admin bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		IsAdmin:  admin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func newTestAuthService(db *gorm.DB) *AuthService {
	svc := NewAuthService(db, "test-secret", time.Hour)
	svc.HashCost = bcrypt.MinCost
	return svc
}
