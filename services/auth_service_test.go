package services

import (
	"testing"
	"time"

	"travel-backend/models"
	"travel-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupFirstAccountIsAdmin(t *testing.T) {
	svc := newTestAuthService(newTestDB(t))

	first, err := svc.Signup(models.SignupRequest{Username: "asha", Email: "Asha@Example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, first.IsAdmin)
	assert.Equal(t, "asha@example.com", first.Email)

	claims, err := utils.ParseToken(first.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, first.ID, claims.UserID)

	second, err := svc.Signup(models.SignupRequest{Username: "ravi", Email: "ravi@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.False(t, second.IsAdmin)
}

func TestSignupDuplicates(t *testing.T) {
	svc := newTestAuthService(newTestDB(t))

	_, err := svc.Signup(models.SignupRequest{Username: "asha", Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Signup(models.SignupRequest{Username: "other", Email: "ASHA@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Signup(models.SignupRequest{Username: "asha", Email: "new@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestDuplicateAccountErrorNamesColumn(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)
	createUser(t, db, "asha", false)

	assert.ErrorIs(t, svc.duplicateAccountError("asha@example.com"), ErrEmailTaken)
	assert.ErrorIs(t, svc.duplicateAccountError("free@example.com"), ErrUsernameTaken)
}

func TestLoginTouchesActivity(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)

	created, err := svc.Signup(models.SignupRequest{Username: "asha", Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)

	later := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	svc.Now = func() time.Time { return later }

	resp, err := svc.Login(models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	var user models.User
	require.NoError(t, db.First(&user, created.ID).Error)
	assert.WithinDuration(t, later, user.UpdatedAt, time.Second)

	_, err = svc.Login(models.LoginRequest{Email: "asha@example.com", Password: "wrongpass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPassword(t *testing.T) {
	svc := newTestAuthService(newTestDB(t))

	_, err := svc.Signup(models.SignupRequest{Username: "asha", Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)

	err = svc.ResetPassword(models.ResetPasswordRequest{Email: "missing@example.com", NewPassword: "newpass99"})
	assert.ErrorIs(t, err, ErrEmailNotFound)

	require.NoError(t, svc.ResetPassword(models.ResetPasswordRequest{Email: "asha@example.com", NewPassword: "newpass99"}))

	_, err = svc.Login(models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(models.LoginRequest{Email: "asha@example.com", Password: "newpass99"})
	assert.NoError(t, err)
}

func TestUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(db)
	user := createUser(t, db, "asha", false)

	got, err := svc.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha", got.Username)

	_, err = svc.UserByID(user.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)
}
