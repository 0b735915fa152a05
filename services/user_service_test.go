package services

import (
	"path/filepath"
	"testing"

	"goblog/config"
	"goblog/database"
	"goblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}
	db := database.Connect(cfg)
	database.Migrate(db)
	return db
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser(&models.RegisterForm{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1234",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "pw1234", user.Password)
	assert.True(t, user.CheckPassword("pw1234"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser(&models.RegisterForm{Username: "alice", Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)

	_, err = svc.CreateUser(&models.RegisterForm{Username: "alice", Email: "b@x.com", Password: "pw1234"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser(&models.RegisterForm{Username: "alice", Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)

	_, err = svc.CreateUser(&models.RegisterForm{Username: "bob", Email: "a@x.com", Password: "pw1234"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUserByEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.CreateUser(&models.RegisterForm{Username: "alice", Email: "a@x.com", Password: "pw1234"})
	require.NoError(t, err)

	user, err := svc.GetUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.GetUserByEmail("nobody@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
