package database

import (
	"path/filepath"
	"testing"

	"goblog/config"
	"goblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectAndMigrateSqlite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}

	db := Connect(cfg)
	Migrate(db)

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Post{}))

	user := &models.User{Username: "alice", Email: "a@x.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	assert.NotZero(t, user.ID)
}

func TestMigrateTranslatesDuplicateKey(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}

	db := Connect(cfg)
	Migrate(db)

	require.NoError(t, db.Create(&models.User{Username: "alice", Email: "a@x.com", Password: "hash"}).Error)
	err := db.Create(&models.User{Username: "alice", Email: "b@x.com", Password: "hash"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
