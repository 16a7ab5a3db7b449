package database

import (
	"context"
	"testing"

	"impact-log/internal/auth"
	"impact-log/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	db := setupTestDB(t)
	hasher := auth.NewHasher(bcrypt.MinCost)
	ctx := context.Background()

	created, err := EnsureAdmin(ctx, db, hasher, "admin@test.com", "123456", "Admin User")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdmin(ctx, db, hasher, "admin@test.com", "other-pass", "Admin User")
	require.NoError(t, err)
	assert.False(t, created)

	var admin models.Account
	require.NoError(t, db.Where("email = ?", "admin@test.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEqual(t, uuid.Nil, admin.ID)
	assert.True(t, hasher.Verify("123456", admin.PasswordHash))
}

func TestEnsureAdmin_RequiresCredentials(t *testing.T) {
	db := setupTestDB(t)

	_, err := EnsureAdmin(context.Background(), db, auth.NewHasher(bcrypt.MinCost), " ", "", "")
	assert.Error(t, err)
}

func TestMigrate_EnforcesConstraints(t *testing.T) {
	db := setupTestDB(t)

	acc := models.Account{Email: "a@x.com", Name: "A", PasswordHash: "h"}
	require.NoError(t, db.Create(&acc).Error)
	assert.Equal(t, models.RoleUser, acc.Role)

	dup := models.Account{Email: "a@x.com", Name: "B", PasswordHash: "h"}
	assert.Error(t, db.Create(&dup).Error)

	bad := models.Account{Email: "b@x.com", Name: "B", PasswordHash: "h", Role: "root"}
	assert.Error(t, db.Create(&bad).Error)

	orphan := models.ImpactLog{AccountID: uuid.New(), Name: "n", Locality: "l", Category: models.CategoryRoad, Description: "d"}
	assert.Error(t, db.Create(&orphan).Error)

	badStatus := models.ImpactLog{AccountID: acc.ID, Name: "n", Locality: "l", Category: models.CategoryRoad, Description: "d", Status: "Lost"}
	assert.Error(t, db.Create(&badStatus).Error)
}
