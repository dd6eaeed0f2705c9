package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/elite-admin/internal/db"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

// NewTestDB opens a private in-memory SQLite database with foreign keys on
// and the application schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func SeedClient(t *testing.T, gdb *gorm.DB, name string) models.Client {
	t.Helper()

	c := models.Client{
		Name:           name,
		Address:        "123 St",
		Phone:          "555",
		Email:          "a@b.com",
		Classification: models.ClassificationGreen,
	}
	require.NoError(t, gdb.Create(&c).Error)
	return c
}

func SeedScheduledJob(t *testing.T, gdb *gorm.DB, clientID uint, service string, date time.Time) models.ScheduledJob {
	t.Helper()

	j := models.ScheduledJob{Service: service, Date: date, ClientID: clientID}
	require.NoError(t, gdb.Omit("Client").Create(&j).Error)
	return j
}
