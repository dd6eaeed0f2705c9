package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/elite-admin/internal/auth"
	"github.com/BruksfildServices01/elite-admin/internal/db"
	"github.com/BruksfildServices01/elite-admin/internal/models"
	"github.com/BruksfildServices01/elite-admin/internal/testutil"
)

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewTestDB(t)

	require.NoError(t, db.SeedAdmin(ctx, gdb, "admin", "s3cret"))

	var emp models.Employee
	require.NoError(t, gdb.Where(map[string]any{"user": "admin"}).First(&emp).Error)
	assert.NoError(t, auth.ComparePassword(emp.Password, "s3cret"))

	// second run is a no-op
	require.NoError(t, db.SeedAdmin(ctx, gdb, "other", "pw"))

	var count int64
	require.NoError(t, gdb.Model(&models.Employee{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdmin_NoPassword(t *testing.T) {
	gdb := testutil.NewTestDB(t)

	require.NoError(t, db.SeedAdmin(context.Background(), gdb, "admin", ""))

	var count int64
	require.NoError(t, gdb.Model(&models.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	assert.NoError(t, db.Migrate(gdb))
}
