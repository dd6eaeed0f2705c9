package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-admin/internal/domain/resource"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/models"
	"github.com/BruksfildServices01/elite-admin/internal/testutil"
)

func TestCrud_CreateListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCrudGormRepository[models.Supply](testutil.NewTestDB(t), resource.Supplies)

	created, err := repo.Create(ctx, &models.Supply{Description: "Cera", Quantity: 3})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cera", rows[0].Description)

	updated, err := repo.Update(ctx, created.ID, &models.Supply{Quantity: 42}, []string{"quantity"})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Quantity)
	assert.Equal(t, "Cera", updated.Description)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	rows, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCrud_UpdateWritesZeroValues(t *testing.T) {
	ctx := context.Background()
	repo := NewCrudGormRepository[models.Machinery](testutil.NewTestDB(t), resource.Machinery)

	m, err := repo.Create(ctx, &models.Machinery{Category: "Pulidora", Description: "Rotativa", Brand: "Makita", Quantity: 2})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, m.ID, &models.Machinery{}, []string{"quantity"})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, "Makita", updated.Brand)
}

func TestCrud_UpdateWithoutColumnsReturnsRow(t *testing.T) {
	ctx := context.Background()
	repo := NewCrudGormRepository[models.Supply](testutil.NewTestDB(t), resource.Supplies)

	s, err := repo.Create(ctx, &models.Supply{Description: "Cera", Quantity: 3})
	require.NoError(t, err)

	got, err := repo.Update(ctx, s.ID, &models.Supply{Quantity: 99}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestCrud_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewCrudGormRepository[models.Employee](testutil.NewTestDB(t), resource.Employees)

	_, err := repo.Update(ctx, 999, &models.Employee{Name: "x"}, []string{"name"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.Delete(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCrud_JobWithUnknownClientFails(t *testing.T) {
	ctx := context.Background()
	repo := NewCrudGormRepository[models.ScheduledJob](testutil.NewTestDB(t), resource.ScheduledJobs)

	_, err := repo.Create(ctx, &models.ScheduledJob{Service: "Pulido", Date: time.Now(), ClientID: 12345})
	assert.Error(t, err)
}

func TestCrud_JobEmbedsClient(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewTestDB(t)
	client := testutil.SeedClient(t, gdb, "Acme")
	repo := NewCrudGormRepository[models.ScheduledJob](gdb, resource.ScheduledJobs)

	created, err := repo.Create(ctx, &models.ScheduledJob{Service: "Pulido", Date: time.Now().UTC(), ClientID: client.ID})
	require.NoError(t, err)
	require.NotNil(t, created.Client)
	assert.Equal(t, "Acme", created.Client.Name)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Client)
	assert.Equal(t, client.ID, rows[0].Client.ID)
}

func TestCrud_DeleteReferencedClient(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewTestDB(t)
	client := testutil.SeedClient(t, gdb, "Acme")
	testutil.SeedScheduledJob(t, gdb, client.ID, "Pulido", time.Now().UTC())

	repo := NewCrudGormRepository[models.Client](gdb, resource.Clients).
		WithInUseCode(httperr.CodeClientInUse)

	_, err := repo.Delete(ctx, client.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeClientInUse))

	still, err := repo.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", still.Name)
}

func TestCrud_ClassificationCheck(t *testing.T) {
	ctx := context.Background()
	repo := NewCrudGormRepository[models.Client](testutil.NewTestDB(t), resource.Clients)

	_, err := repo.Create(ctx, &models.Client{Name: "X", Address: "Y", Phone: "1", Email: "e", Classification: "azul"})
	assert.Error(t, err)
}

func TestCrud_Search(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewTestDB(t)
	testutil.SeedClient(t, gdb, "Acme Corp")
	testutil.SeedClient(t, gdb, "Globex")

	repo := NewCrudGormRepository[models.Client](gdb, resource.Clients)

	rows, err := repo.Search(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Corp", rows[0].Name)

	rows, err = repo.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.Search(ctx, "initech")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCrud_SearchReservedColumn(t *testing.T) {
	ctx := context.Background()
	repo := NewCrudGormRepository[models.Employee](testutil.NewTestDB(t), resource.Employees)

	_, err := repo.Create(ctx, &models.Employee{User: "ana", Password: "x", Name: "Ana", Role: "admin"})
	require.NoError(t, err)

	rows, err := repo.Search(ctx, "AN")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
