package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/elite-admin/internal/domain/resource"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

func TestParsePatch_OnlyPresentKnownKeys(t *testing.T) {
	p, err := ParsePatch[models.Supply](resource.Supplies, []byte(`{"id":7,"quantity":42,"bogus":true,"createdAt":"x"}`))
	require.NoError(t, err)

	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, []string{"quantity"}, p.Columns)
	assert.Equal(t, 42, p.Row.Quantity)
	assert.Zero(t, p.Row.ID)
}

func TestParsePatch_ZeroValueIsWritten(t *testing.T) {
	p, err := ParsePatch[models.Machinery](resource.Machinery, []byte(`{"id":3,"quantity":0}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"quantity"}, p.Columns)
	assert.Equal(t, 0, p.Row.Quantity)
}

func TestParsePatch_JobKeysMapToColumns(t *testing.T) {
	body := `{"id":1,"clientId":4,"client":{"id":99},"date":"2024-05-10T15:00:00Z"}`
	p, err := ParsePatch[models.ScheduledJob](resource.ScheduledJobs, []byte(body))
	require.NoError(t, err)

	assert.Equal(t, []string{"client_id", "date"}, p.Columns)
	assert.Equal(t, uint(4), p.Row.ClientID)
	assert.Nil(t, p.Row.Client)
	assert.Equal(t, 2024, p.Row.Date.Year())
}

func TestParsePatch_MissingID(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"quantity":1}`,
		`{"id":0}`,
		`{"id":null}`,
		`{"id":"7"}`,
		`{"id":-1}`,
		`{"id":1.5}`,
	} {
		_, err := ParsePatch[models.Supply](resource.Supplies, []byte(body))
		assert.ErrorIs(t, err, httperr.ErrMissingID, body)
	}
}

func TestParsePatch_MalformedBody(t *testing.T) {
	_, err := ParsePatch[models.Supply](resource.Supplies, []byte(`{"id":`))
	assert.True(t, httperr.IsInvalidBody(err))

	_, err = ParsePatch[models.Supply](resource.Supplies, []byte(`{"id":1,"quantity":"many"}`))
	assert.True(t, httperr.IsInvalidBody(err))
}

func TestParseCreate_DropsReadOnlyKeys(t *testing.T) {
	body := `{"id":55,"name":"Acme","address":"123 St","phone":"555","email":"a@b.com","classification":"verde","createdAt":"2020-01-01T00:00:00Z"}`
	c, err := ParseCreate[models.Client](resource.Clients, []byte(body))
	require.NoError(t, err)

	assert.Zero(t, c.ID)
	assert.True(t, c.CreatedAt.IsZero())
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "verde", c.Classification)
	assert.Nil(t, c.Notes)
}

func TestParseID(t *testing.T) {
	id, err := ParseID([]byte(`{"id":999}`))
	require.NoError(t, err)
	assert.Equal(t, uint(999), id)

	_, err = ParseID([]byte(`{}`))
	assert.ErrorIs(t, err, httperr.ErrMissingID)

	_, err = ParseID([]byte(`nope`))
	assert.True(t, httperr.IsInvalidBody(err))
}
