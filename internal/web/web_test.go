package web

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"base", "login", "table", "calendar", "quote"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "base", map[string]any{
		"Page":  "login",
		"Error": "No existe usuario",
	}))
	assert.Contains(t, buf.String(), "No existe usuario")
}

type testColumn struct {
	Key, Label, Display, Input string
}

func renderTable(t *testing.T, rows []map[string]any, clients any) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "base", map[string]any{
		"Page":  "table",
		"Title": "Trabajos realizados",
		"API":   "/api/worked-jobs",
		"Columns": []testColumn{
			{Key: "id", Label: "ID", Display: "id"},
			{Key: "service", Label: "Servicio", Display: "service", Input: "text"},
			{Key: "date", Label: "Fecha", Display: "date", Input: "datetime-local"},
			{Key: "clientId", Label: "Cliente", Display: "client.name", Input: "client"},
			{Key: "password", Label: "Clave", Input: "password"},
		},
		"Rows":    rows,
		"Clients": clients,
	}))
	return buf.String()
}

func TestTable_EditFormPerRow(t *testing.T) {
	html := renderTable(t, []map[string]any{{
		"id":       float64(7),
		"service":  "Pulido",
		"date":     "2024-05-10T15:00:00Z",
		"clientId": float64(3),
		"client":   map[string]any{"id": float64(3), "name": "Acme"},
	}}, []struct {
		ID   uint
		Name string
	}{{ID: 3, Name: "Acme"}})

	assert.Contains(t, html, `data-method="PATCH" data-id="7"`)
	assert.Contains(t, html, `id="edit-7"`)
	assert.Contains(t, html, `value="Pulido"`)
	assert.Contains(t, html, `data-iso="2024-05-10T15:00:00Z"`)
	assert.Contains(t, html, `list="client-options" placeholder="Cliente" value="Acme"`)
	assert.Contains(t, html, `placeholder="Nueva contraseña"`)
	assert.Contains(t, html, `<option value="Acme" data-id="3">`)
}

func TestTable_CreateFormRequiresDateAndClient(t *testing.T) {
	html := renderTable(t, nil, nil)

	assert.Contains(t, html, `type="datetime-local" data-iso="" required`)
	assert.Contains(t, html, `list="client-options" placeholder="Cliente" value="" required`)
	assert.NotContains(t, html, "<datalist")
}

func TestTable_EmptyRowSpansActionColumn(t *testing.T) {
	html := renderTable(t, nil, nil)

	assert.Contains(t, html, `<td colspan="6">Sin registros</td>`)
}

func TestDict(t *testing.T) {
	m, err := Dict("a", 1, "b", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": nil}, m)

	_, err = Dict("a")
	assert.Error(t, err)
	_, err = Dict(1, 2)
	assert.Error(t, err)
}

func TestField(t *testing.T) {
	row := map[string]any{
		"id":     float64(3),
		"client": map[string]any{"name": "Acme"},
	}

	assert.Equal(t, "Acme", Field(row, "client.name"))
	assert.Nil(t, Field(row, "client.phone"))
	assert.Nil(t, Field(row, "id.value"))
	assert.Nil(t, Field(nil, "client.name"))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "", Display(nil))
	assert.Equal(t, "3", Display(float64(3)))
	assert.Equal(t, "1.5", Display(1.5))
	assert.Equal(t, "2024-05-10 15:00", Display("2024-05-10T15:00:00Z"))
	assert.Equal(t, "verde", Display("verde"))
	assert.Equal(t, "true", Display(true))
}

func TestStatic(t *testing.T) {
	_, err := fs.Stat(Static(), "app.css")
	assert.NoError(t, err)
}
