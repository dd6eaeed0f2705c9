package crud

import (
	"encoding/json"

	"github.com/BruksfildServices01/elite-admin/internal/domain/resource"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
)

// Patch is a decoded partial update: Row holds the new values and Columns
// lists the only store columns that may be written.
type Patch[T any] struct {
	ID      uint
	Row     *T
	Keys    []string
	Columns []string
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, httperr.InvalidBodyError{Err: err}
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	return raw, nil
}

func decodeID(raw map[string]json.RawMessage) (uint, error) {
	v, ok := raw["id"]
	if !ok {
		return 0, httperr.ErrMissingID
	}
	var id uint
	if err := json.Unmarshal(v, &id); err != nil || id == 0 {
		return 0, httperr.ErrMissingID
	}
	return id, nil
}

// writable keeps only keys the table allows to be written.
func writable(table resource.Table, raw map[string]json.RawMessage) (map[string]json.RawMessage, []string) {
	out := make(map[string]json.RawMessage, len(raw))
	keys := make([]string, 0, len(raw))
	for k, v := range raw {
		if table.Writable(k) {
			out[k] = v
			keys = append(keys, k)
		}
	}
	return out, keys
}

func decodeRow[T any](fields map[string]json.RawMessage) (*T, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, httperr.InvalidBodyError{Err: err}
	}
	row := new(T)
	if err := json.Unmarshal(b, row); err != nil {
		return nil, httperr.InvalidBodyError{Err: err}
	}
	return row, nil
}

// ParseCreate decodes a create body, discarding the id and other read-only keys.
func ParseCreate[T any](table resource.Table, body []byte) (*T, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	fields, _ := writable(table, raw)
	return decodeRow[T](fields)
}

func ParsePatch[T any](table resource.Table, body []byte) (Patch[T], error) {
	raw, err := decodeObject(body)
	if err != nil {
		return Patch[T]{}, err
	}

	id, err := decodeID(raw)
	if err != nil {
		return Patch[T]{}, err
	}

	fields, keys := writable(table, raw)
	row, err := decodeRow[T](fields)
	if err != nil {
		return Patch[T]{}, err
	}

	return Patch[T]{
		ID:      id,
		Row:     row,
		Keys:    keys,
		Columns: table.ColumnsFor(keys),
	}, nil
}

// ParseID reads the id of a delete or finish body.
func ParseID(body []byte) (uint, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return 0, err
	}
	return decodeID(raw)
}
