package field

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Reader loads named scalar fields from a heterogeneous data file. A field
// file is a top-level mapping from field name to a numeric array, either
// flat (decoded as an n×1 Field) or 2D rectangular (rows become the x
// axis). The format is sniffed at open time: JSON is tried first, then
// YAML. Entries are decoded lazily — only when a field is requested — so a
// file may carry non-numeric metadata alongside its fields.
type Reader struct {
	path string
	raw  map[string]any
}

// Open reads and parses the field file at path.
// Returns ErrUnknownFormat if the content is neither a JSON nor a YAML
// mapping; I/O errors are wrapped with the path.
func Open(path string) (*Reader, error) {
	r := &Reader{}
	if err := r.Reload(path); err != nil {
		return nil, err
	}

	return r, nil
}

// Reload re-reads the reader's contents from a new path, replacing any
// previously loaded fields.
func (r *Reader) Reload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("field: reading %s: %w", path, err)
	}
	raw := make(map[string]any)
	if jsonErr := json.Unmarshal(data, &raw); jsonErr != nil {
		raw = make(map[string]any)
		if yamlErr := yaml.Unmarshal(data, &raw); yamlErr != nil {
			return fmt.Errorf("field: %s: %w", path, ErrUnknownFormat)
		}
	}
	r.path = path
	r.raw = raw

	return nil
}

// Fields lists the names of all top-level entries in the file, sorted.
// Entries are not guaranteed to decode as fields until read.
func (r *Reader) Fields() []string {
	names := make([]string, 0, len(r.raw))
	for name := range r.raw {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ReadField decodes the named entry into a Field.
// Returns ErrFieldNotFound for unknown names, ErrNotNumeric for entries
// that are not numeric arrays, ErrRagged for non-rectangular 2D arrays,
// and ErrEmptyField for arrays with no values.
func (r *Reader) ReadField(name string) (*Field, error) {
	raw, ok := r.raw[name]
	if !ok {
		return nil, fmt.Errorf("field: %q: %w", name, ErrFieldNotFound)
	}
	f, err := coerceField(raw)
	if err != nil {
		return nil, fmt.Errorf("field: %q: %w", name, err)
	}

	return f, nil
}

// coerceField converts a decoded JSON/YAML value into a Field. Flat arrays
// become n×1 fields; arrays of arrays become rectangular 2D fields.
func coerceField(raw any) (*Field, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, ErrNotNumeric
	}
	if len(arr) == 0 {
		return nil, ErrEmptyField
	}
	if _, nested := arr[0].([]any); !nested {
		// Flat 1D array: one value per row.
		data := make([]float64, len(arr))
		for i, v := range arr {
			x, err := coerceNumber(v)
			if err != nil {
				return nil, err
			}
			data[i] = x
		}

		return &Field{Data: data, Nx: len(data), Ny: 1}, nil
	}
	// 2D array: rows must be rectangular.
	rows := len(arr)
	first, ok := arr[0].([]any)
	if !ok {
		return nil, ErrNotNumeric
	}
	cols := len(first)
	if cols == 0 {
		return nil, ErrEmptyField
	}
	data := make([]float64, 0, rows*cols)
	for _, rawRow := range arr {
		row, ok := rawRow.([]any)
		if !ok {
			return nil, ErrNotNumeric
		}
		if len(row) != cols {
			return nil, ErrRagged
		}
		for _, v := range row {
			x, err := coerceNumber(v)
			if err != nil {
				return nil, err
			}
			data = append(data, x)
		}
	}

	return &Field{Data: data, Nx: rows, Ny: cols}, nil
}

// coerceNumber accepts the numeric types produced by the JSON and YAML
// decoders.
func coerceNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, ErrNotNumeric
	}
}
