package dataset

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/wumming/graph-pde/field"
)

// ErrNotFound indicates a field name absent from the store.
var ErrNotFound = errors.New("dataset: field not found")

// Store is a SQLite-backed archive of named coefficient fields.
type Store struct {
	db *sql.DB
}

// Info describes one stored field.
type Info struct {
	ID     string
	Name   string
	Nx, Ny int
}

// Open opens (or creates) the store at path and ensures its schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	// SQLite does not support concurrent writers.
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS fields (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			nx   INTEGER NOT NULL,
			ny   INTEGER NOT NULL,
			data BLOB NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a field under name, replacing any previous field with the
// same name, and returns the record id.
func (s *Store) Put(name string, f *field.Field) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(`
		INSERT INTO fields (id, name, nx, ny, data) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET id=excluded.id, nx=excluded.nx,
			ny=excluded.ny, data=excluded.data`,
		id, name, f.Nx, f.Ny, encodeBlob(f.Data))
	if err != nil {
		return "", fmt.Errorf("dataset: storing %q: %w", name, err)
	}

	return id, nil
}

// Get loads the field stored under name.
// Returns ErrNotFound for unknown names.
func (s *Store) Get(name string) (*field.Field, error) {
	var (
		nx, ny int
		blob   []byte
	)
	err := s.db.QueryRow(`SELECT nx, ny, data FROM fields WHERE name = ?`, name).
		Scan(&nx, &ny, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dataset: %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: loading %q: %w", name, err)
	}

	return field.New(decodeBlob(blob), nx, ny)
}

// List enumerates stored fields, sorted by name.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(`SELECT id, name, nx, ny FROM fields ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("dataset: listing fields: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.ID, &info.Name, &info.Nx, &info.Ny); err != nil {
			return nil, fmt.Errorf("dataset: scanning field row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: listing fields: %w", err)
	}

	return infos, nil
}

// encodeBlob packs float64 values little-endian.
func encodeBlob(data []float64) []byte {
	buf := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}

	return buf
}

// decodeBlob unpacks a little-endian float64 blob.
func decodeBlob(buf []byte) []float64 {
	data := make([]float64, len(buf)/8)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return data
}
