// Package store persists fixed-schema tables as CSV files.
//
// Every operation works on the whole file: Load reads it fully into memory and
// Append rewrites it from the in-memory table. Rewrites go through a temporary
// file in the same directory and a rename, so a reader sees either the old or
// the new content and never a truncated file.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Row is one table record, cells in schema order. A "\r\n" inside a cell
// reads back as "\n"; encoding/csv normalizes line breaks in quoted fields.
type Row []string

// Table is the in-memory content of a table file.
type Table struct {
	Schema Schema
	Rows   []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Store is the owning handle of one table file.
type Store struct {
	path   string
	schema Schema
}

// New creates a Store for the table at path.
func New(path string, schema Schema) *Store {
	return &Store{path: path, schema: schema}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Schema returns the table's column set.
func (s *Store) Schema() Schema {
	return s.schema
}

// Ensure creates the table file with only a header row if it does not exist.
// An existing file is left as is.
func (s *Store) Ensure() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("creating table dir: %w", err)}
	}
	return s.save(&Table{Schema: s.schema})
}

// Load reads the whole table. A missing file loads as an empty table.
func (s *Store) Load() (*Table, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Table{Schema: s.schema}, nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	defer f.Close()

	rows, err := ReadRows(f, s.schema)
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	return &Table{Schema: s.schema, Rows: rows}, nil
}

// Append loads the table, adds row as the last record and rewrites the file.
func (s *Store) Append(row Row) error {
	if err := s.schema.CheckRow(row); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("new row: %w", err)}
	}

	t, err := s.Load()
	if err != nil {
		return err
	}
	t.Rows = append(t.Rows, row)
	return s.save(t)
}

// save replaces the table file with t via a temp file and rename. The file
// keeps its current permissions; a new file gets 0644 less the umask.
func (s *Store) save(t *Table) error {
	perm := fs.FileMode(0o644)
	info, err := os.Stat(s.path)
	exists := err == nil
	if exists {
		perm = info.Mode().Perm()
	}

	tmpPath := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp-"+uuid.NewString())
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("creating temp file: %w", err)}
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := WriteRows(tmp, t.Schema, t.Rows); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("syncing temp file: %w", err)}
	}
	// The umask applied at create time; an existing file keeps its exact mode.
	if exists {
		if err := tmp.Chmod(perm); err != nil {
			return &WriteError{Path: s.path, Err: fmt.Errorf("chmod temp file: %w", err)}
		}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("closing temp file: %w", err)}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("replacing table file: %w", err)}
	}
	committed = true
	return nil
}

// ReadRows reads a CSV table (header included) and checks it against schema.
func ReadRows(r io.Reader, schema Schema) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(schema)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}
	if err := schema.CheckHeader(records[0]); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	var rows []Row
	for i, rec := range records[1:] {
		row := Row(rec)
		if err := schema.CheckRow(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes a CSV table including the header row.
func WriteRows(w io.Writer, schema Schema, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(schema.Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
