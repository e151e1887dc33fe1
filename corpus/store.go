package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/scoutbase/founderrag/core"
)

// DefaultPaths is the ordered list of candidate dataset locations tried by Load.
// The first path that exists and parses successfully wins.
var DefaultPaths = []string{
	"../data/founders_dataset.csv",
	"data/founders_dataset.csv",
	"./data/founders_dataset.csv",
}

// Store holds the loaded founder corpus. Records are immutable after Load:
// the row order is fixed, ids are unique, and the store may be shared across
// concurrent readers without locking.
type Store struct {
	paths   []string
	records []*core.Record
	byID    map[string]int // id -> row index
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithPaths overrides the candidate dataset paths tried by Load.
func WithPaths(paths ...string) Option {
	return func(s *Store) {
		if len(paths) > 0 {
			s.paths = paths
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewStore creates an empty corpus store. Call Load to populate it.
func NewStore(opts ...Option) *Store {
	s := &Store{
		paths:  DefaultPaths,
		logger: slog.Default().With("component", "corpus"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load tries each candidate path in order and loads the first dataset that
// exists and parses. It reports success rather than returning the underlying
// I/O error; failures are logged. A false return leaves the store empty.
func (s *Store) Load() bool {
	for _, path := range s.paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := s.loadFile(path); err != nil {
			s.logger.Error("error parsing dataset", "path", path, "err", err)
			return false
		}

		s.logger.Info("loaded founder records", "count", len(s.records), "path", path)
		return true
	}

	s.logger.Error("could not find founder dataset in any expected location", "paths", s.paths)
	return false
}

// Loaded reports whether the corpus has been populated.
func (s *Store) Loaded() bool {
	return len(s.records) > 0
}

// Size returns the number of records in the corpus.
func (s *Store) Size() int {
	return len(s.records)
}

// GetByID returns the record with the given id, or false when absent.
func (s *Store) GetByID(id string) (*core.Record, bool) {
	row, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return s.records[row], true
}

// GetByRow returns the record at the given zero-based row index.
// Row indices are stable only within one loaded instance.
func (s *Store) GetByRow(row int) (*core.Record, bool) {
	if row < 0 || row >= len(s.records) {
		return nil, false
	}
	return s.records[row], true
}

// All returns a restartable iterator over (rowIndex, record) pairs in load order.
func (s *Store) All() iter.Seq2[int, *core.Record] {
	return func(yield func(int, *core.Record) bool) {
		for i, rec := range s.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// loadFile parses a single CSV dataset file into the store.
// The store is only mutated when the whole file parses cleanly.
func (s *Store) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged; columns resolve by header

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["founder_name"]; !ok {
		return fmt.Errorf("%w: missing founder_name column", ErrMalformedDataset)
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return core.NormalizeCell(row[i])
	}

	var records []*core.Record
	byID := make(map[string]int)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading row %d: %w", len(records)+1, err)
		}

		rec := &core.Record{
			ID:       cell(row, "id"),
			Name:     cell(row, "founder_name"),
			Role:     cell(row, "role"),
			Company:  cell(row, "company"),
			Location: cell(row, "location"),
			Idea:     cell(row, "idea"),
			About:    cell(row, "about"),
			Keywords: cell(row, "keywords"),
			Stage:    cell(row, "stage"),
			LinkedIn: cell(row, "linkedin"),
			Email:    cell(row, "email"),
			Notes:    cell(row, "notes"),
		}

		// Rows without an explicit id get a deterministic content hash.
		if rec.ID == "" {
			rec.ID = core.IDFromContent(rec.Name + "|" + rec.Company + "|" + rec.About)
		}

		if err := core.ValidateRecord(rec); err != nil {
			return fmt.Errorf("row %d: %w", len(records)+1, err)
		}

		if _, dup := byID[rec.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrMalformedDataset, rec.ID)
		}

		byID[rec.ID] = len(records)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return fmt.Errorf("%w: no data rows", ErrMalformedDataset)
	}

	s.records = records
	s.byID = byID
	return nil
}
