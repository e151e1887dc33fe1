package corpus

import (
	"log/slog"

	"github.com/scoutbase/founderrag/core"
)

// NewStaticStore creates a pre-populated store directly from records,
// bypassing file loading. Intended for tests and in-process seeding.
// Records missing an id get a deterministic content hash, mirroring Load.
func NewStaticStore(records ...*core.Record) *Store {
	byID := make(map[string]int, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = core.IDFromContent(rec.Name + "|" + rec.Company + "|" + rec.About)
		}
		byID[rec.ID] = i
	}
	return &Store{
		records: records,
		byID:    byID,
		logger:  slog.Default().With("component", "corpus"),
	}
}
