package core

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic record ID from text content using
// BLAKE2b hashing. It is used for corpus rows that arrive without an explicit
// id cell, so that identical content always produces the same ID.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, binary.LittleEndian.Uint64(sum))
	return hex.EncodeToString(buf)
}

// Record is a single founder profile, the corpus's atomic unit.
// Records are immutable once loaded; empty strings mean the cell was absent.
type Record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"` // one of a small fixed set (Founder, Co-founder, Engineer, ...)
	Company  string `json:"company"`
	Location string `json:"location"` // free text, may contain a "city, country" pair
	Idea     string `json:"idea"`
	About    string `json:"about"`    // free-text biography
	Keywords string `json:"keywords"` // comma-separated tags
	Stage    string `json:"stage"`    // funding stage, empty when unknown
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
	Notes    string `json:"notes,omitempty"` // optional
}

// HasNotes reports whether the record carries optional notes.
func (r *Record) HasNotes() bool {
	return r.Notes != ""
}

// KeywordList returns the record's keywords split on commas and trimmed.
// Empty entries are dropped.
func (r *Record) KeywordList() []string {
	return SplitCommaList(r.Keywords)
}

// Candidate is a raw nearest-neighbor hit from the embedding index:
// a corpus row position and its similarity score.
type Candidate struct {
	Row   int
	Score float32
}

// SearchResult is the fully assembled, explained result for one candidate.
// It is ephemeral, produced per query, and never persisted.
type SearchResult struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Explanation   string   `json:"explanation"`
	Score         float32  `json:"score"`
	MatchedFields []string `json:"matchedFields"`
	RowIndex      int      `json:"rowIndex"`
}
