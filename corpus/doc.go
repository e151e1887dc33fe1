// Package corpus loads and holds the founder profile dataset.
//
// The Store tries a fixed ordered list of candidate CSV locations at startup
// and keeps the parsed records in memory for the process lifetime. After a
// successful Load the corpus is immutable: lookups by id or row index and
// full iteration are all safe for concurrent use without locking.
//
// Missing or sentinel cell values ("nan", "none", "null") are normalized to
// empty strings during parsing, so consumers never see exporter artifacts.
package corpus
