// Package index builds and queries the dense vector space over the founder
// corpus.
//
// Each record is rendered to a canonical labeled text, embedded through the
// configured ai.Embedder, and L2-normalized so that maximum inner product
// search is equivalent to cosine similarity. Search is exact brute force
// with no approximation or filtering; on corpora of this size a full scan
// is well under a millisecond.
package index
