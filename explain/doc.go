// Package explain produces human-readable justifications for search matches.
//
// Explanations are two-tier: a generative path asks an external model for a
// short, query-specific sentence, while a deterministic fallback composes one
// from field-level match heuristics. Generation quality is strictly better
// when the model is reachable, but the fallback guarantees graceful and
// reproducible degradation when it is not.
package explain
