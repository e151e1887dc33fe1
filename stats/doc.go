// Package stats computes corpus-wide distributions and lightweight
// text-mined diversity metrics over the founder dataset.
//
// Snapshots are computed fresh on demand; the corpus is immutable after
// load, so there is nothing to cache or invalidate. The biography mining
// (backgrounds, skills, achievements) is heuristic pattern extraction and
// is documented as best-effort signal rather than ground truth.
package stats
