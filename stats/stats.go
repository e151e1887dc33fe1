package stats

import (
	"slices"
	"strings"

	"github.com/scoutbase/founderrag/corpus"
)

const (
	// DefaultTopN is the default cutoff for ranked frequency tables.
	DefaultTopN = 15

	maxAchievementSample = 10
)

// FreqEntry is one row of a ranked frequency table.
type FreqEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Diversity summarizes the cardinality of each mined dimension. Higher
// numbers mean a more heterogeneous corpus along that axis.
type Diversity struct {
	Roles        int `json:"roles"`
	Stages       int `json:"stages"`
	Companies    int `json:"companies"`
	Locations    int `json:"locations"`
	Keywords     int `json:"keywords"`
	Industries   int `json:"industries"`
	Backgrounds  int `json:"backgrounds"`
	EmailDomains int `json:"emailDomains"`
}

// Snapshot is a point-in-time aggregate over the corpus. It is computed fresh
// on every call and never cached; the corpus is immutable for the process
// lifetime so snapshots of the same corpus are identical.
type Snapshot struct {
	TotalFounders    int            `json:"totalFounders"`
	Companies        int            `json:"companies"` // distinct company values
	Locations        int            `json:"locations"` // distinct location values
	Roles            map[string]int `json:"roles"`
	Stages           map[string]int `json:"stages"`
	TopKeywords      []FreqEntry    `json:"topKeywords"`
	DistinctKeywords int            `json:"distinctKeywords"`

	// Text-mined signals. These come from heuristic substring and regex
	// extraction over free-text biographies: best-effort signal, not
	// ground truth.
	Backgrounds  []FreqEntry    `json:"backgrounds"`
	Skills       []FreqEntry    `json:"skills"`
	Achievements []string       `json:"achievements"`
	Industries   map[string]int `json:"industries"`
	EmailDomains int            `json:"emailDomains"`

	Diversity Diversity `json:"diversity"`
}

// Option configures Compute.
type Option func(*options)

type options struct {
	topN int
}

// WithTopN sets the cutoff for ranked frequency tables.
// Default is DefaultTopN.
func WithTopN(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topN = n
		}
	}
}

// Compute aggregates corpus-wide distributions and diversity metrics.
// It is pure and read-only over the store.
func Compute(store *corpus.Store, opts ...Option) *Snapshot {
	o := &options{topN: DefaultTopN}
	for _, opt := range opts {
		opt(o)
	}

	roles := make(map[string]int)
	stages := make(map[string]int)
	keywordCounts := make(map[string]int)
	backgroundCounts := make(map[string]int)
	skillCounts := make(map[string]int)
	companies := make(map[string]bool)
	locations := make(map[string]bool)
	emailDomains := make(map[string]bool)
	var achievements []string

	total := 0
	for _, rec := range store.All() {
		total++

		if rec.Role != "" {
			roles[rec.Role]++
		}
		if rec.Stage != "" {
			stages[rec.Stage]++
		}
		if rec.Company != "" {
			companies[rec.Company] = true
		}
		if rec.Location != "" {
			locations[rec.Location] = true
		}

		for _, kw := range rec.KeywordList() {
			keywordCounts[kw]++
		}

		for _, bg := range mineBackgrounds(rec.About) {
			backgroundCounts[bg]++
		}
		for _, skill := range mineSkills(rec.About) {
			skillCounts[skill]++
		}
		if len(achievements) < maxAchievementSample {
			if ach, ok := mineAchievement(rec.About); ok {
				achievements = append(achievements, ach)
			}
		}

		if domain := emailDomain(rec.Email); domain != "" {
			emailDomains[domain] = true
		}
	}

	industries := rollupIndustries(keywordCounts)

	return &Snapshot{
		TotalFounders:    total,
		Companies:        len(companies),
		Locations:        len(locations),
		Roles:            roles,
		Stages:           stages,
		TopKeywords:      topN(keywordCounts, o.topN),
		DistinctKeywords: len(keywordCounts),
		Backgrounds:      topN(backgroundCounts, o.topN),
		Skills:           topN(skillCounts, o.topN),
		Achievements:     achievements,
		Industries:       industries,
		EmailDomains:     len(emailDomains),
		Diversity: Diversity{
			Roles:        len(roles),
			Stages:       len(stages),
			Companies:    len(companies),
			Locations:    len(locations),
			Keywords:     len(keywordCounts),
			Industries:   len(industries),
			Backgrounds:  len(backgroundCounts),
			EmailDomains: len(emailDomains),
		},
	}
}

// topN ranks a count map by descending count, breaking ties by name for
// deterministic output, and keeps the first n entries.
func topN(counts map[string]int, n int) []FreqEntry {
	entries := make([]FreqEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, FreqEntry{Name: name, Count: count})
	}
	slices.SortFunc(entries, func(a, b FreqEntry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
