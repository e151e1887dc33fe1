package stats

// industryByKeyword maps corpus keyword tags onto coarse industry buckets.
// Keywords without a mapping roll into "Other".
var industryByKeyword = map[string]string{
	"healthtech": "Healthcare",
	"biotech":    "Healthcare",
	"fitness":    "Healthcare",

	"fintech":    "Financial Services",
	"blockchain": "Financial Services",

	"edtech": "Education",

	"e-commerce":  "Commerce & Retail",
	"marketplace": "Commerce & Retail",
	"retail":      "Commerce & Retail",
	"fashion":     "Commerce & Retail",
	"beauty":      "Commerce & Retail",

	"SaaS":            "Enterprise Software",
	"developer tools": "Enterprise Software",
	"productivity":    "Enterprise Software",
	"analytics":       "Enterprise Software",
	"cloud":           "Enterprise Software",
	"automation":      "Enterprise Software",
	"cybersecurity":   "Enterprise Software",

	"AI":       "Artificial Intelligence",
	"robotics": "Artificial Intelligence",

	"cleantech":   "Energy & Climate",
	"energy":      "Energy & Climate",
	"agriculture": "Energy & Climate",

	"proptech": "Real Estate",

	"foodtech": "Food & Hospitality",
	"travel":   "Travel & Mobility",
	"logistics": "Travel & Mobility",

	"mobile": "Consumer & Media",
	"social": "Consumer & Media",
	"gaming": "Consumer & Media",
	"VR":     "Consumer & Media",
	"AR":     "Consumer & Media",
	"adtech": "Consumer & Media",

	"IoT": "Hardware & IoT",
}

// rollupIndustries maps keyword frequencies onto industry buckets.
func rollupIndustries(keywordCounts map[string]int) map[string]int {
	industries := make(map[string]int)
	for kw, count := range keywordCounts {
		bucket, ok := industryByKeyword[kw]
		if !ok {
			bucket = "Other"
		}
		industries[bucket] += count
	}
	return industries
}
