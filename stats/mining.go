package stats

import (
	"regexp"
	"strings"
)

// Biographies are free text; the patterns below catch the common phrasings
// ("Former Google engineer", "... with expertise in machine learning,
// fundraising.", "Previously raised $2M seed round.") and ignore
// everything else.

var (
	// A "Former"/"Ex-" marker followed by a short capitalized phrase ending
	// in a role noun.
	backgroundPattern = regexp.MustCompile(
		`(?:Former|Ex-)\s?([A-Z][A-Za-z&.' ]{1,27}?\s(?:engineer|consultant|manager|executive|analyst|designer|researcher|scientist|associate|banker|lead|PM))`)

	// The clause following "expertise in", up to the end of the sentence.
	skillsPattern = regexp.MustCompile(`(?i)expertise in\s+([^.!?]+)`)

	// The clause following "Previously", up to the end of the sentence.
	achievementPattern = regexp.MustCompile(`Previously\s+([^.!?]+)`)
)

const (
	minBackgroundLen = 3
	maxBackgroundLen = 29

	minSkillLen = 4
	maxSkillLen = 39
)

// mineBackgrounds extracts prior-affiliation phrases from a biography.
func mineBackgrounds(about string) []string {
	var out []string
	for _, m := range backgroundPattern.FindAllStringSubmatch(about, -1) {
		phrase := strings.TrimSpace(m[1])
		if len(phrase) >= minBackgroundLen && len(phrase) <= maxBackgroundLen {
			out = append(out, phrase)
		}
	}
	return out
}

// mineSkills extracts comma-separated skill phrases following "expertise in".
func mineSkills(about string) []string {
	m := skillsPattern.FindStringSubmatch(about)
	if m == nil {
		return nil
	}

	var out []string
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "and "))
		if len(part) >= minSkillLen && len(part) <= maxSkillLen {
			out = append(out, part)
		}
	}
	return out
}

// mineAchievement extracts the outcome sentence following "Previously".
func mineAchievement(about string) (string, bool) {
	m := achievementPattern.FindStringSubmatch(about)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
