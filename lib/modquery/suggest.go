package modquery

import (
	"modfinder/lib/modmeta"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/antzucaro/matchr"
)

// tokens shorter than this are never corrected, "of" is not "dof"
const minSuggestLength = 4

// maximum edit distance allowed between a token and a suggestion
func maxDistance(candidate string) int {
	n := utf8.RuneCountInString(candidate)
	if n >= 10 {
		return 3
	}
	return 2
}

// SuggestSet proposes the set name a query with no recognizable set most
// likely meant, like "speeed" for "speed" or "critcal chance" for
// "critical chance". Single tokens and adjacent token pairs are compared
// against the set vocabulary. Candidates within a small edit distance are
// ranked by Jaro-Winkler similarity. It returns false when nothing is close.
func SuggestSet(tokens []string) (string, bool) {
	var phrases []string
	for i, t := range tokens {
		phrases = append(phrases, t)
		if i+1 < len(tokens) {
			phrases = append(phrases, t+" "+tokens[i+1])
		}
	}

	best := ""
	bestScore := 0.0
	for _, phrase := range phrases {
		if utf8.RuneCountInString(phrase) < minSuggestLength {
			continue
		}
		for _, candidate := range modmeta.SetNames() {
			if levenshtein.ComputeDistance(phrase, candidate) > maxDistance(candidate) {
				continue
			}
			score := matchr.JaroWinkler(phrase, candidate, false)
			if score > bestScore {
				best = candidate
				bestScore = score
			}
		}
	}

	return best, best != ""
}
