package modquery

import (
	"modfinder/lib/modmeta"
	"strings"
)

// Match reports whether a record satisfies a query.
//
// The record must carry the query's set. A query without a primary stat
// matches on the set alone, even when it names a shape. A primary stat is
// checked against the "/" separated alternatives reported in the slot of
// the query's shape, so a primary without a known shape never matches.
func Match(r modmeta.Record, q Query) bool {
	if !r.HasSet(q.Set) {
		return false
	}
	if q.Primary == "" {
		return true
	}

	rule, ok := modmeta.RuleFor(q.Shape)
	if !ok {
		return false
	}
	for _, option := range r.StatOptions(rule.Slot) {
		if strings.EqualFold(option, q.Primary) {
			return true
		}
	}
	return false
}

// Filter returns the character of every record matching the query in
// record order. A character listed by several matching rows is returned
// once per row.
func Filter(records []modmeta.Record, q Query) []string {
	var characters []string
	for _, r := range records {
		if Match(r, q) {
			characters = append(characters, r.Character)
		}
	}
	return characters
}
