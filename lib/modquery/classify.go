package modquery

import (
	"fmt"
	"modfinder/lib/modmeta"
	"modfinder/lib/textutil"
	"slices"
)

// Query is a request for the characters that use a mod of a given set,
// optionally narrowed down to a shape and the primary stat on that shape.
// Empty fields are unspecified.
type Query struct {
	Set     string        `json:"set"`
	Shape   modmeta.Shape `json:"shape"`
	Primary string        `json:"primary"`
}

func (q Query) String() string {
	return fmt.Sprintf("set=%q shape=%q primary=%q", q.Set, q.Shape, q.Primary)
}

// Warnings lists the parts of a query that are legal on their own but
// cannot match anything together.
func (q Query) Warnings() []string {
	var warnings []string
	if q.Primary == "" {
		return nil
	}
	if q.Shape == "" {
		return append(warnings, fmt.Sprintf(
			"primary %q needs a shape to know which slot to check", q.Primary,
		))
	}
	rule, ok := modmeta.RuleFor(q.Shape)
	if ok && !rule.Allows(q.Primary) {
		warnings = append(warnings, fmt.Sprintf(
			"%s mods cannot roll %s as a primary", q.Shape, q.Primary,
		))
	}
	return warnings
}

var criticalSets = []string{"chance", "damage"}
var criticalPrimaries = []string{"avoidance", "chance", "damage"}

// Classify sorts lowercase tokens into the slots of a query. Tokens are
// scanned once from left to right and the first token to fit an empty slot
// fills it, the set slot is tried first. "critical" joins with the token
// after it. Tokens that fit nowhere are ignored.
func Classify(tokens []string) Query {
	var q Query

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		var next string
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}

		switch {
		case q.Set == "" && modmeta.IsSetName(token):
			q.Set = token
		case q.Set == "" && token == "critical" && slices.Contains(criticalSets, next):
			q.Set = "critical " + next
			i++
		case q.Shape == "" && modmeta.IsShape(token):
			q.Shape = modmeta.Shape(token)
		case q.Primary == "" && token == "critical" && slices.Contains(criticalPrimaries, next):
			q.Primary = "critical " + next
			i++
		case q.Primary == "" && modmeta.IsPrimaryName(token):
			q.Primary = token
		}
	}

	return q
}

// ParseQuery classifies free text such as "critical damage triangle
// critical chance".
func ParseQuery(text string) Query {
	return Classify(textutil.Tokenize(text))
}
