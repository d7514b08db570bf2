package textutil

import "strings"

// Tokenize lowercases free text and splits it on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
