package render

import (
	"strings"
	"unicode/utf8"
)

// DefaultMessageLimit is the longest message a chat client accepts.
const DefaultMessageLimit = 2000

const (
	fenceOpen  = "```\n"
	fenceClose = "\n```"
)

// MinMessageLimit is the smallest limit that leaves room for one character
// between the fences.
const MinMessageLimit = len(fenceOpen) + len(fenceClose) + 1

// SplitMessages cuts text into code-fenced messages of at most limit
// characters each, fences included. Cuts fall on line boundaries, a line
// that cannot fit on its own is cut wherever the limit falls. A limit of 0
// or less means DefaultMessageLimit, a positive limit below MinMessageLimit
// is raised to it.
func SplitMessages(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if limit < MinMessageLimit {
		limit = MinMessageLimit
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	budget := limit - utf8.RuneCountInString(fenceOpen) - utf8.RuneCountInString(fenceClose)

	var lines []string
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		lines = append(lines, hardSplit(line, budget)...)
	}

	var messages []string
	var current []string
	size := 0
	flush := func() {
		if len(current) == 0 {
			return
		}
		messages = append(messages, fenceOpen+strings.Join(current, "\n")+fenceClose)
		current = nil
		size = 0
	}

	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		// joining newline
		if len(current) > 0 {
			n++
		}
		if size+n > budget {
			flush()
			n = utf8.RuneCountInString(line)
		}
		current = append(current, line)
		size += n
	}
	flush()

	return messages
}

func hardSplit(line string, budget int) []string {
	runes := []rune(line)
	if len(runes) <= budget {
		return []string{line}
	}
	var parts []string
	for len(runes) > budget {
		parts = append(parts, string(runes[:budget]))
		runes = runes[budget:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
