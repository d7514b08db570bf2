package commands

import (
	"errors"
	"fmt"
	"modfinder/lib/scrapers/swgohgg"
	"modfinder/services/modfinder"
)

const (
	msgInvalidInput = "Invalid input. Please provide at least a set name."
	msgNoData       = "No data found or failed to fetch data."
	msgNoMatch      = "No characters found with the specified criteria."
)

// userMessage turns a query failure into the sentence shown to a chat user.
func userMessage(err error) string {
	var invalid *modfinder.InvalidQueryError
	var fetchErr *swgohgg.FetchError
	var parseErr *swgohgg.ParseError

	switch {
	case errors.As(err, &invalid):
		if invalid.Suggestion != "" {
			return fmt.Sprintf("%s Did you mean %q?", msgInvalidInput, invalid.Suggestion)
		}
		return msgInvalidInput
	case errors.Is(err, modfinder.ErrNoData),
		errors.As(err, &fetchErr),
		errors.As(err, &parseErr):
		return msgNoData
	}
	return err.Error()
}

// describeResult is the line printed above a result table.
func describeResult(result modfinder.Result) string {
	q := result.Query
	text := fmt.Sprintf("Characters with %s set", q.Set)
	if q.Shape != "" {
		text += fmt.Sprintf(", %s shape", q.Shape)
	}
	if q.Primary != "" {
		text += fmt.Sprintf(", %s primary", q.Primary)
	}
	return text + ":"
}
