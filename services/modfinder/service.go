package modfinder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"modfinder/lib/modquery"
	"modfinder/lib/scrapers/swgohgg"
	"modfinder/lib/textutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// ErrNoData is returned when the report was fetched but held no character
// rows, which is different from a query that matched nothing.
var ErrNoData = errors.New("no data found in the mod meta report")

// InvalidQueryError is returned for a query that names no mod set. It is
// raised before anything is fetched.
type InvalidQueryError struct {
	Text string
	// closest set name to something in Text, may be empty
	Suggestion string
}

func (e *InvalidQueryError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no mod set in %q, did you mean %q?", e.Text, e.Suggestion)
	}
	return fmt.Sprintf("no mod set in %q", e.Text)
}

// RecordSource provides a freshly extracted copy of the report.
type RecordSource interface {
	FetchRecords(ctx context.Context) (swgohgg.Extraction, error)
}

// Service answers mod queries against the report. Every query fetches the
// report again, nothing is kept between calls.
type Service struct {
	source RecordSource
}

func NewService(source RecordSource) Service {
	if source == nil {
		panic("expected record source to be not nil")
	}
	return Service{source: source}
}

type Result struct {
	Query      modquery.Query `json:"query"`
	Characters []string       `json:"characters"`
	Records    int            `json:"records"`
	Skipped    int            `json:"skipped_rows"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// Empty reports whether no character matched.
func (r Result) Empty() bool {
	return len(r.Characters) == 0
}

// Find classifies free text into a query and runs it.
func (s Service) Find(ctx context.Context, text string) (Result, error) {
	tokens := textutil.Tokenize(text)
	q := modquery.Classify(tokens)
	if q.Set == "" {
		suggestion, _ := modquery.SuggestSet(tokens)
		queryCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "invalid")))
		return Result{Query: q}, &InvalidQueryError{Text: text, Suggestion: suggestion}
	}
	return s.FindQuery(ctx, q)
}

// FindQuery fetches the report and returns the characters matching q.
func (s Service) FindQuery(ctx context.Context, q modquery.Query) (Result, error) {
	ctx, span := tracer.Start(ctx, "Service:FindQuery")
	defer span.End()

	span.SetAttributes(
		attribute.String("set", q.Set),
		attribute.String("shape", string(q.Shape)),
		attribute.String("primary", q.Primary),
	)

	result := Result{Query: q, Warnings: q.Warnings()}
	if q.Set == "" {
		queryCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "invalid")))
		return result, &InvalidQueryError{}
	}
	for _, w := range result.Warnings {
		slog.WarnContext(ctx, "query cannot match", "query", q.String(), "reason", w)
	}

	extraction, err := s.source.FetchRecords(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch records")
		queryCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "fetch_failed")))
		return result, err
	}

	result.Records = len(extraction.Records)
	result.Skipped = extraction.Skipped
	skippedRowsCounter.Add(ctx, int64(extraction.Skipped))
	slog.DebugContext(
		ctx, "extracted report",
		"records", result.Records,
		"skipped_rows", result.Skipped,
	)

	if len(extraction.Records) == 0 {
		span.SetStatus(codes.Error, ErrNoData.Error())
		queryCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "no_data")))
		return result, ErrNoData
	}

	result.Characters = modquery.Filter(extraction.Records, q)
	if result.Characters == nil {
		// encodes as an empty list rather than null
		result.Characters = []string{}
	}
	span.SetAttributes(attribute.Int("matches", len(result.Characters)))
	matchHistogram.Record(ctx, int64(len(result.Characters)))

	outcome := "matched"
	if result.Empty() {
		outcome = "no_match"
	}
	queryCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	slog.InfoContext(
		ctx, "query finished",
		"query", q.String(),
		"matches", len(result.Characters),
	)

	return result, nil
}
