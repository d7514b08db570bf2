package modfinder

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("modfinder.services.modfinder")
var meter = otel.Meter("modfinder.services.modfinder")

var queryCounter, _ = meter.Int64Counter(
	"modfinder.queries",
	metric.WithDescription("Queries handled, by outcome."),
)
var skippedRowsCounter, _ = meter.Int64Counter(
	"modfinder.skipped_rows",
	metric.WithDescription("Report rows that were not character rows."),
)
var matchHistogram, _ = meter.Int64Histogram(
	"modfinder.matches",
	metric.WithDescription("Characters returned per successful query."),
)
