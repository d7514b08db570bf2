package modfinder

import (
	"encoding/json"
	"errors"
	"log/slog"
	"modfinder/lib/modmeta"
	"modfinder/lib/scrapers/swgohgg"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

type errorBody struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

type vocabBody struct {
	Sets   []string    `json:"sets"`
	Shapes []shapeBody `json:"shapes"`
}

type shapeBody struct {
	Shape     modmeta.Shape `json:"shape"`
	Slot      string        `json:"slot"`
	Primaries []string      `json:"primaries"`
}

// NewHandler exposes the service over HTTP.
//
//	GET /find?q=<query>  the Result of the query as json
//	GET /vocab           the mod sets and shapes as json
func NewHandler(service Service) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /find", service.handleFind)
	mux.HandleFunc("GET /vocab", handleVocab)
	return instrumentHandler(mux)
}

func instrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(
			r.Context(),
			"http:"+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(httpconv.ServerRequest("modfinder", r)...),
		)
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.status_code", rec.status))
		if rec.status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s Service) handleFind(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	result, err := s.Find(r.Context(), text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJson(w, r, http.StatusOK, result)
}

func handleVocab(w http.ResponseWriter, r *http.Request) {
	body := vocabBody{Sets: modmeta.SetNames()}
	for _, shape := range modmeta.Shapes() {
		rule, _ := modmeta.RuleFor(shape)
		body.Shapes = append(body.Shapes, shapeBody{
			Shape:     shape,
			Slot:      rule.Slot.String(),
			Primaries: rule.Primaries(),
		})
	}
	writeJson(w, r, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *InvalidQueryError
	var fetchErr *swgohgg.FetchError
	var parseErr *swgohgg.ParseError

	switch {
	case errors.As(err, &invalid):
		writeJson(w, r, http.StatusBadRequest, errorBody{
			Error:      err.Error(),
			Suggestion: invalid.Suggestion,
		})
	case errors.As(err, &fetchErr), errors.As(err, &parseErr):
		writeJson(w, r, http.StatusBadGateway, errorBody{Error: err.Error()})
	case errors.Is(err, ErrNoData):
		writeJson(w, r, http.StatusServiceUnavailable, errorBody{Error: err.Error()})
	default:
		slog.ErrorContext(r.Context(), "unhandled find error", "err", err)
		writeJson(w, r, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

func writeJson(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.WarnContext(r.Context(), "failed to write response", "err", err)
	}
}
