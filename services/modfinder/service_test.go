package modfinder

import (
	"context"
	"errors"
	"modfinder/lib/modmeta"
	"modfinder/lib/modquery"
	"modfinder/lib/scrapers/swgohgg"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	extraction swgohgg.Extraction
	err        error
	calls      int
}

func (f *fakeSource) FetchRecords(ctx context.Context) (swgohgg.Extraction, error) {
	f.calls++
	return f.extraction, f.err
}

func reySource() *fakeSource {
	return &fakeSource{extraction: swgohgg.Extraction{
		Records: []modmeta.Record{{
			Character:   "Rey",
			Sets:        []string{"health"},
			Receiver:    "speed",
			HoloArray:   "-",
			DataBus:     "-",
			Multiplexer: "-",
		}},
		Skipped: 2,
	}}
}

func TestFind(t *testing.T) {
	source := reySource()
	service := NewService(source)

	result, err := service.Find(context.Background(), "Health Arrow Speed")
	require.NoError(t, err)
	require.Equal(t, []string{"Rey"}, result.Characters)
	require.Equal(t, modquery.Query{Set: "health", Shape: modmeta.ShapeArrow, Primary: "speed"}, result.Query)
	require.Equal(t, 1, result.Records)
	require.Equal(t, 2, result.Skipped)
	require.False(t, result.Empty())
}

func TestFindNoMatch(t *testing.T) {
	service := NewService(reySource())

	result, err := service.Find(context.Background(), "speed")
	require.NoError(t, err)
	require.True(t, result.Empty())
	require.NotNil(t, result.Characters)
}

func TestFindInvalidQueryFailsFast(t *testing.T) {
	source := reySource()
	service := NewService(source)

	_, err := service.Find(context.Background(), "speeed arrow")
	var invalid *InvalidQueryError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "speed", invalid.Suggestion)
	require.Zero(t, source.calls)

	_, err = service.Find(context.Background(), "arrow health")
	require.NoError(t, err)
	require.Equal(t, 1, source.calls)
}

func TestFindNoData(t *testing.T) {
	service := NewService(&fakeSource{extraction: swgohgg.Extraction{Skipped: 4}})

	result, err := service.Find(context.Background(), "health")
	require.ErrorIs(t, err, ErrNoData)
	require.Equal(t, 4, result.Skipped)
}

func TestFindFetchError(t *testing.T) {
	fetchErr := &swgohgg.FetchError{Url: swgohgg.DefaultUrl, StatusCode: http.StatusBadGateway}
	service := NewService(&fakeSource{err: fetchErr})

	_, err := service.Find(context.Background(), "health")
	var target *swgohgg.FetchError
	require.True(t, errors.As(err, &target))
	require.Equal(t, http.StatusBadGateway, target.StatusCode)
}

func TestFindWarnings(t *testing.T) {
	service := NewService(reySource())

	result, err := service.Find(context.Background(), "health circle speed")
	require.NoError(t, err)
	// speed is read as the primary even though circles cannot roll it
	require.Equal(t, modquery.Query{Set: "health", Shape: modmeta.ShapeCircle, Primary: "speed"}, result.Query)
	require.Len(t, result.Warnings, 1)
	require.True(t, result.Empty())
}

func TestFindIsRepeatable(t *testing.T) {
	source := reySource()
	service := NewService(source)

	first, err := service.Find(context.Background(), "health arrow speed")
	require.NoError(t, err)
	second, err := service.Find(context.Background(), first.Query.Set+" "+string(first.Query.Shape)+" "+first.Query.Primary)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 2, source.calls)
}

func TestFindAgainstReportPage(t *testing.T) {
	page, err := os.ReadFile("../../lib/scrapers/swgohgg/testdata/mod_meta_report.html")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(page)
	}))
	defer srv.Close()

	client, err := swgohgg.NewClient(swgohgg.ClientOptions{Url: srv.URL})
	require.NoError(t, err)
	service := NewService(client)

	table := []struct {
		text     string
		expected []string
	}{
		{text: "health arrow speed", expected: []string{"General Grievous", "Rey"}},
		{text: "health", expected: []string{"General Grievous", "Rey"}},
		{text: "critical chance triangle offense", expected: []string{"Darth Vader"}},
		{text: "critical damage triangle critical damage", expected: []string{"Rey"}},
		{text: "speed circle protection", expected: []string{"Rey"}},
		{text: "offense cross potency", expected: []string{"Darth Vader"}},
		{text: "tenacity", expected: []string{}},
	}

	for _, row := range table {
		result, err := service.Find(context.Background(), row.text)
		require.NoError(t, err, row.text)
		require.Equal(t, row.expected, result.Characters, row.text)
	}
}
