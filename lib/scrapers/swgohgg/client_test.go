package swgohgg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func reportServer(t testing.TB, status int, body []byte) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRecords(t *testing.T) {
	srv := reportServer(t, http.StatusOK, reportFixture)

	client, err := NewClient(ClientOptions{Url: srv.URL})
	require.NoError(t, err)

	result, err := client.FetchRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Records, 4)
	require.Equal(t, "Rey", result.Records[0].Character)
	require.Equal(t, 3, result.Skipped)
}

func TestFetchStatusError(t *testing.T) {
	srv := reportServer(t, http.StatusServiceUnavailable, []byte("down"))

	client, err := NewClient(ClientOptions{Url: srv.URL})
	require.NoError(t, err)

	_, err = client.FetchRecords(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	require.Equal(t, srv.URL, fetchErr.Url)
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	link := srv.URL
	srv.Close()

	client, err := NewClient(ClientOptions{Url: link, TimeoutSeconds: 2})
	require.NoError(t, err)

	_, err = client.FetchDocument(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Error(t, fetchErr.Err)
	require.Zero(t, fetchErr.StatusCode)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)
	require.Equal(t, DefaultUrl, client.Url.String())
}
