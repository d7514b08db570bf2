package restyutil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mu       sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages[id] = contents
}

func withDebugLogs(t *testing.T) {
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInstrumentClient(t *testing.T) {
	withDebugLogs(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, nil, out)

	res, err := client.R().SetContext(context.Background()).Get(srv.URL + "/report")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())

	require.Len(t, out.messages, 1)
	dump := out.messages["1"]
	require.Contains(t, dump, "---- REQUEST ----")
	require.Contains(t, dump, "GET "+srv.URL+"/report")
	require.Contains(t, dump, "X-Test: yes")
	require.True(t, strings.HasSuffix(dump, "<html>ok</html>"))
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")
	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	out.Write("7", "contents")
	written, err := os.ReadFile(filepath.Join(dir, "7"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(written))
}

func TestFormatHeaders(t *testing.T) {
	require.Equal(t, "", formatHeaders(http.Header{}))
	require.Equal(t, "A: 1\nB: 2\nB: 3", formatHeaders(http.Header{
		"B": []string{"2", "3"},
		"A": []string{"1"},
	}))
}

func TestFormatRequestBody(t *testing.T) {
	require.Equal(t, "", formatRequestBody(nil))

	empty, err := http.NewRequest(http.MethodGet, "http://localhost/report", nil)
	require.NoError(t, err)
	empty.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "", formatRequestBody(empty))

	withBody, err := http.NewRequest(http.MethodPost, "http://localhost/report", strings.NewReader("q=speed"))
	require.NoError(t, err)
	require.Equal(t, "q=speed", formatRequestBody(withBody))
	// the body can be formatted again since GetBody hands out a fresh reader
	require.Equal(t, "q=speed", formatRequestBody(withBody))
}
