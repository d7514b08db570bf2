package commands

import (
	"modfinder/lib/configutil"
	"modfinder/lib/render"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	err := os.WriteFile(path, []byte(`{
		// only what differs from the defaults
		output: { columns: 3, layout: "column" },
		source: { disable_cloudflare_bypass: true },
	}`), 0644)
	require.NoError(t, err)

	config, err := configutil.ReadConfig(path, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 3, config.Output.Columns)
	require.Equal(t, render.DefaultMessageLimit, config.Output.MessageLimit)
	require.Equal(t, 8000, config.Serve.Port)
	require.True(t, config.Source.DisableCloudflareBypass)

	opts, err := config.Output.renderOptions()
	require.NoError(t, err)
	require.Equal(t, render.ColumnMajor, opts.Layout)
}
