package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "barchart", cfg.WindowKeyword)
	assert.Equal(t, []string{"chrome", "firefox", "edge", "safari", "opera", "brave", "vivaldi"}, cfg.BrowserKeywords)
	assert.Equal(t, "screenshots", cfg.OutputDir)
	assert.Equal(t, "barchart", cfg.FilenamePrefix)
	assert.Equal(t, "put_call_ratios", cfg.FilenameSuffix)
	assert.Equal(t, 240.0, cfg.BlankThreshold)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 7, cfg.ScrollCount)
	assert.Equal(t, -90, cfg.ScrollDistance)
	assert.Equal(t, 15*time.Second, cfg.SearchWait)
	assert.Equal(t, 2*time.Second, cfg.SettleDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.ClickWait)
	assert.Nil(t, cfg.Region)
	assert.False(t, cfg.AvoidDuplicates)
	assert.Equal(t, 96, cfg.DuplicateThreshold)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WINDOW_KEYWORD", "tradingview")
	t.Setenv("BROWSER_KEYWORDS", "Chrome, Brave")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("SEARCH_WAIT", "7.5")
	t.Setenv("SKIP_SYMBOLS", "tsla, nvda")
	t.Setenv("CHART_LEFT", "10")
	t.Setenv("CHART_TOP", "20")
	t.Setenv("CHART_WIDTH", "800")
	t.Setenv("CHART_HEIGHT", "600")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "tradingview", cfg.WindowKeyword)
	assert.Equal(t, []string{"chrome", "brave"}, cfg.BrowserKeywords)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 7500*time.Millisecond, cfg.SearchWait)
	assert.Equal(t, []string{"TSLA", "NVDA"}, cfg.SkipSymbols)
	require.NotNil(t, cfg.Region)
	assert.Equal(t, Region{Left: 10, Top: 20, Width: 800, Height: 600}, *cfg.Region)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
window_keyword: barchart
output_dir: out
blank_threshold: "230"
refresh_wait: 750ms
stock_symbol: AAPL
index_symbols: VIX,SPX
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 230.0, cfg.BlankThreshold)
	assert.Equal(t, 750*time.Millisecond, cfg.RefreshWait)
	assert.Equal(t, "AAPL", cfg.Symbol)
	assert.Equal(t, []string{"VIX", "SPX"}, cfg.IndexSymbols)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: from_file\n"), 0o644))

	t.Setenv("OUTPUT_DIR", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.OutputDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseWait(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "300ms", want: 300 * time.Millisecond},
		{in: "2.5s", want: 2500 * time.Millisecond},
		{in: "0.3", want: 300 * time.Millisecond},
		{in: "15", want: 15 * time.Second},
		{in: " 5 ", want: 5 * time.Second},
		{in: "soon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseWait(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseRegionPartial(t *testing.T) {
	_, err := parseRegion("10", "20", "", "")
	assert.Error(t, err)

	region, err := parseRegion("", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, region)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.BlankThreshold = 300
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.MaxRetries = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DuplicateThreshold = 101
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.URLTemplate = "https://example.com/static"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Region = &Region{Width: 0, Height: 10}
	assert.Error(t, cfg.Validate())
}

func TestQuoteURL(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.IndexSymbols = []string{"VIX"}

	assert.Equal(t, "https://www.barchart.com/stocks/quotes/AAPL/put-call-ratios", cfg.QuoteURL("AAPL"))
	assert.Equal(t, "https://www.barchart.com/stocks/quotes/%24VIX/put-call-ratios", cfg.QuoteURL("VIX"))
	assert.True(t, cfg.IsIndexSymbol("vix"))
	assert.False(t, cfg.IsIndexSymbol("AAPL"))
}
