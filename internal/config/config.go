package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Region describes an optional screen area to capture instead of the
// full display. All four values must be set together.
type Region struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Config holds all application configuration.
type Config struct {
	WindowKeyword   string
	BrowserKeywords []string
	OutputDir       string
	FilenamePrefix  string
	FilenameSuffix  string
	URLTemplate     string

	Symbol       string
	SymbolsFile  string
	SkipSymbols  []string
	IndexSymbols []string

	BlankThreshold float64
	MaxRetries     int

	ScrollCount    int
	ScrollDistance int
	ScrollDelay    time.Duration
	PostScrollWait time.Duration

	SearchWait  time.Duration
	SettleDelay time.Duration
	RefreshWait time.Duration
	ClickWait   time.Duration

	Region *Region

	AvoidDuplicates    bool
	DuplicateThreshold int
	NoCaption          bool
}

// raw mirrors the file/environment form of the settings. Every field is a
// string so that YAML values and environment values go through the same
// parsing path. Wait values accept Go durations ("300ms") or float
// seconds ("0.3") for parity with older .env files.
type raw struct {
	WindowKeyword   string `yaml:"window_keyword"`
	BrowserKeywords string `yaml:"browser_keywords"`
	OutputDir       string `yaml:"output_dir"`
	FilenamePrefix  string `yaml:"filename_prefix"`
	FilenameSuffix  string `yaml:"filename_suffix"`
	URLTemplate     string `yaml:"url_template"`

	Symbol       string `yaml:"stock_symbol"`
	SymbolsFile  string `yaml:"stock_symbols_file"`
	SkipSymbols  string `yaml:"skip_symbols"`
	IndexSymbols string `yaml:"index_symbols"`

	BlankThreshold string `yaml:"blank_threshold"`
	MaxRetries     string `yaml:"max_retries"`

	ScrollCount    string `yaml:"scroll_down_count"`
	ScrollDistance string `yaml:"scroll_distance"`
	ScrollDelay    string `yaml:"scroll_delay"`
	PostScrollWait string `yaml:"post_scroll_wait"`

	SearchWait  string `yaml:"search_wait"`
	SettleDelay string `yaml:"window_settle_delay"`
	RefreshWait string `yaml:"refresh_wait"`
	ClickWait   string `yaml:"click_wait"`

	ChartLeft   string `yaml:"chart_left"`
	ChartTop    string `yaml:"chart_top"`
	ChartWidth  string `yaml:"chart_width"`
	ChartHeight string `yaml:"chart_height"`

	AvoidDuplicates    string `yaml:"avoid_duplicates"`
	DuplicateThreshold string `yaml:"duplicate_threshold"`
	NoCaption          string `yaml:"no_caption"`
}

func defaults() raw {
	return raw{
		WindowKeyword:      "barchart",
		BrowserKeywords:    "chrome,firefox,edge,safari,opera,brave,vivaldi",
		OutputDir:          "screenshots",
		FilenamePrefix:     "barchart",
		FilenameSuffix:     "put_call_ratios",
		URLTemplate:        "https://www.barchart.com/stocks/quotes/%s/put-call-ratios",
		BlankThreshold:     "240",
		MaxRetries:         "3",
		ScrollCount:        "7",
		ScrollDistance:     "-90",
		ScrollDelay:        "5ms",
		PostScrollWait:     "300ms",
		SearchWait:         "15s",
		SettleDelay:        "2s",
		RefreshWait:        "5s",
		ClickWait:          "300ms",
		AvoidDuplicates:    "false",
		DuplicateThreshold: "96",
		NoCaption:          "false",
	}
}

// envKeys maps environment variable names to raw fields.
func (r *raw) envKeys() map[string]*string {
	return map[string]*string{
		"WINDOW_KEYWORD":      &r.WindowKeyword,
		"BROWSER_KEYWORDS":    &r.BrowserKeywords,
		"OUTPUT_DIR":          &r.OutputDir,
		"FILENAME_PREFIX":     &r.FilenamePrefix,
		"FILENAME_SUFFIX":     &r.FilenameSuffix,
		"URL_TEMPLATE":        &r.URLTemplate,
		"STOCK_SYMBOL":        &r.Symbol,
		"STOCK_SYMBOLS_FILE":  &r.SymbolsFile,
		"SKIP_SYMBOLS":        &r.SkipSymbols,
		"INDEX_SYMBOLS":       &r.IndexSymbols,
		"BLANK_THRESHOLD":     &r.BlankThreshold,
		"MAX_RETRIES":         &r.MaxRetries,
		"SCROLL_DOWN_COUNT":   &r.ScrollCount,
		"SCROLL_DISTANCE":     &r.ScrollDistance,
		"SCROLL_DELAY":        &r.ScrollDelay,
		"POST_SCROLL_WAIT":    &r.PostScrollWait,
		"SEARCH_WAIT":         &r.SearchWait,
		"WINDOW_SETTLE_DELAY": &r.SettleDelay,
		"REFRESH_WAIT":        &r.RefreshWait,
		"CLICK_WAIT":          &r.ClickWait,
		"CHART_LEFT":          &r.ChartLeft,
		"CHART_TOP":           &r.ChartTop,
		"CHART_WIDTH":         &r.ChartWidth,
		"CHART_HEIGHT":        &r.ChartHeight,
		"AVOID_DUPLICATES":    &r.AvoidDuplicates,
		"DUPLICATE_THRESHOLD": &r.DuplicateThreshold,
		"NO_CAPTION":          &r.NoCaption,
	}
}

// Load reads config from an optional YAML file, then a .env file in the
// working directory, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	r := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env values become environment variables unless already set, so
	// the real environment always wins. A missing .env is fine.
	_ = godotenv.Load()

	for key, field := range r.envKeys() {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}

	return r.parse()
}

func (r *raw) parse() (*Config, error) {
	cfg := &Config{
		WindowKeyword:   strings.TrimSpace(r.WindowKeyword),
		BrowserKeywords: splitList(strings.ToLower(r.BrowserKeywords)),
		OutputDir:       r.OutputDir,
		FilenamePrefix:  r.FilenamePrefix,
		FilenameSuffix:  r.FilenameSuffix,
		URLTemplate:     r.URLTemplate,
		Symbol:          strings.TrimSpace(r.Symbol),
		SymbolsFile:     strings.TrimSpace(r.SymbolsFile),
		SkipSymbols:     splitList(strings.ToUpper(r.SkipSymbols)),
		IndexSymbols:    splitList(strings.ToUpper(r.IndexSymbols)),
	}

	var err error
	if cfg.BlankThreshold, err = strconv.ParseFloat(r.BlankThreshold, 64); err != nil {
		return nil, fmt.Errorf("blank_threshold: %w", err)
	}
	if cfg.MaxRetries, err = strconv.Atoi(r.MaxRetries); err != nil {
		return nil, fmt.Errorf("max_retries: %w", err)
	}
	if cfg.ScrollCount, err = strconv.Atoi(r.ScrollCount); err != nil {
		return nil, fmt.Errorf("scroll_down_count: %w", err)
	}
	if cfg.ScrollDistance, err = strconv.Atoi(r.ScrollDistance); err != nil {
		return nil, fmt.Errorf("scroll_distance: %w", err)
	}

	waits := []struct {
		name string
		src  string
		dst  *time.Duration
	}{
		{"scroll_delay", r.ScrollDelay, &cfg.ScrollDelay},
		{"post_scroll_wait", r.PostScrollWait, &cfg.PostScrollWait},
		{"search_wait", r.SearchWait, &cfg.SearchWait},
		{"window_settle_delay", r.SettleDelay, &cfg.SettleDelay},
		{"refresh_wait", r.RefreshWait, &cfg.RefreshWait},
		{"click_wait", r.ClickWait, &cfg.ClickWait},
	}
	for _, w := range waits {
		if *w.dst, err = parseWait(w.src); err != nil {
			return nil, fmt.Errorf("%s: %w", w.name, err)
		}
	}

	if cfg.Region, err = parseRegion(r.ChartLeft, r.ChartTop, r.ChartWidth, r.ChartHeight); err != nil {
		return nil, err
	}

	if cfg.AvoidDuplicates, err = strconv.ParseBool(r.AvoidDuplicates); err != nil {
		return nil, fmt.Errorf("avoid_duplicates: %w", err)
	}
	if cfg.DuplicateThreshold, err = strconv.Atoi(r.DuplicateThreshold); err != nil {
		return nil, fmt.Errorf("duplicate_threshold: %w", err)
	}
	if cfg.NoCaption, err = strconv.ParseBool(r.NoCaption); err != nil {
		return nil, fmt.Errorf("no_caption: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseWait accepts a Go duration ("300ms", "1.5s") or a bare float
// number of seconds ("0.3").
func parseWait(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid wait value %q", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func parseRegion(left, top, width, height string) (*Region, error) {
	values := []string{strings.TrimSpace(left), strings.TrimSpace(top), strings.TrimSpace(width), strings.TrimSpace(height)}
	set := 0
	for _, v := range values {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return nil, nil
	}
	if set != 4 {
		return nil, fmt.Errorf("chart region requires all of chart_left, chart_top, chart_width, chart_height")
	}

	nums := make([]int, 4)
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("chart region: invalid value %q", v)
		}
		nums[i] = n
	}
	return &Region{Left: nums[0], Top: nums[1], Width: nums[2], Height: nums[3]}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.WindowKeyword == "" {
		return fmt.Errorf("window_keyword is required")
	}
	if len(c.BrowserKeywords) == 0 {
		return fmt.Errorf("browser_keywords is required")
	}
	if c.BlankThreshold < 0 || c.BlankThreshold > 255 {
		return fmt.Errorf("blank_threshold must be between 0 and 255")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1")
	}
	if c.DuplicateThreshold < 1 || c.DuplicateThreshold > 100 {
		return fmt.Errorf("duplicate_threshold must be between 1 and 100")
	}
	if c.Region != nil && (c.Region.Width <= 0 || c.Region.Height <= 0) {
		return fmt.Errorf("chart region must have positive width and height")
	}
	if !strings.Contains(c.URLTemplate, "%s") {
		return fmt.Errorf("url_template must contain a %%s placeholder for the symbol")
	}
	return nil
}

// QuoteURL builds the page URL for a symbol. Index symbols (VIX and
// friends) need a literal $ in the path, sent URL-encoded as %24.
func (c *Config) QuoteURL(symbol string) string {
	urlSymbol := symbol
	if c.IsIndexSymbol(symbol) {
		urlSymbol = "%24" + symbol
	}
	return fmt.Sprintf(c.URLTemplate, urlSymbol)
}

// IsIndexSymbol reports whether the symbol is on the configured index list.
func (c *Config) IsIndexSymbol(symbol string) bool {
	symbol = strings.ToUpper(symbol)
	for _, s := range c.IndexSymbols {
		if s == symbol {
			return true
		}
	}
	return false
}
