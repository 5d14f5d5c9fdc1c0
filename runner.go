// Package barchart captures screenshots of Barchart quote pages by
// steering an already-open browser window: focus the window, type the
// page URL into the address bar, scroll to the chart and grab the screen.
package barchart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mskpairprogrammer/barchart/internal/capture"
	"github.com/mskpairprogrammer/barchart/internal/config"
	"github.com/mskpairprogrammer/barchart/internal/input"
	"github.com/mskpairprogrammer/barchart/internal/window"
)

// Version of the tool.
const Version = "0.1.0"

// ErrDuplicate marks a capture that was dropped because it matched an
// earlier screenshot from the same run.
var ErrDuplicate = errors.New("duplicate screenshot")

// WindowManager brings the target browser window to the foreground.
type WindowManager interface {
	FindAndFocus(keyword string, browserKeywords []string) (string, error)
}

// InputDriver simulates user input against the focused window.
type InputDriver interface {
	Navigate(url string)
	ClickCenter()
	ScrollPage()
	Refresh()
}

// ScreenCapturer grabs the screen or the configured region of it.
type ScreenCapturer interface {
	Capture() (image.Image, error)
}

// Runner executes the capture pipeline for one symbol at a time.
type Runner struct {
	Config  *config.Config
	Windows WindowManager
	Input   InputDriver
	Screen  ScreenCapturer

	duplicates *capture.SimilarityIndex
}

// NewRunner wires a Runner to the real desktop backends.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		Config:     cfg,
		Windows:    window.NewManager(),
		Input:      input.NewDriver(cfg),
		Screen:     capture.NewScreen(cfg.Region),
		duplicates: capture.NewSimilarityIndex(cfg.DuplicateThreshold),
	}
}

// TakeScreenshot runs the full pipeline for one symbol and returns the
// path of the saved image. An empty symbol captures whatever page the
// browser currently shows, without navigating.
func (r *Runner) TakeScreenshot(symbol string) (string, error) {
	cfg := r.Config
	path := OutputPath(cfg.OutputDir, cfg.FilenamePrefix, symbol, cfg.FilenameSuffix)

	log.Infof("Finding %q window...", cfg.WindowKeyword)
	if _, err := r.Windows.FindAndFocus(cfg.WindowKeyword, cfg.BrowserKeywords); err != nil {
		return "", fmt.Errorf("window not found: %w", err)
	}
	time.Sleep(cfg.SettleDelay)

	if symbol != "" {
		r.Input.Navigate(cfg.QuoteURL(symbol))
	}

	r.Input.ClickCenter()
	r.Input.ScrollPage()

	img, err := r.captureWithRetry()
	if err != nil {
		return "", err
	}

	if cfg.AvoidDuplicates {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			log.Warnf("Could not encode image for duplicate check: %v", err)
		} else if r.duplicates.IsDuplicate(buf.Bytes()) {
			log.Infof("Not saving %s: matches an earlier capture", path)
			return "", ErrDuplicate
		}
	}

	if !cfg.NoCaption {
		img = capture.Imprint(img, caption(symbol, cfg.WindowKeyword))
	}

	if err := capture.SavePNG(img, path); err != nil {
		return "", fmt.Errorf("save screenshot: %w", err)
	}

	log.Infof("Saved: %s", path)
	return path, nil
}

// captureWithRetry captures the screen up to MaxRetries times, refreshing
// the page between attempts while the result scores as blank. The last
// capture is returned even if it is still blank.
func (r *Runner) captureWithRetry() (image.Image, error) {
	cfg := r.Config

	var img image.Image
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		log.Infof("Capture attempt %d/%d", attempt, cfg.MaxRetries)

		var err error
		img, err = r.Screen.Capture()
		if err != nil {
			return nil, fmt.Errorf("capture screen: %w", err)
		}

		if !capture.IsBlank(img, cfg.BlankThreshold) {
			return img, nil
		}

		log.Warn("Blank screen detected")
		if attempt < cfg.MaxRetries {
			log.Infof("Refreshing page, waiting %s", cfg.RefreshWait)
			r.Input.Refresh()
		}
	}

	log.Warn("Still blank after retries, saving anyway")
	return img, nil
}

// OutputPath builds the deterministic save location for a capture:
// <dir>[/<symbol>]/<prefix>_[<symbol>_]<suffix>.png
func OutputPath(dir, prefix, symbol, suffix string) string {
	name := prefix + "_"
	if symbol != "" {
		dir = filepath.Join(dir, symbol)
		name += symbol + "_"
	}
	return filepath.Join(dir, name+suffix+".png")
}

func caption(symbol, fallback string) string {
	label := symbol
	if label == "" {
		label = fallback
	}
	return label + " " + time.Now().Format("2006-01-02 15:04:05")
}
