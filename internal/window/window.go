// Package window locates and foregrounds the browser window that shows
// the target page. Enumeration and focus are OS-specific; the title
// matching is shared so it stays testable everywhere.
package window

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Window is a visible top-level OS window.
type Window struct {
	Handle    uintptr
	Title     string
	IsBrowser bool
}

// Manager finds and foregrounds browser windows.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// FindAndFocus locates a visible browser window whose title contains
// keyword, restores it if minimized and brings it to the foreground.
// It returns the window title on success.
func (m *Manager) FindAndFocus(keyword string, browserKeywords []string) (string, error) {
	all, err := enumerate()
	if err != nil {
		return "", err
	}

	matches := Match(all, keyword, browserKeywords)

	var browsers []Window
	for _, w := range matches {
		if w.IsBrowser {
			browsers = append(browsers, w)
		}
	}

	if len(browsers) == 0 {
		if len(matches) > 0 {
			log.Warnf("No browser window found with %q. Non-browser matches:", keyword)
			for _, w := range matches {
				log.Warnf("  - %s", w.Title)
			}
		} else {
			log.Warnf("No window found with %q", keyword)
		}
		return "", fmt.Errorf("no browser window matching %q", keyword)
	}

	target := browsers[0]
	log.Infof("Found window: %s", target.Title)

	if err := focus(target); err != nil {
		return "", fmt.Errorf("focus window %q: %w", target.Title, err)
	}
	return target.Title, nil
}

// Match filters windows whose title contains keyword (case-insensitive)
// and marks those whose title also mentions a known browser name.
func Match(windows []Window, keyword string, browserKeywords []string) []Window {
	keyword = strings.ToLower(keyword)

	var matches []Window
	for _, w := range windows {
		title := strings.ToLower(w.Title)
		if !strings.Contains(title, keyword) {
			continue
		}
		w.IsBrowser = false
		for _, b := range browserKeywords {
			if strings.Contains(title, strings.ToLower(b)) {
				w.IsBrowser = true
				break
			}
		}
		w.Title = SanitizeTitle(w.Title)
		matches = append(matches, w)
	}
	return matches
}

// SanitizeTitle replaces non-ASCII runes so titles print cleanly on
// consoles with legacy code pages.
func SanitizeTitle(title string) string {
	var sb strings.Builder
	for _, r := range title {
		if r < 128 {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}
