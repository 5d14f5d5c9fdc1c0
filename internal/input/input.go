// Package input drives the focused browser through simulated keyboard
// and mouse events. Timing comes from config: browser UI has no
// completion signal, so every step waits a fixed settle period.
package input

import (
	"time"

	"github.com/go-vgo/robotgo"
	log "github.com/sirupsen/logrus"

	"github.com/mskpairprogrammer/barchart/internal/config"
)

// Driver simulates user input against whatever window holds focus.
type Driver struct {
	cfg *config.Config
}

func NewDriver(cfg *config.Config) *Driver {
	return &Driver{cfg: cfg}
}

// Navigate focuses the address bar with ctrl+l, replaces its content
// with the URL and submits it, then waits for the page to load.
func (d *Driver) Navigate(url string) {
	log.Infof("Navigating to %s", url)

	time.Sleep(300 * time.Millisecond)
	d.tap("l", "ctrl")
	time.Sleep(300 * time.Millisecond)
	d.tap("a", "ctrl")
	time.Sleep(100 * time.Millisecond)
	robotgo.TypeStr(url)
	time.Sleep(300 * time.Millisecond)
	d.tap("enter")

	log.Infof("Waiting %s for page load", d.cfg.SearchWait)
	time.Sleep(d.cfg.SearchWait)
}

// ClickCenter clicks the middle of the primary screen so the page, not
// the address bar, receives subsequent scroll events.
func (d *Driver) ClickCenter() {
	w, h := robotgo.GetScreenSize()
	robotgo.Move(w/2, h/2)
	robotgo.Click()
	time.Sleep(d.cfg.ClickWait)
}

// ScrollPage scrolls the configured number of wheel ticks. Negative
// distance scrolls down.
func (d *Driver) ScrollPage() {
	if d.cfg.ScrollCount <= 0 {
		return
	}
	log.Infof("Scrolling %dx (distance %d)", d.cfg.ScrollCount, d.cfg.ScrollDistance)
	for i := 0; i < d.cfg.ScrollCount; i++ {
		robotgo.Scroll(0, d.cfg.ScrollDistance)
		time.Sleep(d.cfg.ScrollDelay)
	}
	time.Sleep(d.cfg.PostScrollWait)
}

// Refresh reloads the page with F5 and waits for it to settle.
func (d *Driver) Refresh() {
	d.tap("f5")
	time.Sleep(d.cfg.RefreshWait)
}

func (d *Driver) tap(key string, modifiers ...interface{}) {
	if err := robotgo.KeyTap(key, modifiers...); err != nil {
		log.Warnf("Key tap %q failed: %v", key, err)
	}
}
