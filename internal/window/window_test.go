package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var browsers = []string{"chrome", "firefox", "edge"}

func TestMatch(t *testing.T) {
	all := []Window{
		{Handle: 1, Title: "Barchart.com | AAPL - Google Chrome"},
		{Handle: 2, Title: "barchart docs - Notepad"},
		{Handle: 3, Title: "Inbox - Thunderbird"},
		{Handle: 4, Title: "BARCHART dashboard - Mozilla Firefox"},
	}

	matches := Match(all, "barchart", browsers)
	require.Len(t, matches, 3)

	assert.Equal(t, uintptr(1), matches[0].Handle)
	assert.True(t, matches[0].IsBrowser)
	assert.Equal(t, uintptr(2), matches[1].Handle)
	assert.False(t, matches[1].IsBrowser)
	assert.Equal(t, uintptr(4), matches[2].Handle)
	assert.True(t, matches[2].IsBrowser)
}

func TestMatchNoHits(t *testing.T) {
	all := []Window{{Handle: 1, Title: "Calculator"}}
	assert.Empty(t, Match(all, "barchart", browsers))
}

func TestMatchCaseInsensitiveBrowserKeywords(t *testing.T) {
	all := []Window{{Handle: 7, Title: "Barchart - CHROME"}}
	matches := Match(all, "Barchart", []string{"Chrome"})
	require.Len(t, matches, 1)
	assert.True(t, matches[0].IsBrowser)
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "plain title", SanitizeTitle("plain title"))
	assert.Equal(t, "caf? ? charts", SanitizeTitle("café ☕ charts"))
	assert.Equal(t, "", SanitizeTitle(""))
}
