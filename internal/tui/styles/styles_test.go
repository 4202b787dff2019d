package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "Spring Web", TruncateWithEllipsis("Spring Web", 20))
	assert.Equal(t, "Spring...", TruncateWithEllipsis("Spring Boot DevTools", 9))
	assert.Equal(t, "Spr", TruncateWithEllipsis("Spring", 3))
	assert.Equal(t, "", TruncateWithEllipsis("Spring", 0))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, cursor, size    int
		wantStart, wantEnd int
	}{
		{"fits", 5, 2, 10, 0, 5},
		{"top", 50, 0, 10, 0, 10},
		{"middle", 50, 25, 10, 20, 30},
		{"bottom", 50, 49, 10, 40, 50},
		{"unbounded", 50, 10, 0, 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.n, tt.cursor, tt.size)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.True(t, tt.cursor >= start && tt.cursor < end)
		})
	}
}

func TestPlainThemeHasNoEscapes(t *testing.T) {
	th := PlainTheme()
	assert.Equal(t, "Select", th.Title.Render("Select"))
	assert.Equal(t, "● OK", th.StatusBadge("ok"))
	assert.Equal(t, "───", th.Divider(3))
	assert.Empty(t, th.Divider(0))
}

func TestPlainThemeBorderUsesSingleLine(t *testing.T) {
	out := PlainTheme().Border.Render("demo")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
	assert.Contains(t, out, "│ demo │")
}

func TestDefaultThemeValueUsesGold(t *testing.T) {
	assert.Equal(t, AccentGold, DefaultTheme().Value.GetForeground())
}
