package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	nineOClock = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tenOClock  = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
)

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "budgets", max: 20, want: "budgets"},
		{in: "job_applications", max: 10, want: "job_app..."},
		{in: "abcdef", max: 2, want: "ab"},
		{in: "бюджеты", max: 5, want: "бю..."},
		{in: "any", max: 0, want: "any"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fitText(tt.in, tt.max), tt.in)
	}
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "-", formatAge(time.Time{}, tenOClock))
	assert.Equal(t, "1h0m0s", formatAge(nineOClock, tenOClock))
	assert.Equal(t, "0s", formatAge(tenOClock.Add(time.Minute), tenOClock), "clock skew is not negative")
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "never", formatTime(nil))
	zero := time.Time{}
	assert.Equal(t, "never", formatTime(&zero))
	assert.Equal(t, tenOClock.Local().Format(time.DateTime), formatTime(&tenOClock))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "q: quit")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "q: quit")
	assert.Contains(t, page, "ctrl+c: quit")

	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}
