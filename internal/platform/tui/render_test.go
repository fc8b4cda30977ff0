package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/biomass/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "grow", core.ColorBrightGreen)
	s.DrawText(5, 0, "more")
	s.DrawTextColored(0, 1, "ok", core.Color(200)) // Unknown colors render plain

	out := RenderScreen(s)
	for _, want := range []string{"grow", "more", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lost %q: %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, want 1", got)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{30, time.Second / 30},
		{10, 100 * time.Millisecond},
		{0, time.Second / 30},
		{-5, time.Second / 30},
	}

	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}
