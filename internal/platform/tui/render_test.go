package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mazechase/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "##", core.ColorBlue)
	s.SetColored(2, 0, 'C', core.ColorYellow)
	s.DrawText(0, 1, "Score: 10")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"##", "C", "Score: 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
