package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}
	s.Set(5, 5, 'Y')
	if c := s.GetCell(5, 5); c.Rune != 'Y' || c.Color != ColorDefault {
		t.Errorf("Set should reset the color, got %+v", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawTextColored(2, 1, "héllo", ColorGreen)
	if got := s.Row(1); got != "  héllo             " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(3, 1); c.Rune != 'é' || c.Color != ColorGreen {
		t.Errorf("GetCell(3, 1) = %+v, expected green é", c)
	}

	// Clipped at the right edge
	s.DrawText(17, 0, "abcdef")
	if got := s.Row(0); !strings.HasSuffix(got, "abc") {
		t.Errorf("Row(0) = %q, expected clipped suffix abc", got)
	}
}

func TestScreenDrawTextAligned(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawTextCentered(0, "ab", ColorDefault)
	if got := s.Row(0); got != "    ab    " {
		t.Errorf("centered Row(0) = %q", got)
	}

	s.DrawTextRight(10, 1, "xyz", ColorDefault)
	if got := s.Row(1); got != "       xyz" {
		t.Errorf("right-aligned Row(1) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(s.Bounds(), ColorCyan)

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("box should use the given color")
	}
}

func TestScreenDrawBar(t *testing.T) {
	tests := []struct {
		fraction float64
		expected string
	}{
		{0, "░░░░░░░░░░"},
		{0.5, "█████░░░░░"},
		{1, "██████████"},
		{3, "██████████"},
		{-1, "░░░░░░░░░░"},
	}

	for _, tc := range tests {
		s := NewScreen(10, 1)
		s.DrawBar(0, 0, 10, tc.fraction, ColorGreen, ColorGray)
		if got := s.Row(0); got != tc.expected {
			t.Errorf("DrawBar(%v) = %q, expected %q", tc.fraction, got, tc.expected)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(6, 3)
	if got := s.String(); got != "abcd  \nefgh  \n      " {
		t.Errorf("grown screen = %q", got)
	}

	s.Resize(2, 1)
	if got := s.String(); got != "ab" {
		t.Errorf("shrunk screen = %q", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetColored(1, 0, '#', ColorRed)
	s.Clear()
	if c := s.GetCell(1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell after Clear() = %+v, expected blank", c)
	}
}
