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

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.Cell(x, y); c.Rune != ' ' || c.Fg != (RGB{}) {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	green := RGB{G: 255}
	s.Set(5, 5, 'X', green)
	if c := s.Cell(5, 5); c.Rune != 'X' || c.Fg != green {
		t.Errorf("Cell(5, 5) = %+v, expected 'X' in green", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', green)  // Should not panic
	s.Set(100, 0, 'A', green) // Should not panic
	s.Set(0, -1, 'A', green)  // Should not panic
	s.Set(0, 100, 'A', green) // Should not panic

	// Out of bounds get should return a blank cell
	if s.Rune(-1, 0) != ' ' {
		t.Error("Out of bounds Cell should be blank")
	}
	if s.Rune(100, 0) != ' ' {
		t.Error("Out of bounds Cell should be blank")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X', RGB{R: 255})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.Cell(x, y); c.Rune != ' ' || c.Fg != (RGB{}) {
				t.Errorf("Clear should blank all cells, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	blue := RGB{B: 255}
	s.Set(3, 3, 'X', blue)
	s.Set(9, 9, 'Y', blue)

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Fatalf("Resize(5, 5) gave %dx%d", s.Width(), s.Height())
	}
	if c := s.Cell(3, 3); c.Rune != 'X' || c.Fg != blue {
		t.Errorf("content inside new bounds should survive, got %+v", c)
	}

	// Growing again: truncated content is gone, new cells are blank
	s.Resize(12, 12)
	if s.Rune(9, 9) != ' ' {
		t.Error("content outside old bounds should be blank after growing")
	}
	if c := s.Cell(3, 3); c.Rune != 'X' {
		t.Errorf("surviving content lost on grow, got %+v", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', RGB{})
	s.Set(2, 1, 'b', RGB{})

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if !strings.HasPrefix(s.Row(1), "  b") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(99) != "   " {
		t.Errorf("out-of-range Row should be blank, got %q", s.Row(99))
	}
}
