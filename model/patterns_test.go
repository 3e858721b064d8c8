package model

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestPatternIndices(t *testing.T) {
	g := mustGrid(t, 5)
	tests := []struct {
		name     string
		row, col int
		want     []int
	}{
		{"glider", 0, 0, []int{1, 7, 10, 11, 12}},
		{"blinker", 2, 1, []int{11, 12, 13}},
		{"block", 3, 3, []int{18, 19, 23, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.PatternIndices(tt.name, tt.row, tt.col)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := g.PatternIndices("block", 4, 4); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("block off the edge err = %v", err)
	}
	if _, err := g.PatternIndices("spaceship", 0, 0); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("unknown pattern err = %v", err)
	}
	if names := PatternNames(); !slices.Equal(names, []string{"blinker", "block", "glider"}) {
		t.Fatalf("PatternNames = %v", names)
	}
}

func TestGliderTravels(t *testing.T) {
	g := mustGrid(t, 8)
	start, _ := g.PatternIndices("glider", 0, 0)
	g, err := g.WithAlive(start...)
	if err != nil {
		t.Fatal(err)
	}
	for range 4 {
		g = g.Step()
	}

	want, _ := g.PatternIndices("glider", 1, 1)
	if got := aliveIndices(g); !slices.Equal(got, want) {
		t.Fatalf("after 4 steps got %v, want %v", got, want)
	}
}

func TestWithAlive(t *testing.T) {
	g := mustGrid(t, 4)
	if g.GetDimension() != 4 {
		t.Fatalf("GetDimension = %d, want 4", g.GetDimension())
	}

	old, _ := g.WithAlive(5, 6, 9)
	old = old.Step() // 5, 6, 9 survive as old cells, 10 is born

	next, err := old.WithAlive(5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := next.Cell(5); !c.Alive || c.Newborn {
		t.Fatalf("already alive cell changed: %+v", c)
	}
	if c, _ := next.Cell(0); !c.Alive || !c.Newborn {
		t.Fatalf("placed cell = %+v, want alive newborn", c)
	}
	if c, _ := old.Cell(0); c.Alive {
		t.Fatal("WithAlive mutated the source grid")
	}

	if _, err := old.WithAlive(1, 16); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("WithAlive(1, 16) err = %v", err)
	}
}
