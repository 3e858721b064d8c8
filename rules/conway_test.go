package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}

		wantBirth := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBirth {
			t.Fatalf("dead cell with %d neighbors: got %v, want %v", neighbors, got, wantBirth)
		}
	}
}

func TestNextCellNewborn(t *testing.T) {
	tests := []struct {
		name        string
		alive       bool
		neighbors   int
		wantAlive   bool
		wantNewborn bool
	}{
		{"birth", false, 3, true, true},
		{"survive with two", true, 2, true, false},
		{"survive with three", true, 3, true, false},
		{"isolation", true, 1, false, false},
		{"overcrowding", true, 4, false, false},
		{"stays dead with two", false, 2, false, false},
		{"stays dead with four", false, 4, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alive, newborn := NextCell(tt.alive, tt.neighbors)
			if alive != tt.wantAlive || newborn != tt.wantNewborn {
				t.Fatalf("NextCell(%v, %d) = (%v, %v), want (%v, %v)",
					tt.alive, tt.neighbors, alive, newborn, tt.wantAlive, tt.wantNewborn)
			}
		})
	}
}
