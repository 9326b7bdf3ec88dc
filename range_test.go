package bitset

import "testing"

func TestAddRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint32
		wantCard   int
	}{
		{"single word", 0, 64, 64},
		{"cross word", 60, 70, 10},
		{"multiple words", 0, 200, 200},
		{"mid-word", 10, 50, 40},
		{"empty range", 100, 100, 0},
		{"inverted range", 100, 50, 0},
		{"large range", 0, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.AddRange(tt.start, tt.end)

			if c := b.Cardinality(); c != tt.wantCard {
				t.Errorf("Cardinality = %d, want %d", c, tt.wantCard)
			}
			if tt.wantCard > 0 {
				if !b.Contains(tt.start) {
					t.Errorf("expected %d to be a member", tt.start)
				}
				if !b.Contains(tt.end - 1) {
					t.Errorf("expected %d to be a member", tt.end-1)
				}
				if b.Contains(tt.end) {
					t.Errorf("expected exclusive end %d to be absent", tt.end)
				}
			}
		})
	}
}

func TestRemoveRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint32
		wantCard   int
	}{
		{"whole set", 0, 256, 0},
		{"prefix", 0, 100, 156},
		{"suffix", 100, 256, 100},
		{"mid-word", 10, 50, 216},
		{"cross word", 60, 70, 246},
		{"empty range", 5, 5, 256},
		{"past capacity", 200, 100000, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.AddRange(0, 256)
			words := len(b.words)

			b.RemoveRange(tt.start, tt.end)

			if c := b.Cardinality(); c != tt.wantCard {
				t.Errorf("Cardinality = %d, want %d", c, tt.wantCard)
			}
			if len(b.words) != words {
				t.Errorf("RemoveRange must not change the word count: %d -> %d", words, len(b.words))
			}
			if tt.start > 0 && !b.Contains(tt.start-1) {
				t.Errorf("expected %d to survive", tt.start-1)
			}
		})
	}

	// Removing from an empty set is a no-op.
	e := New()
	e.RemoveRange(0, 1000)
	if !e.IsEmpty() {
		t.Error("expected empty set to stay empty")
	}
}
