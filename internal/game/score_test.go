package game

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{"empty hand", nil, 0},
		{"blackjack", []Card{0, 25}, 21},
		{"ace forced low", []Card{0, 1, 10}, 13},
		{"two tens", []Card{12, 25}, 20},
		{"three aces", []Card{0, 13, 26}, 13},
		{"soft seventeen", []Card{0, 5}, 17},
		{"hard bust", []Card{9, 22, 8}, 29},
		{"ace rescue after hit", []Card{0, 4, 7}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.hand); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}
