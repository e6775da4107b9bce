package game

// Score returns the blackjack total for a hand. Aces start at 11 and are
// demoted to 1 one at a time while the total is over 21, so the result is
// the best total not exceeding 21 when such a total exists.
func Score(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		v := c.Value()
		if v == 11 {
			aces++
		}
		total += v
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
