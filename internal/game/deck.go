package game

import (
	"math"
	"math/big"
	"math/rand"
	"regexp"
	"strings"
)

// Card identifies one of the 52 cards in a single deck.
// Rank is id mod 13 (0 = ace), suit is id div 13.
type Card int

// DeckSize is the number of cards in a single deck.
const DeckSize = 52

// seedSpace bounds the normalized shuffle seed to [0, 1e6) in absolute value.
const seedSpace = 1_000_000

func (c Card) Rank() int { return int(c) % 13 }
func (c Card) Suit() int { return int(c) / 13 }

// Value is the card's blackjack value with aces counted high.
func (c Card) Value() int {
	r := c.Rank()
	switch {
	case r == 0:
		return 11
	case r >= 10:
		return 10
	default:
		return r + 1
	}
}

// integerSeed matches decimal integers; a trailing "n" is tolerated because
// clients forward chain-side values as BigInt literals.
var integerSeed = regexp.MustCompile(`^-?[0-9]+n?$`)

// NormalizeSeed reduces a caller-supplied seed to the shuffle's seed space.
// Anything that is not a decimal integer falls back to a fresh random seed,
// so a malformed seed degrades to an unpredictable shuffle instead of an
// error. Integer seeds of any magnitude are reduced with a truncated
// remainder, keeping the dividend's sign.
func NormalizeSeed(input string) int64 {
	if !integerSeed.MatchString(input) {
		return rand.Int63n(seedSpace)
	}
	n, ok := new(big.Int).SetString(strings.TrimSuffix(input, "n"), 10)
	if !ok {
		return rand.Int63n(seedSpace)
	}
	return new(big.Int).Rem(n, big.NewInt(seedSpace)).Int64()
}

// Shuffle returns the full deck permuted by the normalized seed. The same
// seed always yields the same permutation, which is what lets anyone replay
// a round from the committed randomness.
func Shuffle(seedInput string) []Card {
	return shuffleSeed(NormalizeSeed(seedInput))
}

// shuffleSeed runs a Fisher-Yates pass from the tail using a sine-derived
// swap index. The PRNG is deliberately primitive: it only has to be
// reproducible bit-for-bit under IEEE-754 doubles, not strong.
func shuffleSeed(seed int64) []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}

	for m := DeckSize; m > 0; m-- {
		frac := math.Mod(math.Sin(float64(seed)+float64(m))*10000, 1)
		i := int(math.Floor(frac * float64(m)))
		if i < 0 {
			i = -i
		}
		// frac near -1 can floor to -m; keep the swap index inside the
		// unshuffled prefix so the result stays a permutation.
		if i >= m {
			i = m - 1
		}
		deck[m-1], deck[i] = deck[i], deck[m-1]
	}
	return deck
}
