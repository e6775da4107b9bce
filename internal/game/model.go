package game

import (
	"sync"
	"time"
)

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusPlayerWonBJ Status = "PLAYER_WON_BJ"
	StatusPush        Status = "PUSH"
	StatusPlayerBust  Status = "PLAYER_BUST"
	StatusDealerBust  Status = "DEALER_BUST"
	StatusDealerWon   Status = "DEALER_WON"
	StatusPlayerWon   Status = "PLAYER_WON"
)

func (s Status) Terminal() bool { return s != StatusActive }

// Session is one blackjack round. All fields are guarded by mu once the
// session is in the store; deck and hands together always cover the full
// 52-card deck with no overlap.
type Session struct {
	mu sync.Mutex

	ID         string
	Player     string
	Bet        int64
	Deck       []Card
	PlayerHand []Card
	DealerHand []Card
	Status     Status
	FinishedAt time.Time
}

// pop deals the next card off the tail of the deck.
func (s *Session) pop() Card {
	c := s.Deck[len(s.Deck)-1]
	s.Deck = s.Deck[:len(s.Deck)-1]
	return c
}

type StartRequest struct {
	GameID string
	Player string
	Bet    int64
	Seed   string
}

// StartView is the response to a start that leaves the round active. Only
// the dealer's first card is exposed; DealerScore counts that card alone.
type StartView struct {
	GameID            string `json:"gameId"`
	PlayerHand        []Card `json:"playerHand"`
	DealerVisibleCard Card   `json:"dealerVisibleCard"`
	PlayerScore       int    `json:"playerScore"`
	DealerScore       int    `json:"dealerScore"`
	Status            Status `json:"status"`
}

// HitView is the response to a hit that leaves the round active.
type HitView struct {
	PlayerHand        []Card `json:"playerHand"`
	PlayerScore       int    `json:"playerScore"`
	DealerVisibleCard Card   `json:"dealerVisibleCard"`
	Card              Card   `json:"card"`
	Status            Status `json:"status"`
}

// TerminalView reveals the whole round. Signature is null when the payout
// is zero; the signer is never asked to attest a losing round.
type TerminalView struct {
	Status      Status  `json:"status"`
	DealerHand  []Card  `json:"dealerHand"`
	PlayerHand  []Card  `json:"playerHand"`
	DealerScore int     `json:"dealerScore"`
	PlayerScore int     `json:"playerScore"`
	Payout      int64   `json:"payout"`
	Signature   *string `json:"signature"`
}

// FinishedEvent is published on the bus when a round reaches a terminal
// state.
type FinishedEvent struct {
	GameID string        `json:"gameId"`
	Player string        `json:"player"`
	Result *TerminalView `json:"result"`
}
