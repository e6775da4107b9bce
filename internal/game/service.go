package game

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"bj-oracle/internal/event"
	"bj-oracle/internal/logger"
	"bj-oracle/internal/monitoring"
)

// signAttempts bounds retries against the signing subsystem. The digest is
// deterministic, so retrying is idempotent.
const signAttempts = 3

// Attestor signs a payout claim for the settlement layer. Only
// server-computed payouts ever reach it.
type Attestor interface {
	Attest(gameID, player string, payout *big.Int) (string, error)
}

// Service owns every session for the life of the process. Per-session
// mutexes serialize hit/stand against the same game; games never share
// mutable state with each other.
type Service struct {
	store   *Store
	signer  Attestor
	bus     *event.Bus
	shuffle func(seed string) []Card
}

func NewService(store *Store, signer Attestor, bus *event.Bus) *Service {
	return &Service{
		store:   store,
		signer:  signer,
		bus:     bus,
		shuffle: Shuffle,
	}
}

// Start shuffles a fresh deck from the seed, deals two cards to the player
// and two to the dealer, and registers the session. A natural 21 resolves
// immediately; otherwise the round stays active with the dealer's second
// card hidden.
func (s *Service) Start(req StartRequest) (*StartView, *TerminalView, error) {
	if err := validateStart(req); err != nil {
		return nil, nil, err
	}

	sess := &Session{
		ID:     req.GameID,
		Player: req.Player,
		Bet:    req.Bet,
		Deck:   s.shuffle(req.Seed),
		Status: StatusActive,
	}
	sess.PlayerHand = []Card{sess.pop(), sess.pop()}
	sess.DealerHand = []Card{sess.pop(), sess.pop()}

	// Lock before the session becomes visible in the store: a concurrent
	// hit/stand on the same gameId must not touch the hands between
	// publication and the natural-21 check below.
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.store.Put(sess); err != nil {
		return nil, nil, err
	}

	monitoring.RoundsStarted.Inc()

	logger.Log.Info("round started",
		zap.String("game_id", sess.ID),
		zap.String("player", sess.Player),
		zap.Int64("bet", sess.Bet),
	)

	playerScore := Score(sess.PlayerHand)
	if playerScore == 21 {
		if Score(sess.DealerHand) == 21 {
			sess.Status = StatusPush
		} else {
			sess.Status = StatusPlayerWonBJ
		}
		view, err := s.finish(sess)
		return nil, view, err
	}

	return &StartView{
		GameID:            sess.ID,
		PlayerHand:        sess.PlayerHand,
		DealerVisibleCard: sess.DealerHand[0],
		PlayerScore:       playerScore,
		DealerScore:       Score(sess.DealerHand[:1]),
		Status:            sess.Status,
	}, nil, nil
}

// Hit deals one card to the player. Busting ends the round; otherwise it
// stays active and the dealer hand is untouched.
func (s *Service) Hit(gameID string) (*HitView, *TerminalView, error) {
	sess, ok := s.store.Get(gameID)
	if !ok {
		return nil, nil, ErrInvalidGame
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Status != StatusActive {
		return nil, nil, ErrInvalidGame
	}

	card := sess.pop()
	sess.PlayerHand = append(sess.PlayerHand, card)

	score := Score(sess.PlayerHand)
	if score > 21 {
		sess.Status = StatusPlayerBust
		view, err := s.finish(sess)
		return nil, view, err
	}

	return &HitView{
		PlayerHand:        sess.PlayerHand,
		PlayerScore:       score,
		DealerVisibleCard: sess.DealerHand[0],
		Card:              card,
		Status:            sess.Status,
	}, nil, nil
}

// Stand ends the player's turn and plays out the dealer. The dealer draws
// below 17, and keeps drawing past 17 while still behind the player and
// under 21. Stand always terminates the round.
func (s *Service) Stand(gameID string) (*TerminalView, error) {
	sess, ok := s.store.Get(gameID)
	if !ok {
		return nil, ErrInvalidGame
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Status != StatusActive {
		return nil, ErrInvalidGame
	}

	playerScore := Score(sess.PlayerHand)
	dealerScore := Score(sess.DealerHand)

	for dealerScore < 17 || (dealerScore < playerScore && dealerScore < 21) {
		sess.DealerHand = append(sess.DealerHand, sess.pop())
		dealerScore = Score(sess.DealerHand)
	}

	switch {
	case dealerScore > 21:
		sess.Status = StatusDealerBust
	case dealerScore > playerScore:
		sess.Status = StatusDealerWon
	case dealerScore < playerScore:
		sess.Status = StatusPlayerWon
	default:
		sess.Status = StatusPush
	}

	return s.finish(sess)
}

// finish computes the payout, requests an attestation for winning rounds,
// and publishes the revealed result. Caller holds the session lock. The
// terminal status is already set and survives a signing failure: retrying
// the signature never replays the round.
func (s *Service) finish(sess *Session) (*TerminalView, error) {
	payout := payoutFor(sess.Status, sess.Bet)
	sess.FinishedAt = time.Now()

	var sig *string
	if payout > 0 {
		signed, err := s.attest(sess.ID, sess.Player, payout)
		if err != nil {
			logger.Log.Error("attestation failed",
				zap.String("game_id", sess.ID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", ErrSigning, err)
		}
		sig = &signed
	}

	view := &TerminalView{
		Status:      sess.Status,
		DealerHand:  sess.DealerHand,
		PlayerHand:  sess.PlayerHand,
		DealerScore: Score(sess.DealerHand),
		PlayerScore: Score(sess.PlayerHand),
		Payout:      payout,
		Signature:   sig,
	}

	logger.Log.Info("round finished",
		zap.String("game_id", sess.ID),
		zap.String("status", string(sess.Status)),
		zap.Int64("payout", payout),
	)

	s.bus.Publish(event.EventGameFinished, &FinishedEvent{
		GameID: sess.ID,
		Player: sess.Player,
		Result: view,
	})

	return view, nil
}

func (s *Service) attest(gameID, player string, payout int64) (string, error) {
	var err error
	for attempt := 0; attempt < signAttempts; attempt++ {
		var sig string
		sig, err = s.signer.Attest(gameID, player, big.NewInt(payout))
		if err == nil {
			return sig, nil
		}
		monitoring.SigningFailures.Inc()
	}
	return "", err
}

func validateStart(req StartRequest) error {
	// The gameId is bound into the signed digest as a uint256, so reject
	// anything that cannot be encoded that way up front.
	if id, ok := new(big.Int).SetString(req.GameID, 10); req.GameID == "" || !ok || id.Sign() < 0 {
		return &ValidationError{Field: "gameId"}
	}
	if !common.IsHexAddress(req.Player) {
		return &ValidationError{Field: "playerAddress"}
	}
	if req.Bet <= 0 {
		return &ValidationError{Field: "betAmount"}
	}
	return nil
}

func payoutFor(status Status, bet int64) int64 {
	switch status {
	case StatusPlayerWon, StatusDealerBust:
		return bet * 2
	case StatusPlayerWonBJ:
		return bet * 5 / 2
	case StatusPush:
		return bet
	default:
		return 0
	}
}
