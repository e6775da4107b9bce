package audit

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bj-oracle/internal/logger"
)

// Service keeps the append-only trail of terminal rounds. The signature
// column holds the exact attestation handed to the player, so a disputed
// settlement can be replayed from here.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Record(gameID, player, status string, payout int64, signature string) {
	ref := uuid.New().String()

	_, err := s.db.Exec(`
	INSERT INTO attestations(ref,game_id,player,status,payout,signature,ts)
	VALUES (?,?,?,?,?,?,?)
	`, ref, gameID, player, status, payout, signature, time.Now().Unix())

	if err != nil {
		logger.Log.Warn("audit write failed", zap.String("game_id", gameID), zap.Error(err))
	}
}
