package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickhero/internal/stick"
)

// BestScore adapts a Store to stick.MaxScoreStore for one game.
// Database errors are logged and otherwise ignored: the game keeps running
// without persistence.
type BestScore struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewBestScore creates the adapter. A nil store reads as "nothing stored"
// and drops writes; a nil logger uses the default logger.
func NewBestScore(store *Store, gameID string, logger *log.Logger) *BestScore {
	if logger == nil {
		logger = log.Default()
	}
	return &BestScore{store: store, gameID: gameID, logger: logger}
}

// ReadMaxScore implements stick.MaxScoreStore.
func (b *BestScore) ReadMaxScore() (int, bool) {
	if b.store == nil {
		return 0, false
	}
	score, ok, err := b.store.ReadBest(b.gameID)
	if err != nil {
		b.logger.Error("Cannot read best score", "game", b.gameID, "error", err)
		return 0, false
	}
	return score, ok
}

// WriteMaxScore implements stick.MaxScoreStore.
func (b *BestScore) WriteMaxScore(score int) {
	if b.store == nil {
		return
	}
	if err := b.store.WriteBest(b.gameID, score); err != nil {
		b.logger.Error("Cannot write best score", "game", b.gameID, "score", score, "error", err)
		return
	}
	b.logger.Debug("Best score saved", "game", b.gameID, "score", score)
}

// Ensure BestScore implements stick.MaxScoreStore
var _ stick.MaxScoreStore = (*BestScore)(nil)
