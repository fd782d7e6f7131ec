package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickhero/internal/config"
	"github.com/vovakirdan/stickhero/internal/stick"
	"github.com/vovakirdan/stickhero/internal/storage"
)

// NewGame creates a game wired to the score database. The best score is read
// and written through store; a finished game with a positive score is added
// to the history. store may be nil.
func NewGame(cfg config.StickConfig, seed int64, store *storage.Store, logger *log.Logger) *stick.Game {
	if logger == nil {
		logger = log.Default()
	}

	return stick.New(cfg, seed,
		stick.WithMaxScoreStore(storage.NewBestScore(store, stick.ID, logger)),
		stick.WithScoreObserver(func(score, maxScore int) {
			logger.Debug("Score changed", "score", score, "max", maxScore)
		}),
		stick.WithGameOverObserver(func(score, maxScore int) {
			logger.Info("Game over", "score", score, "max", maxScore)
			if store == nil || score <= 0 {
				return
			}
			if _, err := store.SaveScore(stick.ID, score); err != nil {
				logger.Error("Cannot save score", "score", score, "error", err)
			}
		}),
	)
}
