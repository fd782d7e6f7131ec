package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stickhero/internal/core"
	"github.com/vovakirdan/stickhero/internal/logging"
	"github.com/vovakirdan/stickhero/internal/platform/tui"
	"github.com/vovakirdan/stickhero/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Stick Hero",
	Long: `Start a game in this terminal.

Controls:
  Space/Enter   - Start stretching, press again to drop the stick
                  (tap, do not hold: key repeat counts as the second press)
  Mouse button  - Hold to stretch, release to drop
  R             - Restart
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Short gaps, wide platforms
  normal - The classic ranges
  hard   - Long gaps, narrow platforms

Examples:
  stickhero play
  stickhero play --difficulty easy
  stickhero play --config ./my-stickhero.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.stickhero/stickhero.log", "Log file (the terminal belongs to the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logPath, err := storage.ExpandPath(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := logging.New(logFile, "stickhero", flagLogLevel)

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("Playing without persistence", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("Game started", "seed", rc.Seed, "difficulty", flagDifficulty)
	game := tui.NewGame(gameCfg, rc.Seed, store, logger)
	runErr := tui.Run(tui.NewModel(game, gameCfg.Loop.MaxFrameMs, rc, logger))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("Game crashed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		logFile.Close()
		os.Exit(1)
	}
}
