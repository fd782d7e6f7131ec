// stickhero is the Stick Hero arcade game for the terminal.
//
// Usage:
//
//	stickhero play     - Play in this terminal
//	stickhero scores   - Show the score history
//	stickhero serve    - Start SSH server for remote play
//	stickhero config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frame rate while animating (default: 60)
//	--seed <value>        - RNG seed for a reproducible layout
//	--db <path>           - Database path (default: ~/.stickhero/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickhero/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stickhero",
	Short: "Stick Hero - stretch, drop, walk, repeat",
	Long: `Stick Hero in your terminal. Stretch a stick to the right length,
drop it across the gap and walk to the next platform. Miss, and the
hero falls.

Available commands:
  play     - Play in this terminal
  scores   - Show the score history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  stickhero play
  stickhero play --difficulty hard
  stickhero play --seed 42
  stickhero serve --ssh :2222
  stickhero scores --tui`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate while animating")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stickhero/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game configuration from the global flags.
func loadConfig() (config.StickConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.StickConfig{}, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.StickConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}
