package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stickhero/internal/platform/tui"
	"github.com/vovakirdan/stickhero/internal/stick"
	"github.com/vovakirdan/stickhero/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the top 10 finished games and the best score.

Examples:
  stickhero scores
  stickhero scores --tui
  stickhero scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the full history in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and the best score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(stick.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printScores writes the best score and the top 10 history rows. The best
// score is read first because a game quit before its fall has a best score
// but no history row.
func printScores(w io.Writer, store *storage.Store) error {
	scores, err := store.TopScores(stick.ID, 10)
	if err != nil {
		return err
	}

	// The history maximum covers databases written before best scores
	// were stored separately.
	best, ok, err := store.ReadBest(stick.ID)
	if err != nil || !ok {
		best, err = store.HighScore(stick.ID)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "High Scores - %s\n", stick.Title)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No finished games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'stickhero play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}
	return nil
}
