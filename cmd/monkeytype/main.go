// Package main provides the CLI entrypoint for monkeytype.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/monkeytype-cli/internal/config"
	"github.com/verte-zerg/monkeytype-cli/internal/model"
	"github.com/verte-zerg/monkeytype-cli/internal/session"
	"github.com/verte-zerg/monkeytype-cli/internal/stats"
	"github.com/verte-zerg/monkeytype-cli/internal/store"
	"github.com/verte-zerg/monkeytype-cli/internal/tui"
)

const maxWords = 9999

var errNotTerminal = errors.New("stdin is not a terminal: monkeytype needs raw per-keystroke input, run it in an interactive terminal")

var practiceWords string

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monkeytype",
		Short: "CLI Monkeytype - Typing Test",
		Long: `CLI Monkeytype - Typing Test

Controls:
  Type words as they appear highlighted
  Press SPACE to submit each word
  Press ESC to go back, CTRL+C to quit at any time`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}
	rootCmd.FParseErrWhitelist.UnknownFlags = true
	rootCmd.Flags().StringVarP(&practiceWords, "words", "w", "", fmt.Sprintf("number of words for the test (default %d)", session.DefaultWordCount))
	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	themes, err := config.LoadThemes()
	if err != nil {
		return fmt.Errorf("failed to load themes: %w", err)
	}

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close run history", "err", cerr)
		}
	}()

	settings := model.Settings{
		WordCount: parseWordCount(practiceWords),
		Scoring:   model.ScoringWholeWord,
	}
	machine, err := session.New(settings, themes,
		session.WithRecorder(stats.NewHistory(st)),
		session.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	program := tea.NewProgram(tui.NewModel(machine), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// parseWordCount returns the configured word count, or the default when the
// value is missing, non-numeric, non-positive or above maxWords.
func parseWordCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 || n > maxWords {
		return session.DefaultWordCount
	}
	return n
}

// normalizeArgs drops a --words/-w flag that has no value, so a dangling flag
// falls back to the default instead of failing or swallowing the next flag.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--words" || arg == "-w" {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				continue
			}
		}
		out = append(out, arg)
	}
	return out
}
