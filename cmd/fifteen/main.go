package main

import (
	"fmt"
	"hash/maphash"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"

	"github.com/vancomm/fifteen/internal/config"
	"github.com/vancomm/fifteen/internal/fifteen"
	"github.com/vancomm/fifteen/internal/tui"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// createLogger builds the app logger. The program draws on the terminal,
// so diagnostics go to a file when FIFTEEN_LOG_FILE is set and nowhere
// otherwise.
func createLogger() (*slog.Logger, func() error) {
	var (
		w       io.Writer = io.Discard
		cleanup           = func() error { return nil }
	)
	if path := config.LogFile(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to open log file:", err)
		} else {
			w, cleanup = f, f.Close
		}
	}

	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(w, nil))
	}
	return logger, cleanup
}

func main() {
	logger, cleanup := createLogger()
	defer cleanup()

	fifteen.Log = logger

	dim := config.Dimension()
	model, err := tui.NewModel(dim, createRand(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to start a game:", err)
		os.Exit(1)
	}

	logger.Info("game on", slog.Int("dim", dim))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program crashed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
