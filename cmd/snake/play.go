package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/rawterm"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagRaw bool

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme, err := cfg.GameTheme()
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	logger, closeLog, err := cfg.Log.Logger("snake")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size, falling back to the classic 80x24
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	if flagRaw {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		err = rawterm.Play(ctx, rc, rawterm.Options{
			Theme:  theme,
			Bell:   cfg.Bell,
			Logger: logger,
		})
	} else {
		err = tui.Run(rc, tui.Options{
			Theme:  theme,
			Bell:   cfg.Bell,
			Logger: logger,
		})
	}
	if err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

