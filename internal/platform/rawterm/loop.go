package rawterm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures the classic driver.
type Options struct {
	Theme  snake.Theme
	Bell   bool
	Logger *log.Logger // Defaults to a discarding logger
}

// Run plays one game: every iteration reads the pending key, advances the
// game, paints the frame and sleeps for the delay the game asks for. It
// returns when the game exits, the input closes or ctx is cancelled.
func Run(ctx context.Context, in *Stream, out io.Writer, cfg core.RuntimeConfig, opts Options) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game := snake.New(cfg, opts.Theme, snake.NewRandomFood(cfg.Seed))
	opts.Logger.Info("game started", "width", cfg.ScreenW, "height", cfg.ScreenH, "seed", cfg.Seed, "driver", "raw")

	if err := Paint(out, game.Screen()); err != nil {
		return err
	}

	for {
		key := in.ReadKey(game.Accepts)
		if in.Closed() && key == core.KeyNone {
			opts.Logger.Info("input closed", game.Snapshot().KeyVals()...)
			return nil
		}

		outcome, wait := game.Advance(key)
		if outcome.Exit {
			opts.Logger.Info("game ended", game.Snapshot().KeyVals()...)
			return nil
		}
		if outcome.Died {
			opts.Logger.Info("game over", game.Snapshot().KeyVals()...)
		}

		if opts.Bell && outcome.Bell() {
			if _, err := io.WriteString(out, "\a"); err != nil {
				return fmt.Errorf("rawterm: bell: %w", err)
			}
		}
		if err := Paint(out, game.Screen()); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			opts.Logger.Info("cancelled", game.Snapshot().KeyVals()...)
			return nil
		case <-time.After(wait):
		}
	}
}

// Play takes over the terminal on stdin/stdout, runs one game sized to the
// terminal and restores the terminal on return, panics included.
func Play(ctx context.Context, cfg core.RuntimeConfig, opts Options) (err error) {
	session, err := Open(int(os.Stdin.Fd()), os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); err == nil {
			err = cerr
		}
	}()

	if w, h, serr := session.Size(); serr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	return Run(ctx, StartStream(os.Stdin), os.Stdout, cfg, opts)
}
