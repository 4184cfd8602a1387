// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play in the current terminal
//	snake --raw              - Play with the plain raw-mode driver
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a config YAML file
//	--seed <value>   - Set RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake with the arrow keys, eat the food and avoid the walls
and your own tail.

Controls:
  Arrow keys  - Steer (the first arrow starts the game)
  P           - Pause/Resume
  Q/Ctrl+C    - Quit

Examples:
  snake
  snake --seed 42
  snake --raw
  snake --config ./my-snake.yaml
  snake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagRaw, "raw", false, "Use the plain raw-mode terminal driver")

	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration named by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
