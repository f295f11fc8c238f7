// wowterm is an animated command terminal with a built-in number guessing
// game, experience points, and switchable themes.
//
// Usage:
//
//	wowterm                  - Start the terminal
//	wowterm serve            - Serve the terminal over SSH
//	wowterm themes           - List themes and their backdrops
//
// Global flags:
//
//	--theme <name>     - Starting theme: matrix, cyber or wow
//	--fps <rate>       - Backdrop redraws per second (default: from config, 20)
//	--seed <value>     - Set RNG seed for reproducible sessions
//	--config <path>    - Load a custom config YAML
//	--backdrop <name>  - Backdrop preset: calm, normal, busy, off
//	--log <path>       - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backgrounds to register them
	_ "github.com/vovakirdan/wow-terminal/internal/backgrounds/grid"
	_ "github.com/vovakirdan/wow-terminal/internal/backgrounds/rain"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagTheme    string
	flagBackdrop string
	flagLog      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wowterm",
	Short: "WOW Terminal - an animated command terminal",
	Long: `WOW Terminal is a playful command terminal drawn over an animated
backdrop. Run commands to earn XP, level up, and play a number guessing game.

Commands inside the terminal:
  help   - Show all available commands
  guess  - Start the number guessing game
  theme  - Change terminal theme (matrix/cyber/wow)
  clear  - Clear terminal screen
  about  - Show terminal information
  stats  - Show your level and XP progress

Keys:
  Enter      - Run the typed command
  Ctrl+T     - Switch theme
  PgUp/PgDn  - Scroll the transcript
  Esc/Ctrl+C - Quit

Examples:
  wowterm
  wowterm --theme cyber
  wowterm --backdrop calm --fps 10
  wowterm serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runTerminal,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Backdrop redraws per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Starting theme: matrix, cyber, wow")
	rootCmd.PersistentFlags().StringVar(&flagBackdrop, "backdrop", "", "Backdrop preset: calm, normal, busy, off")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
}
