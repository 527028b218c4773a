// raid is a River Raid style scrolling shooter for the terminal.
//
// Usage:
//
//	raid play               - Fly a sortie in this terminal
//	raid serve              - Start SSH server for remote play
//	raid scores             - Show the high-score table
//	raid config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--difficulty <name> - Difficulty preset (easy, normal, hard, fixed)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.raid/scores.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raid",
	Short: "River Raid - fly up a scrolling river in your terminal",
	Long: `River Raid is a vertically scrolling shooter for the terminal.
Steer up a narrowing river, shoot ships, helicopters, jets and bridges,
and fly over fuel depots before the tank runs dry.

Available commands:
  play     - Fly in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  raid play
  raid play --difficulty hard --seed 42
  raid serve --ssh :2222
  raid scores
  raid config --config ./my-raid.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raid/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	}), nil
}

// openLogFile opens ~/.raid/raid.log for appending. The terminal belongs to
// the game while it runs, so local play logs go there.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".raid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "raid.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
