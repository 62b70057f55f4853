// survivor is a terminal survival game: hold out against waves of enemies
// while your weapons fire on their own and every level brings a new upgrade.
//
// Usage:
//
//	survivor play             - Play in the terminal
//	survivor headless         - Run autopiloted simulations and report results
//	survivor scores           - Show the run history
//	survivor sources          - List upgrade sources
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.survivor/runs.db)
//	--config <path>       - Load a custom simulation config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--upgrades <source>   - Upgrade source: gemini, catalog, fallback
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/upgrades"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagUpgrades   string
	flagModel      string
	flagTimeout    time.Duration
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivor",
	Short: "Survivor - outlast the horde in your terminal",
	Long: `Survivor is a top-down survival game for the terminal. Move to stay
alive; attacks fire on their own at the nearest enemy. Collect experience
orbs to level up and pick one of three upgrade cards each time.

Available commands:
  play      - Play in the terminal
  headless  - Run autopiloted simulations
  scores    - View the run history
  sources   - List upgrade sources

Examples:
  survivor play
  survivor play --difficulty hard --upgrades gemini
  survivor headless --runs 5 --ticks 36000 --seed 42
  survivor scores --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survivor/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagUpgrades, "upgrades", "catalog", "Upgrade source (see 'survivor sources')")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Model for remote upgrade sources")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "upgrade-timeout", upgrades.DefaultTimeout, "Time limit for one upgrade request")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sourcesCmd)
}

// loadConfig loads the simulation config and applies the difficulty preset.
func loadConfig() (config.SurvivorConfig, config.DifficultyPreset, error) {
	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		preset = config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.SurvivorConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
	}

	cfg, err := config.LoadSurvivor(flagConfig)
	if err != nil {
		return config.SurvivorConfig{}, "", err
	}
	config.ApplySurvivorPreset(&cfg, preset)
	return cfg, preset, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "survivor",
	}), nil
}

// openLogFile opens the play log next to the run database. The terminal
// belongs to the game while it runs.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".survivor")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "survivor.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// newService builds the upgrade service for the --upgrades source.
func newService(seed int64, logger *log.Logger) (*upgrades.Service, error) {
	if !registry.Exists(flagUpgrades) {
		return nil, fmt.Errorf("unknown upgrade source %q (run 'survivor sources' to list them)", flagUpgrades)
	}
	src, err := registry.Create(flagUpgrades, registry.SourceConfig{Seed: seed, Model: flagModel})
	if err != nil {
		return nil, err
	}
	return upgrades.NewService(src, flagTimeout, logger), nil
}
