package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/sim"
	"github.com/vovakirdan/tui-survivor/internal/storage"
	"github.com/vovakirdan/tui-survivor/internal/upgrades"
)

var (
	flagTicks  int
	flagRuns   int
	flagRecord bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run autopiloted simulations",
	Long: `Run the simulation without a terminal UI. An autopilot moves the
player away from enemies and toward experience orbs, and picks upgrade
cards on its own. Each run prints its result and a state digest; runs with
the same seed, config and upgrade source produce the same digest.

Examples:
  survivor headless
  survivor headless --runs 10 --seed 1
  survivor headless --ticks 36000 --difficulty hard --record`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 18000, "Maximum ticks per run")
	headlessCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	headlessCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished runs to the run history")
}

// runReport is the outcome of one headless run.
type runReport struct {
	Seed   int64
	Ticks  int
	Phase  sim.Phase
	Level  int
	Score  int
	Kills  int
	Bosses int
	Clock  string
	Digest uint64
	Frames uint64
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 || flagRuns <= 0 {
		return errors.New("--ticks and --runs must be positive")
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	fmt.Printf("  %-20s  %-6s  %-8s  %-5s  %-6s  %-6s  %-9s  %s\n",
		"Seed", "Time", "Score", "Level", "Kills", "Bosses", "Result", "Digest")
	for i := range flagRuns {
		seed := base + int64(i)
		svc, err := newService(seed, logger)
		if err != nil {
			return err
		}

		rep, err := simulate(ctx, cfg, seed, flagTicks, flagFPS, svc, logger)
		if err != nil {
			return err
		}

		result := "survived"
		if rep.Phase == sim.PhaseGameOver {
			result = "died"
		}
		fmt.Printf("  %-20d  %-6s  %-8d  %-5d  %-6d  %-6d  %-9s  %016x\n",
			rep.Seed, rep.Clock, rep.Score, rep.Level, rep.Kills, rep.Bosses, result, rep.Digest)

		if store != nil {
			_, err := store.SaveRun(storage.Run{
				Score:      rep.Score,
				Level:      rep.Level,
				Kills:      rep.Kills,
				Bosses:     rep.Bosses,
				GameTime:   rep.Frames,
				Seed:       rep.Seed,
				Difficulty: string(preset),
				Source:     svc.SourceID(),
			})
			if err != nil {
				logger.Warn("cannot save run", "seed", rep.Seed, "err", err)
			}
		}
	}
	return nil
}

// simulate plays one autopiloted run until the player dies or ticks have run.
func simulate(ctx context.Context, cfg config.SurvivorConfig, seed int64, ticks, fps int,
	svc *upgrades.Service, logger *log.Logger,
) (runReport, error) {
	var frame sim.Snapshot
	eng := sim.NewEngine(cfg, core.RuntimeConfig{TickRate: fps, Seed: seed},
		sim.WithFrameSink(func(s sim.Snapshot) { frame = s }),
		sim.WithSummarySink(func(s sim.Summary) {
			logger.Debug("summary", "seed", seed, "hp", s.HP, "level", s.Level, "xp", s.XP, "score", s.Score)
		}),
		sim.WithPhaseSink(func(from, to sim.Phase) {
			logger.Debug("phase changed", "seed", seed, "from", from, "to", to)
		}),
	)
	if err := eng.Start(); err != nil {
		return runReport{}, err
	}
	frame = eng.Snapshot()

	pilot := newAutopilot()
	in := core.NewInputFrame()
	ran := 0

loop:
	for ran < ticks {
		if err := ctx.Err(); err != nil {
			return runReport{}, err
		}

		switch eng.Phase() {
		case sim.PhaseGameOver:
			break loop
		case sim.PhaseLevelUp:
			if err := levelUp(ctx, eng, svc, logger); err != nil {
				return runReport{}, err
			}
			continue
		}

		in.Stick = pilot.Steer(frame)
		if res := eng.Step(in); res.Ran {
			ran++
		}
	}

	snap := eng.Snapshot()
	digest, err := snap.Digest()
	if err != nil {
		return runReport{}, err
	}
	return runReport{
		Seed:   seed,
		Ticks:  ran,
		Phase:  snap.Phase,
		Level:  snap.Player.Level,
		Score:  snap.Score,
		Kills:  snap.Kills,
		Bosses: snap.Bosses,
		Clock:  snap.GameClock(fps),
		Digest: digest,
		Frames: snap.GameTime,
	}, nil
}

// levelUp fetches cards for the pending level-up and applies the
// autopilot's choice, falling back to the other cards if it is rejected.
func levelUp(ctx context.Context, eng *sim.Engine, svc *upgrades.Service, logger *log.Logger) error {
	req := eng.PendingUpgrade()
	if req == nil {
		return sim.ErrNotLevelingUp
	}
	cards := svc.Offer(ctx, req.Level, req.BossReward)

	player := eng.Snapshot().Player
	for _, card := range rankCards(cards, player) {
		err := eng.ApplyUpgrade(card)
		if err == nil {
			logger.Debug("upgrade applied", "level", req.Level, "card", card.Name, "kind", card.Kind, "value", card.Value)
			return nil
		}
		logger.Warn("upgrade rejected", "card", card.Name, "kind", card.Kind, "err", err)
	}
	return fmt.Errorf("level %d: no applicable upgrade among %d cards", req.Level, len(cards))
}
