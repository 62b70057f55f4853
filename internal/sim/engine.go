package sim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Hooks receive engine output. Nil hooks are skipped.
type Hooks struct {
	Frame   func(Snapshot)       // Every tick that ran
	Summary func(Summary)        // Every summary interval
	Phase   func(from, to Phase) // Every phase transition
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource injects the random source. Defaults to a SimpleRNG seeded from
// the runtime config, or from the clock when the seed is zero.
func WithSource(src core.Source) Option {
	return func(e *Engine) { e.rng = src }
}

// WithFrameSink registers the per-tick snapshot consumer.
func WithFrameSink(fn func(Snapshot)) Option {
	return func(e *Engine) { e.hooks.Frame = fn }
}

// WithSummarySink registers the sampled HUD summary consumer.
func WithSummarySink(fn func(Summary)) Option {
	return func(e *Engine) { e.hooks.Summary = fn }
}

// WithPhaseSink registers the lifecycle consumer.
func WithPhaseSink(fn func(from, to Phase)) Option {
	return func(e *Engine) { e.hooks.Phase = fn }
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Ran     bool            // False when the phase does not tick
	Phase   Phase           // Phase after the step
	Summary *Summary        // Set on summary frames
	LevelUp *UpgradeRequest // Set on the tick that triggered a level-up
}

// Engine is the tick orchestrator. It owns the world exclusively; callers
// observe it only through snapshots and summaries.
type Engine struct {
	cfg   config.SurvivorConfig
	rt    core.RuntimeConfig
	rng   core.Source
	hooks Hooks

	world   *World
	phase   Phase
	pending *UpgradeRequest

	spawner     *Spawner
	status      *StatusEngine
	ai          *EnemyAI
	combat      *Combat
	progression *Progression
}

// NewEngine builds a world in the Menu phase.
func NewEngine(cfg config.SurvivorConfig, rt core.RuntimeConfig, opts ...Option) *Engine {
	e := &Engine{cfg: cfg, rt: rt, phase: PhaseMenu}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := rt.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = core.NewSimpleRNG(seed)
	}

	e.world = NewWorld(cfg, e.rng)
	e.spawner = NewSpawner(cfg.Spawner, e.world, e.rng)
	e.status = NewStatusEngine(cfg.Combat)
	e.ai = NewEnemyAI(cfg.Combat)
	e.combat = NewCombat(cfg.Combat, e.rng)
	e.progression = NewProgression(cfg.Progression)
	return e
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Start leaves the menu and begins ticking.
func (e *Engine) Start() error {
	return e.transition(PhasePlaying)
}

// PendingUpgrade returns the outstanding level-up request, or nil.
func (e *Engine) PendingUpgrade() *UpgradeRequest {
	if e.pending == nil {
		return nil
	}
	req := *e.pending
	return &req
}

// ApplyUpgrade consumes card for the pending level-up and resumes play.
func (e *Engine) ApplyUpgrade(card UpgradeCard) error {
	if e.phase != PhaseLevelUp || e.pending == nil {
		return ErrNotLevelingUp
	}
	if err := e.progression.Apply(&e.world.Player, card); err != nil {
		return err
	}
	e.pending = nil
	return e.transition(PhasePlaying)
}

// Snapshot returns a copy of the world for rendering.
func (e *Engine) Snapshot() Snapshot {
	var state uint64
	if s, ok := e.rng.(interface{ State() uint64 }); ok {
		state = s.State()
	}
	return snapshotOf(e.world, e.phase, state)
}

// Summary returns the HUD summary for the current state.
func (e *Engine) Summary() Summary {
	return summaryOf(e.world)
}

// Step advances the simulation by one tick. Outside Playing it does nothing.
func (e *Engine) Step(in core.InputFrame) StepResult {
	if e.phase != PhasePlaying {
		return StepResult{Phase: e.phase}
	}

	w := e.world
	if w.Player.HP <= 0 {
		_ = e.transition(PhaseGameOver)
		return StepResult{Phase: e.phase}
	}

	w.Frame++
	w.GameTime++

	e.movePlayer(in)
	e.spawner.Update(w)
	e.status.Update(w, e.combat)
	e.ai.Update(w)
	e.combat.Update(w)
	req := e.progression.Update(w)
	w.ageTexts()

	res := StepResult{Ran: true}
	if w.Frame%uint64(e.cfg.Feedback.SummaryInterval) == 0 { //#nosec G115 -- validated positive
		sum := summaryOf(w)
		res.Summary = &sum
		if e.hooks.Summary != nil {
			e.hooks.Summary(sum)
		}
	}

	if req != nil {
		e.pending = req
		_ = e.transition(PhaseLevelUp)
		res.LevelUp = e.PendingUpgrade()
	}

	if e.hooks.Frame != nil {
		e.hooks.Frame(e.Snapshot())
	}
	res.Phase = e.phase
	return res
}

func (e *Engine) movePlayer(in core.InputFrame) {
	p := &e.world.Player
	dir := in.Direction()
	if dir.IsZero() {
		return
	}
	p.Pos = e.world.Bounds.Clamp(p.Pos.Add(dir.Scale(p.Speed)))
}

func (e *Engine) transition(to Phase) error {
	from := e.phase
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	e.phase = to
	if e.hooks.Phase != nil {
		e.hooks.Phase(from, to)
	}
	return nil
}
