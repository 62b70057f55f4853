package sim

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a read-only copy of the world handed to the renderer once per tick.
// Entity slices are copies; decorations are shared because they never change.
type Snapshot struct {
	Frame       uint64
	GameTime    uint64
	Phase       Phase
	Score       int
	Kills       int
	Bosses      int
	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	Orbs        []XPOrb
	Texts       []FloatingText
	Decorations []Decoration `msgpack:"-"`
	Width       float64
	Height      float64

	// RNG state, when the source exposes it
	RNGState uint64
}

// Summary is the sampled status published for the HUD.
type Summary struct {
	HP     float64
	MaxHP  float64
	XP     float64
	XPNext float64
	Level  int
	Score  int
}

// Digest returns a stable hash of the snapshot for determinism checks.
// Two runs with the same seed, config and inputs yield equal digests.
func (s Snapshot) Digest() (uint64, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return 0, fmt.Errorf("sim: cannot encode snapshot: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64(), nil
}

// GameClock formats game time as mm:ss for a tick rate.
func (s Snapshot) GameClock(tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := s.GameTime / uint64(tickRate) //#nosec G115 -- tickRate is positive
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func snapshotOf(w *World, phase Phase, rngState uint64) Snapshot {
	return Snapshot{
		Frame:       w.Frame,
		GameTime:    w.GameTime,
		Phase:       phase,
		Score:       w.Score,
		Kills:       w.Kills,
		Bosses:      w.Bosses,
		Player:      w.Player,
		Enemies:     append([]Enemy(nil), w.Enemies...),
		Projectiles: append([]Projectile(nil), w.Projectiles...),
		Orbs:        append([]XPOrb(nil), w.Orbs...),
		Texts:       append([]FloatingText(nil), w.Texts...),
		Decorations: w.Decorations,
		Width:       w.Width,
		Height:      w.Height,
		RNGState:    rngState,
	}
}

func summaryOf(w *World) Summary {
	p := w.Player
	return Summary{
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		XP:     p.XP,
		XPNext: p.XPToNextLevel,
		Level:  p.Level,
		Score:  w.Score,
	}
}
