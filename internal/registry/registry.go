// Package registry provides a global registry for upgrade sources.
// Sources register themselves in init() functions, allowing the CLI and the
// terminal host to pick one by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-survivor/internal/sim"
)

// Source produces upgrade cards for a level-up.
// Implementations may fail; callers are expected to fall back.
type Source interface {
	// ID returns a unique identifier for this source (e.g., "gemini", "catalog").
	// Used for CLI flags and run records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate returns cards for the level the player is about to reach.
	// bossReward asks for stronger cards after a boss kill.
	Generate(ctx context.Context, level int, bossReward bool) ([]sim.UpgradeCard, error)
}

// SourceConfig carries construction settings shared by all sources.
// Sources ignore fields they do not use.
type SourceConfig struct {
	Seed   int64  // Deterministic sources
	APIKey string // Remote sources; empty means read the environment
	Model  string // Remote sources; empty means the source default
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	ID    string
	Title string
}

// Factory creates a new source instance.
type Factory func(cfg SourceConfig) Source

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Panics if a source with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(SourceConfig{}).Title()
}

// List returns information about all registered sources, sorted by ID.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SourceInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a source by its ID.
func Create(id string, cfg SourceConfig) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown source %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
