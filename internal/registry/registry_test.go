package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/sim"
)

type stubSource struct {
	id   string
	seed int64
}

func (s stubSource) ID() string    { return s.id }
func (s stubSource) Title() string { return "Stub " + s.id }
func (s stubSource) Generate(context.Context, int, bool) ([]sim.UpgradeCard, error) {
	return []sim.UpgradeCard{{ID: "x", Kind: sim.UpgradeDamage, Value: float64(s.seed)}}, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func(cfg SourceConfig) Source { return stubSource{id: "stub-a", seed: cfg.Seed} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false, expected true")
	}

	src, err := Create("stub-a", SourceConfig{Seed: 9})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	cards, err := src.Generate(context.Background(), 2, false)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if cards[0].Value != 9 {
		t.Errorf("config not passed to factory: value = %f, expected 9", cards[0].Value)
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("List() does not include stub-a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", SourceConfig{}); err == nil {
		t.Error("Create() should fail for an unknown source")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() = true for an unknown source")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(SourceConfig) Source { return stubSource{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate ID")
		}
	}()
	Register("stub-dup", func(SourceConfig) Source { return stubSource{id: "stub-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func(SourceConfig) Source { return stubSource{id: "stub-z"} })
	Register("stub-m", func(SourceConfig) Source { return stubSource{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
