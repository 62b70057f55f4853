package upgrades

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/sim"
)

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 15 * time.Second

// Service wraps a source and absorbs every failure. Offer never returns an
// empty set, so a level-up pause always ends.
type Service struct {
	source  registry.Source
	timeout time.Duration
	logger  *log.Logger
	now     func() time.Time
}

// NewService creates a service around source. A nil source always yields the
// fallback set; a nil logger discards output.
func NewService(source registry.Source, timeout time.Duration, logger *log.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{source: source, timeout: timeout, logger: logger, now: time.Now}
}

// SourceID returns the ID of the wrapped source, or "fallback".
func (s *Service) SourceID() string {
	if s.source == nil {
		return Static{}.ID()
	}
	return s.source.ID()
}

// Offer returns the cards for a level-up. There is no retry: any error,
// timeout or unusable response is logged and replaced by the fallback set.
func (s *Service) Offer(ctx context.Context, level int, bossReward bool) []sim.UpgradeCard {
	if s.source == nil {
		return Fallback(bossReward)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	cards, err := s.source.Generate(ctx, level, bossReward)
	if err == nil {
		cards, err = s.normalize(cards)
	}
	if err != nil {
		s.logger.Warn("upgrade generation failed, using fallback",
			"source", s.source.ID(), "level", level, "boss", bossReward, "err", err)
		return Fallback(bossReward)
	}

	s.logger.Debug("upgrades generated",
		"source", s.source.ID(), "level", level, "boss", bossReward,
		"cards", len(cards), "took", s.now().Sub(start))
	return cards
}

// normalize drops cards the simulation cannot apply, fills in missing ids,
// rarities and elements, and caps the offer size.
func (s *Service) normalize(cards []sim.UpgradeCard) ([]sim.UpgradeCard, error) {
	stamp := s.now().UnixMilli()
	out := make([]sim.UpgradeCard, 0, cardsPerOffer)
	for _, c := range cards {
		if len(out) == cardsPerOffer {
			break
		}
		if !c.Kind.Valid() || c.Name == "" {
			continue
		}
		if c.Kind != sim.UpgradeElemental && c.Value <= 0 {
			continue
		}
		if !c.Rarity.Valid() {
			c.Rarity = sim.RarityCommon
		}
		if c.Kind == sim.UpgradeElemental {
			c.Element = c.ResolveElement()
		}
		if c.ID == "" {
			c.ID = fmt.Sprintf("ai-%d-%d", stamp, len(out))
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, ErrEmptyResponse
	}
	return out, nil
}
