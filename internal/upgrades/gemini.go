package upgrades

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/vovakirdan/tui-survivor/internal/sim"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini asks a Gemini model for upgrade cards using a strict JSON schema.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini source. An empty apiKey falls back to the
// GEMINI_API_KEY and API_KEY environment variables.
func NewGemini(apiKey, model string) *Gemini {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{apiKey: apiKey, model: model}
}

func (g *Gemini) ID() string    { return "gemini" }
func (g *Gemini) Title() string { return "Gemini AI" }

// Generate implements registry.Source.
func (g *Gemini) Generate(ctx context.Context, level int, bossReward bool) ([]sim.UpgradeCard, error) {
	if g.apiKey == "" {
		return nil, ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("upgrades: cannot create gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(level, bossReward)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   upgradeSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("upgrades: gemini request failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}
	return decodeCards([]byte(text))
}

// wireCard is the JSON shape requested from the model.
type wireCard struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Rarity      string  `json:"rarity"`
	Element     string  `json:"element,omitempty"`
}

func decodeCards(data []byte) ([]sim.UpgradeCard, error) {
	var payload struct {
		Upgrades []wireCard `json:"upgrades"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("upgrades: cannot decode response: %w", err)
	}
	if len(payload.Upgrades) == 0 {
		return nil, ErrEmptyResponse
	}

	cards := make([]sim.UpgradeCard, 0, len(payload.Upgrades))
	for _, w := range payload.Upgrades {
		cards = append(cards, sim.UpgradeCard{
			Name:        w.Name,
			Description: w.Description,
			Kind:        sim.UpgradeKind(strings.ToUpper(w.Type)),
			Value:       w.Value,
			Rarity:      sim.Rarity(strings.ToLower(w.Rarity)),
			Element:     sim.Effect(strings.ToLower(w.Element)),
		})
	}
	return cards, nil
}

func upgradeSchema() *genai.Schema {
	kinds := make([]string, 0, len(sim.UpgradeKinds))
	for _, k := range sim.UpgradeKinds {
		kinds = append(kinds, string(k))
	}
	rarities := make([]string, 0, len(sim.Rarities))
	for _, r := range sim.Rarities {
		rarities = append(rarities, string(r))
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"upgrades": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"type":        {Type: genai.TypeString, Enum: kinds},
						"value":       {Type: genai.TypeNumber},
						"rarity":      {Type: genai.TypeString, Enum: rarities},
						"element":     {Type: genai.TypeString, Enum: []string{string(sim.EffectBurn), string(sim.EffectFreeze)}},
					},
					Required: []string{"name", "description", "type", "value", "rarity"},
				},
			},
		},
		Required: []string{"upgrades"},
	}
}

func prompt(level int, bossReward bool) string {
	tier := "Generate varied upgrades (common to epic) for a regular level-up."
	if bossReward {
		tier = "Generate powerful upgrades (legendary or divine) as a boss reward."
	}

	var b strings.Builder
	b.WriteString("You are the game system of a roguelike survival RPG.\n")
	fmt.Fprintf(&b, "The player just reached level %d.\n%s\n\n", level, tier)
	fmt.Fprintf(&b, "Generate EXACTLY %d upgrade cards.\n\n", cardsPerOffer)
	b.WriteString(`Upgrade types:
- DAMAGE: raises base damage.
- SPEED: raises movement speed.
- HEALTH: heals and raises max HP.
- PROJECTILE: adds projectiles to the main attack.
- COOLDOWN: shortens the frames between attacks.
- ELEMENTAL: grants burn (fire) or freeze (ice); set element accordingly.
- AREA: poison aura around the player (damage per second).
- METEOR: meteors fall from the sky periodically.
- XP: raises the share of XP gained.

Value examples:
- AREA: 5 to 10 (damage).
- METEOR: 1 (ability level).
- XP: 0.1 to 0.5 (10% to 50%).

Answer with the JSON only.`)
	return b.String()
}
