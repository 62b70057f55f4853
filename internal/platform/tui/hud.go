package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-survivor/internal/sim"
)

// hudHeight is the number of rows the HUD takes below the arena.
const hudHeight = 2

var (
	hpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	xpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// rarityColors are the card border colors per rarity.
var rarityColors = map[sim.Rarity]lipgloss.Color{
	sim.RarityCommon:    lipgloss.Color("250"),
	sim.RarityRare:      lipgloss.Color("39"),
	sim.RarityEpic:      lipgloss.Color("135"),
	sim.RarityLegendary: lipgloss.Color("214"),
	sim.RarityDivine:    lipgloss.Color("226"),
}

// bar renders a fixed-width gauge filled to value/total.
func bar(value, total float64, width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = int(value / total * float64(width))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return style.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", width-filled))
}

// renderHUD renders the status rows under the arena.
func renderHUD(sum sim.Summary, clock string, kills int, width int) string {
	gauge := 20
	if width < 70 {
		gauge = 10
	}

	top := fmt.Sprintf("%s %s %s   %s %s %s",
		labelStyle.Render("HP"),
		bar(sum.HP, sum.MaxHP, gauge, hpStyle),
		valueStyle.Render(fmt.Sprintf("%.0f/%.0f", sum.HP, sum.MaxHP)),
		labelStyle.Render("XP"),
		bar(sum.XP, sum.XPNext, gauge, xpStyle),
		valueStyle.Render(fmt.Sprintf("%.0f/%.0f", sum.XP, sum.XPNext)),
	)
	bottom := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		labelStyle.Render("LV"), valueStyle.Render(fmt.Sprint(sum.Level)),
		labelStyle.Render("SCORE"), valueStyle.Render(fmt.Sprint(sum.Score)),
		labelStyle.Render("KILLS"), valueStyle.Render(fmt.Sprint(kills)),
		labelStyle.Render("TIME"), valueStyle.Render(clock),
	)
	return top + "\n" + bottom
}

// renderCard renders one upgrade card with its pick number.
func renderCard(n int, card sim.UpgradeCard, width int) string {
	color, ok := rarityColors[card.Rarity]
	if !ok {
		color = rarityColors[sim.RarityCommon]
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width).
		Padding(0, 1)

	name := lipgloss.NewStyle().Bold(true).Foreground(color).Render(card.Name)
	rarity := lipgloss.NewStyle().Foreground(color).Render(strings.ToUpper(string(card.Rarity)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", valueStyle.Render(fmt.Sprintf("[%d]", n)), name)
	b.WriteString(rarity)
	b.WriteString("\n\n")
	b.WriteString(card.Description)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(cardEffect(card)))
	return box.Render(b.String())
}

// cardEffect describes what a card does in game terms.
func cardEffect(card sim.UpgradeCard) string {
	switch card.Kind {
	case sim.UpgradeElemental:
		return fmt.Sprintf("%s on hit", card.ResolveElement())
	case sim.UpgradeCooldown:
		return fmt.Sprintf("-%.0f frames cooldown", card.Value)
	case sim.UpgradeXP:
		return fmt.Sprintf("+%.0f%% xp", card.Value*100)
	default:
		return fmt.Sprintf("+%g %s", card.Value, strings.ToLower(string(card.Kind)))
	}
}

// renderCards lays the offered cards side by side, or stacked when narrow.
func renderCards(cards []sim.UpgradeCard, boss bool, width int) string {
	header := titleStyle.Render("LEVEL UP")
	if boss {
		header = bannerStyle.Render("BOSS REWARD")
	}

	cardWidth := 24
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = renderCard(i+1, c, cardWidth)
	}

	var body string
	if width >= len(cards)*(cardWidth+6) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, header, "", body, "", dimStyle.Render("press 1-3 to choose"))
}

// centerText pads text on the left so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
