package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-counter/internal/card"
)

// renderCounter draws the remaining-card table in card.DisplayOrder
func renderCounter(counter card.Counter, color bool) string {
	names := make([]string, 0, len(card.DisplayOrder))
	counts := make([]string, 0, len(card.DisplayOrder))
	for _, rank := range card.DisplayOrder {
		name := rank.String()
		if rank == card.Rank10 {
			name = "10"
		}
		names = append(names, fmt.Sprintf("%-2s", name))

		n := counter.Count(rank)
		cell := fmt.Sprintf("%-2d", n)
		if color {
			cell = countStyle(n).Render(cell)
		}
		counts = append(counts, cell)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", lipgloss.Width(strings.Join(names, "│"))) + "\n")
	sb.WriteString(strings.Join(counts, "│"))

	return BoxStyle.Render(sb.String())
}

func countStyle(n int) lipgloss.Style {
	switch {
	case n == 0:
		return GoneStyle
	case n <= 2:
		return LowStyle
	default:
		return ManyStyle
	}
}

// renderSummary 一行统计：未出现的牌数与已记录的出牌次数
func renderSummary(counter card.Counter, plays int) string {
	return HelpStyle.Render(fmt.Sprintf("未出现 %d 张 · 已记录 %d 手", counter.Total(), plays))
}
