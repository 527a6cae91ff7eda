package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mauv0809/elo-ladder/internal/ladder"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderLadder(players []ladder.PlayerRecord) string {
	t := newTable("Rank", "Player", "Elo", "Wins", "Losses")
	for i, p := range players {
		t.Row(strconv.Itoa(i+1), p.Name, fmt.Sprintf("%.2f", p.Rating), strconv.Itoa(p.Wins), strconv.Itoa(p.Losses))
	}
	return t.Render()
}

func renderResult(result *ladder.MatchResult) string {
	t := newTable("Player", "Elo change", "New Elo")
	for _, o := range result.Players {
		t.Row(o.Name, fmt.Sprintf("%+.2f", o.Delta), fmt.Sprintf("%.2f", o.NewRating))
	}
	return t.Render()
}
