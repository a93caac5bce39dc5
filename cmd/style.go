package main

import (
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/grahambinns/ancient-history-pokerlib/domain/poker"
)

func printTable(t *Table, elapsed time.Duration) {
	var seats []pterm.Panel
	for i := range t.Seats {
		seats = append(seats, pterm.Panel{Data: printSeatInfo(t, i)})
	}
	rows := [][]pterm.Panel{}
	for len(seats) > 0 {
		n := min(4, len(seats))
		rows = append(rows, seats[:n])
		seats = seats[n:]
	}
	rows = append(rows, []pterm.Panel{{Data: printBoardInfo(t.Board, t.Left, elapsed)}})
	pterm.DefaultPanel.WithPanels(rows).Render()
}

func printSeatInfo(t *Table, i int) string {
	s := t.Seats[i]
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hand := pterm.BgGreen.Sprint(joinSymbols(s.Hand))
	desc, ok := t.describe(i)
	if !ok {
		desc = pterm.Gray("no hand")
	}
	return pbox.WithTitle(pterm.LightCyan(s.Name)).WithTitleTopLeft().Sprintf("%s\n%s\n", hand, desc)
}

func printBoardInfo(board []poker.Card, left int, elapsed time.Duration) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	cards := pterm.Gray("no board")
	if len(board) > 0 {
		cards = pterm.BgGreen.Sprint(joinSymbols(board))
	}
	return pbox.WithTitle(pterm.LightYellow("|BOARD|")).WithTitleTopCenter().Sprintf(
		"%s\nCards left: %d\nDealt in %s\n", cards, left, elapsed)
}

func joinSymbols(cards []poker.Card) string {
	symbols := make([]string, len(cards))
	for i, c := range cards {
		symbols[i] = c.Symbol()
	}
	return strings.Join(symbols, " - ")
}
