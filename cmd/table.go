package main

import (
	"fmt"

	"github.com/grahambinns/ancient-history-pokerlib/domain/deck"
	"github.com/grahambinns/ancient-history-pokerlib/domain/poker"
)

const boardSize = 5

// Seat is one player at the demonstration table. Hole cards travel sealed to
// the seat's key and are only opened at showdown.
type Seat struct {
	Name   string
	Keys   deck.KeyPair
	Sealed []deck.Sealed
	Hand   []poker.Card
}

// Table is the result of dealing one hand.
type Table struct {
	Seats []Seat
	Board []poker.Card
	Left  int
}

// dealTable deals hole cards one at a time around the table, then the flop,
// turn and river.
func dealTable(cfg Config, d *poker.Deck) (*Table, error) {
	if need := cfg.CardsNeeded(); need > d.Remaining() {
		return nil, fmt.Errorf("%w: table needs %d, %d left", poker.ErrNotEnoughCards, need, d.Remaining())
	}
	seats := make([]Seat, cfg.Players)
	for i := range seats {
		seats[i] = Seat{
			Name: fmt.Sprintf("Player %d", i+1),
			Keys: deck.NewKeyPair(),
		}
	}
	for range cfg.HoleCards {
		for i := range seats {
			c, err := d.DealOne()
			if err != nil {
				return nil, err
			}
			sealed, err := poker.SealCard(seats[i].Keys.Public, c)
			if err != nil {
				return nil, err
			}
			seats[i].Sealed = append(seats[i].Sealed, sealed)
		}
	}

	var board []poker.Card
	if cfg.Board {
		for _, street := range []int{3, 1, 1} {
			cards, err := d.Deal(street)
			if err != nil {
				return nil, err
			}
			board = append(board, cards...)
		}
	}
	return &Table{Seats: seats, Board: board, Left: d.Remaining()}, nil
}

// showdown opens every seat's sealed hole cards with that seat's key.
func (t *Table) showdown() error {
	for i := range t.Seats {
		s := &t.Seats[i]
		s.Hand = s.Hand[:0]
		for _, sealed := range s.Sealed {
			c, err := poker.OpenCard(s.Keys.Private, sealed)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			s.Hand = append(s.Hand, c)
		}
	}
	return nil
}

// describe names the best hand of seat i when the evaluator can score it.
func (t *Table) describe(i int) (string, bool) {
	cards := append(append([]poker.Card{}, t.Seats[i].Hand...), t.Board...)
	if len(cards) < 5 || len(cards) > 7 {
		return "", false
	}
	desc, err := poker.DescribeHand(cards)
	if err != nil {
		return "", false
	}
	return desc, true
}
