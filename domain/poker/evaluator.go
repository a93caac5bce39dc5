package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// ToEvalCard converts c into the card type of the hand evaluator.
// The evaluator counts Ace as rank 1 and Two..King as 2..13, with suits in
// the same Clubs, Diamonds, Hearts, Spades order.
func (c Card) ToEvalCard() (poker.Card, error) {
	var zero poker.Card
	if c.IsZero() {
		return zero, fmt.Errorf("face down card cannot be evaluated")
	}
	rank := poker.Rank(c.rank) + 2
	if c.rank == Ace {
		rank = 1
	}
	card, err := poker.MakeCard(poker.Suit(c.suit), rank)
	if err != nil {
		return zero, fmt.Errorf("convert %s: %w", c, err)
	}
	return card, nil
}

// Eval7 scores the best five card hand out of two hole cards and a full
// board. Higher scores are better hands.
func Eval7(hole [2]Card, board [5]Card) (int16, error) {
	var hand [7]poker.Card
	for i, c := range board {
		card, err := c.ToEvalCard()
		if err != nil {
			return 0, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		hand[i] = card
	}
	for i, c := range hole {
		card, err := c.ToEvalCard()
		if err != nil {
			return 0, fmt.Errorf("invalid hole card at idx %d: %w", i, err)
		}
		hand[5+i] = card
	}
	return poker.Eval7(&hand), nil
}

// DescribeHand names the best hand that can be made from cards, for example
// "two pair, kings and sevens".
func DescribeHand(cards []Card) (string, error) {
	hand := make([]poker.Card, len(cards))
	for i, c := range cards {
		card, err := c.ToEvalCard()
		if err != nil {
			return "", err
		}
		hand[i] = card
	}
	return poker.Describe(hand)
}
