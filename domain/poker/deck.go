package poker

import (
	"fmt"

	"github.com/grahambinns/ancient-history-pokerlib/domain/deck"
)

// Deck is the working set of undealt cards for one round. The top of the
// deck, the next card dealt, is the last element of cards. A Deck only ever
// shrinks; it is owned by a single table and is not safe for concurrent use.
type Deck struct {
	cards []Card
}

// NewDeck builds a full 52 card deck and shuffles it shuffleCount times.
// With shuffleCount == 0 the deck deals in suit-major, rank-minor order,
// starting with the Two of Clubs.
//
// Parameters:
//   - shuffleCount: number of shuffle passes, 0 (or less) keeps the deck ordered
//
// Returns the Deck, or ErrCorruptDeck if the tables do not yield 52 unique cards.
func NewDeck(shuffleCount int) (*Deck, error) {
	codes := EncodedDeck()
	cards := make([]Card, 0, len(codes))
	// Build bottom-up so that the first card of the enumeration sits on top.
	for i := len(codes) - 1; i >= 0; i-- {
		c, err := CardFromEncoding(codes[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptDeck, err)
		}
		cards = append(cards, c)
	}
	if err := checkDeck(cards); err != nil {
		return nil, err
	}

	d := &Deck{cards: cards}
	for range shuffleCount {
		d.Shuffle()
	}
	return d, nil
}

func checkDeck(cards []Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("%w: %d cards in deck", ErrCorruptDeck, len(cards))
	}
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate %s", ErrCorruptDeck, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// Shuffle reorders the remaining cards with a fresh random permutation.
func (d *Deck) Shuffle() {
	deck.Apply(d.cards, deck.Permutation(len(d.cards)))
}

// HasCards reports whether any card is left to deal.
func (d *Deck) HasCards() bool {
	return len(d.cards) > 0
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards in the order they would be dealt.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	for i := range d.cards {
		out[i] = d.cards[len(d.cards)-1-i]
	}
	return out
}

// Deal removes count cards from the top of the deck and returns them in the
// order they were dealt. The deck is left untouched when it cannot cover the
// whole deal.
func (d *Deck) Deal(count int) ([]Card, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDealCount, count)
	}
	if count > len(d.cards) {
		return nil, fmt.Errorf("%w: asked for %d, %d left", ErrNotEnoughCards, count, len(d.cards))
	}
	dealt := make([]Card, count)
	for i := range dealt {
		dealt[i] = d.cards[len(d.cards)-1-i]
	}
	d.cards = d.cards[:len(d.cards)-count]
	return dealt, nil
}

// DealOne removes and returns the top card.
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}
