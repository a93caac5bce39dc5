package poker

import (
	"github.com/pterm/pterm"
)

// FaceDown is the display character for hidden cards
const (
	FaceDown = "▓"
)

// Card represents a playing card with its rank, suit and packed encoding.
// Cards are values: two cards are equal iff rank and suit are equal, since
// the code is derived from them.
type Card struct {
	rank Rank
	suit Suit
	code EncodedCard
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: Two..Ace
//   - suit: Clubs..Spades
//
// Returns the Card or ErrInvalidRank / ErrInvalidSuit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	code, err := Encode(rank, suit)
	if err != nil {
		return Card{}, err
	}
	return Card{
		rank: rank,
		suit: suit,
		code: code,
	}, nil
}

// CardFromEncoding rebuilds the Card a word was encoded from.
// It fails with ErrMalformedEncoding for words Encode cannot produce.
func CardFromEncoding(code EncodedCard) (Card, error) {
	rank, suit, err := Decode(code)
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit)
}

// ParseCard builds a Card from symbolic names, e.g. ParseCard("Ace", "Spades").
func ParseCard(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return NewCard(r, s)
}

// MustCard is NewCard for constant arguments; it panics on an invalid card.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Prime returns the prime assigned to the Card's rank.
func (c Card) Prime() uint32 {
	return c.code.Prime()
}

// Code returns the packed encoding of the Card.
func (c Card) Code() EncodedCard {
	return c.code
}

// IsZero reports whether c is the zero Card, which is not a dealt card.
func (c Card) IsZero() bool {
	return c.code == 0
}

// String returns the long form, e.g. "Ace of Spades". The zero Card renders
// face down.
func (c Card) String() string {
	if c.IsZero() {
		return FaceDown
	}
	return c.rank.String() + " of " + c.suit.String()
}

// Short returns the two letter form, e.g. "As" or "Td".
func (c Card) Short() string {
	if c.IsZero() {
		return FaceDown
	}
	return rankLetters[c.rank] + suitLetters[c.suit]
}

// Symbol returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number). The zero Card
// renders face down.
func (c Card) Symbol() string {
	if c.IsZero() {
		return FaceDown
	}
	var suit string
	switch c.suit {
	case Clubs:
		suit = pterm.Black("♣")
	case Diamonds:
		suit = pterm.LightRed("♦")
	case Hearts:
		suit = pterm.LightRed("♥")
	case Spades:
		suit = pterm.Black("♠")
	}

	rankStr := rankLetters[c.rank]
	if c.rank == Ten {
		rankStr = "10"
	}
	return rankStr + suit
}
