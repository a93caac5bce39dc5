package poker

import "errors"

// Error kinds returned by this package. Callers match them with errors.Is;
// returned errors wrap them with the offending value.
var (
	// ErrInvalidRank is returned when a rank is not one of Two..Ace.
	ErrInvalidRank = errors.New("invalid card rank")
	// ErrInvalidSuit is returned when a suit is not one of Clubs..Spades.
	ErrInvalidSuit = errors.New("invalid card suit")
	// ErrMalformedEncoding is returned when a word does not decode to a card.
	ErrMalformedEncoding = errors.New("malformed card encoding")
	// ErrCorruptDeck means a freshly built deck does not hold 52 cards.
	ErrCorruptDeck = errors.New("corrupt deck")
	// ErrNotEnoughCards is returned when a deal asks for more cards than remain.
	ErrNotEnoughCards = errors.New("not enough cards in deck")
	// ErrInvalidDealCount is returned by Deal for a count below one.
	ErrInvalidDealCount = errors.New("deal count must be positive")
)
