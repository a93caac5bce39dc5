// Package poker implements the card model of a Texas Hold'em engine: a
// standard 52 card deck, a packed card encoding for fast hand evaluation,
// shuffling and dealing.
//
// # Encoding
//
// Every Card carries an EncodedCard, a 32 bit word laid out as
//
//	xxxAKQJT 98765432 CDHSrrrr xxpppppp
//
// where p is the prime of the rank, r the rank ordinal, CDHS a one-hot suit
// flag and AKQJT98765432 a one-hot rank flag. Multiplying the primes of a
// hand identifies its rank multiset; OR-ing rank flags and AND-ing suit flags
// detect straights and flushes. Decode(Encode(r, s)) == (r, s) for all 52
// cards.
//
// # Dealing
//
// A Deck is built full, optionally shuffled, and shrinks as cards are dealt.
// Each table owns its own Deck. Deal never removes part of a request it
// cannot satisfy.
//
// # Errors
//
// Failures are reported with the sentinel errors ErrInvalidRank,
// ErrInvalidSuit, ErrMalformedEncoding, ErrCorruptDeck and ErrNotEnoughCards.
package poker
