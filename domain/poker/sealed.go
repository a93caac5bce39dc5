package poker

import (
	"fmt"

	"github.com/grahambinns/ancient-history-pokerlib/domain/deck"
	"go.dedis.ch/kyber/v4"
)

// SealCard deals c face down to the holder of pub: only the matching private
// key can open it.
func SealCard(pub kyber.Point, c Card) (deck.Sealed, error) {
	if c.IsZero() {
		return deck.Sealed{}, fmt.Errorf("cannot seal a face down card")
	}
	return deck.Seal(pub, uint32(c.code))
}

// OpenCard recovers a sealed card. A ciphertext that opens to a word which is
// not a card fails with ErrMalformedEncoding.
func OpenCard(priv kyber.Scalar, sealed deck.Sealed) (Card, error) {
	word, err := deck.Open(priv, sealed)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %w", ErrMalformedEncoding, err)
	}
	return CardFromEncoding(EncodedCard(word))
}
