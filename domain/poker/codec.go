package poker

import (
	"fmt"
	"strings"
)

// Rank is the value of a card, Two through Ace. The zero value is Two.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is the category of a card. The zero value is Clubs.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumRanks and NumSuits size the lookup tables below.
const (
	NumRanks = 13
	NumSuits = 4
	DeckSize = NumRanks * NumSuits
)

// EncodedCard packs a card into a single word:
//
//	+--------+--------+--------+--------+
//	|xxxAKQJT|98765432|CDHSrrrr|xxpppppp|
//	+--------+--------+--------+--------+
//
// p = prime of the rank, r = rank ordinal (Two=0 ... Ace=12),
// CDHS = one-hot suit flag, AKQJT98765432 = one-hot rank flag.
type EncodedCard uint32

// Bit layout of an EncodedCard. Downstream evaluators depend on it; it must
// not change.
const (
	primeMask     EncodedCard = 0x0000003F
	unusedLowMask EncodedCard = 0x000000C0
	ordinalShift              = 8
	ordinalMask   EncodedCard = 0x00000F00
	suitShift                 = 12
	suitMask      EncodedCard = 0x0000F000
	rankFlagShift             = 16
	rankFlagMask  EncodedCard = 0x1FFF0000
	unusedHiMask  EncodedCard = 0xE0000000
)

var rankPrimes = [NumRanks]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

var rankNames = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

var rankLetters = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}

var suitFlags = [NumSuits]uint32{0x8000, 0x4000, 0x2000, 0x1000}

var suitNames = [NumSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitLetters = [NumSuits]string{"c", "d", "h", "s"}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// Prime returns the prime assigned to r, or 0 for an invalid rank.
func (r Rank) Prime() uint32 {
	if !r.Valid() {
		return 0
	}
	return rankPrimes[r]
}

// Flag returns the one-hot rank bit (bit r within a 13-bit field).
func (r Rank) Flag() uint32 {
	if !r.Valid() {
		return 0
	}
	return 1 << r
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// Flag returns the one-hot suit bit as it sits in an EncodedCard.
func (s Suit) Flag() uint32 {
	if !s.Valid() {
		return 0
	}
	return suitFlags[s]
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// ParseRank maps a symbolic rank name to a Rank. It accepts the long names
// ("2".."10", "Jack", "Queen", "King", "Ace") and the one letter forms
// ("T", "J", "Q", "K", "A"), case-insensitively.
func ParseRank(name string) (Rank, error) {
	n := strings.TrimSpace(name)
	for r := Two; r <= Ace; r++ {
		if strings.EqualFold(n, rankNames[r]) || strings.EqualFold(n, rankLetters[r]) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, name)
}

// ParseSuit maps a symbolic suit name ("Clubs", "Diamonds", "Hearts",
// "Spades", or their first letter) to a Suit.
func ParseSuit(name string) (Suit, error) {
	n := strings.TrimSpace(name)
	for s := Clubs; s <= Spades; s++ {
		if strings.EqualFold(n, suitNames[s]) || strings.EqualFold(n, suitLetters[s]) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, name)
}

// Encode packs rank and suit into an EncodedCard.
//
// Parameters:
//   - rank: one of Two..Ace
//   - suit: one of Clubs..Spades
//
// Returns the encoded word, or ErrInvalidRank / ErrInvalidSuit.
func Encode(rank Rank, suit Suit) (EncodedCard, error) {
	if !rank.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, uint8(rank))
	}
	if !suit.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuit, uint8(suit))
	}
	code := rank.Flag()<<rankFlagShift |
		suit.Flag() |
		uint32(rank)<<ordinalShift |
		rank.Prime()
	return EncodedCard(code), nil
}

// Decode recovers the rank and suit of an encoded word. It is the inverse of
// Encode: any word Encode did not produce fails with ErrMalformedEncoding.
func Decode(code EncodedCard) (Rank, Suit, error) {
	if code&(unusedLowMask|unusedHiMask) != 0 {
		return 0, 0, fmt.Errorf("%w: unused bits set in %s", ErrMalformedEncoding, code)
	}
	rank := Rank(code.RankOrdinal())
	if !rank.Valid() {
		return 0, 0, fmt.Errorf("%w: rank ordinal %d in %s", ErrMalformedEncoding, uint8(rank), code)
	}
	suit, ok := suitFromFlag(code.SuitFlag())
	if !ok {
		return 0, 0, fmt.Errorf("%w: suit flag %#x in %s", ErrMalformedEncoding, code.SuitFlag(), code)
	}
	if code.Prime() != rank.Prime() || code.RankFlag() != rank.Flag() {
		return 0, 0, fmt.Errorf("%w: prime or rank flag disagree with %s in %s", ErrMalformedEncoding, rank, code)
	}
	return rank, suit, nil
}

// suitFromFlag needs exactly one of the four suit bits set.
func suitFromFlag(flag uint32) (Suit, bool) {
	for s := Clubs; s <= Spades; s++ {
		if flag == suitFlags[s] {
			return s, true
		}
	}
	return 0, false
}

// Prime returns the prime field (bits 0-5).
func (c EncodedCard) Prime() uint32 {
	return uint32(c & primeMask)
}

// RankOrdinal returns the rank ordinal field (bits 8-11).
func (c EncodedCard) RankOrdinal() uint32 {
	return uint32(c&ordinalMask) >> ordinalShift
}

// SuitFlag returns the suit field (bits 12-15) in place, i.e. one of
// 0x8000, 0x4000, 0x2000, 0x1000 for a well formed card.
func (c EncodedCard) SuitFlag() uint32 {
	return uint32(c & suitMask)
}

// RankFlag returns the rank flag field (bits 16-28) shifted down to bit 0.
func (c EncodedCard) RankFlag() uint32 {
	return uint32(c&rankFlagMask) >> rankFlagShift
}

func (c EncodedCard) String() string {
	return fmt.Sprintf("%#08x", uint32(c))
}

// EncodedDeck returns the 52 encodings in suit-major, rank-minor order.
func EncodedDeck() []EncodedCard {
	codes := make([]EncodedCard, 0, DeckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			code, _ := Encode(r, s)
			codes = append(codes, code)
		}
	}
	return codes
}
