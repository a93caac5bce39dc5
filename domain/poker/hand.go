package poker

// The helpers below read the packed encoding the way a downstream evaluator
// does. They do not rank hands.

// PrimeProduct multiplies the rank primes of cards. Two hands have the same
// product iff they hold the same multiset of ranks.
func PrimeProduct(cards ...Card) uint64 {
	product := uint64(1)
	for _, c := range cards {
		product *= uint64(c.code.Prime())
	}
	return product
}

// RankMask ORs the rank flags of cards: bit i is set iff some card has the
// rank with ordinal i.
func RankMask(cards ...Card) uint32 {
	var mask uint32
	for _, c := range cards {
		mask |= c.code.RankFlag()
	}
	return mask
}

// SuitMask ANDs the suit flags of cards. It is non-zero iff every card shares
// one suit, and zero for an empty hand.
func SuitMask(cards ...Card) uint32 {
	if len(cards) == 0 {
		return 0
	}
	mask := uint32(suitMask)
	for _, c := range cards {
		mask &= c.code.SuitFlag()
	}
	return mask
}
