package poker

import "testing"

func TestPrimeProduct(t *testing.T) {
	quads := []Card{
		MustCard(Nine, Clubs), MustCard(Nine, Diamonds), MustCard(Nine, Hearts),
		MustCard(Nine, Spades), MustCard(Two, Clubs),
	}
	want := uint64(19 * 19 * 19 * 19 * 2)
	if got := PrimeProduct(quads...); got != want {
		t.Fatalf("expected %d, get %d", want, got)
	}
	if PrimeProduct() != 1 {
		t.Fatal("empty product should be 1")
	}
}

func TestPrimeProductIgnoresSuit(t *testing.T) {
	a := PrimeProduct(MustCard(Ace, Spades), MustCard(King, Hearts))
	b := PrimeProduct(MustCard(King, Clubs), MustCard(Ace, Diamonds))
	if a != b {
		t.Fatalf("expected equal products, get %d and %d", a, b)
	}
}

func TestRankMask(t *testing.T) {
	wheel := []Card{
		MustCard(Ace, Clubs), MustCard(Two, Hearts), MustCard(Three, Spades),
		MustCard(Four, Clubs), MustCard(Five, Diamonds),
	}
	want := uint32(1<<12 | 0xF)
	if got := RankMask(wheel...); got != want {
		t.Fatalf("expected %#x, get %#x", want, got)
	}
}

func TestSuitMask(t *testing.T) {
	flush := []Card{
		MustCard(Two, Hearts), MustCard(Six, Hearts), MustCard(Nine, Hearts),
		MustCard(Jack, Hearts), MustCard(King, Hearts),
	}
	if got := SuitMask(flush...); got != Hearts.Flag() {
		t.Fatalf("expected %#x, get %#x", Hearts.Flag(), got)
	}
	flush[4] = MustCard(King, Spades)
	if got := SuitMask(flush...); got != 0 {
		t.Fatalf("expected 0, get %#x", got)
	}
	if SuitMask() != 0 {
		t.Fatal("empty hand should have no suit")
	}
}
