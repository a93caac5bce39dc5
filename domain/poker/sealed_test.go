package poker

import (
	"errors"
	"testing"

	"github.com/grahambinns/ancient-history-pokerlib/domain/deck"
)

func TestSealOpenCard(t *testing.T) {
	kp := deck.NewKeyPair()
	d, err := NewDeck(1)
	if err != nil {
		t.Fatal(err)
	}
	hole, err := d.Deal(2)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range hole {
		sealed, err := SealCard(kp.Public, c)
		if err != nil {
			t.Fatal(err)
		}
		got, err := OpenCard(kp.Private, sealed)
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Fatalf("expected %v, get %v", c, got)
		}
	}
}

func TestSealFaceDown(t *testing.T) {
	kp := deck.NewKeyPair()
	if _, err := SealCard(kp.Public, Card{}); err == nil {
		t.Fatal("expected error for face down card")
	}
}

func TestOpenCardMalformed(t *testing.T) {
	kp := deck.NewKeyPair()
	sealed, err := deck.Seal(kp.Public, 0xDEADBEEF)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := OpenCard(kp.Private, sealed); !errors.Is(err, ErrMalformedEncoding) {
		t.Fatalf("expected ErrMalformedEncoding, get %v", err)
	}
	if _, err := OpenCard(nil, sealed); !errors.Is(err, ErrMalformedEncoding) {
		t.Fatalf("expected ErrMalformedEncoding, get %v", err)
	}
}

func TestOpenCardWrongKey(t *testing.T) {
	alice := deck.NewKeyPair()
	bob := deck.NewKeyPair()
	c := MustCard(Queen, Hearts)
	sealed, err := SealCard(alice.Public, c)
	if err != nil {
		t.Fatal(err)
	}
	got, err := OpenCard(bob.Private, sealed)
	if !errors.Is(err, ErrMalformedEncoding) {
		t.Fatalf("expected ErrMalformedEncoding, get %v (%v)", err, got)
	}
}
