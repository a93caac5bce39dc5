package deck

import (
	"encoding/binary"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// KeyPair is the key of a seat that receives face-down cards.
type KeyPair struct {
	Private kyber.Scalar
	Public  kyber.Point
}

// NewKeyPair picks a fresh secret x and its public point g^x.
func NewKeyPair() KeyPair {
	x := suite.Scalar().Pick(suite.RandomStream())
	return KeyPair{
		Private: x,
		Public:  suite.Point().Mul(x, nil),
	}
}

// Sealed is an ElGamal ciphertext of a card word: K = g^k, C = M + pub^k,
// with the word embedded in M. Only the holder of the matching private key
// can recover the word.
type Sealed struct {
	K kyber.Point
	C kyber.Point
}

// Seal encrypts word for the holder of pub.
func Seal(pub kyber.Point, word uint32) (Sealed, error) {
	if pub == nil {
		return Sealed{}, fmt.Errorf("seal: nil public key")
	}
	var data [4]byte
	binary.BigEndian.PutUint32(data[:], word)
	stream := random.New()
	m := suite.Point().Embed(data[:], stream)
	k := suite.Scalar().Pick(stream)
	s := suite.Point().Mul(k, pub)
	return Sealed{
		K: suite.Point().Mul(k, nil),
		C: s.Add(s, m),
	}, nil
}

// Open decrypts a Sealed word with the recipient's private key.
func Open(priv kyber.Scalar, sealed Sealed) (uint32, error) {
	if priv == nil || sealed.K == nil || sealed.C == nil {
		return 0, fmt.Errorf("open: incomplete key or ciphertext")
	}
	s := suite.Point().Mul(priv, sealed.K)
	m := suite.Point().Sub(sealed.C, s)
	data, err := m.Data()
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	if len(data) != 4 {
		return 0, fmt.Errorf("open: embedded %d bytes, want 4", len(data))
	}
	return binary.BigEndian.Uint32(data), nil
}

// MarshalBinary encodes the ciphertext as K || C.
func (s Sealed) MarshalBinary() ([]byte, error) {
	k, err := s.K.MarshalBinary()
	if err != nil {
		return nil, err
	}
	c, err := s.C.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(k, c...), nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (s *Sealed) UnmarshalBinary(data []byte) error {
	size := suite.PointLen()
	if len(data) != 2*size {
		return fmt.Errorf("sealed card: got %d bytes, want %d", len(data), 2*size)
	}
	k := suite.Point()
	if err := k.UnmarshalBinary(data[:size]); err != nil {
		return err
	}
	c := suite.Point()
	if err := c.UnmarshalBinary(data[size:]); err != nil {
		return err
	}
	s.K, s.C = k, c
	return nil
}
