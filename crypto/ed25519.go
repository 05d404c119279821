package crypto

import (
	"github.com/iov-one/suimsig/errors"
	"golang.org/x/crypto/ed25519"
)

type ed25519Primitive struct{}

var _ Primitive = ed25519Primitive{}

func (ed25519Primitive) Scheme() Scheme      { return ED25519 }
func (ed25519Primitive) PublicKeySize() int  { return ed25519.PublicKeySize }
func (ed25519Primitive) PrivateKeySize() int { return ed25519.SeedSize }
func (ed25519Primitive) SignatureSize() int  { return ed25519.SignatureSize }

// Sign returns a matching signature for this private key. Private key is the
// 32 byte seed.
func (ed25519Primitive) Sign(priv, msg []byte) ([]byte, error) {
	if len(priv) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrDecode, "ed25519 private key must be %d bytes", ed25519.SeedSize)
	}
	return ed25519.Sign(ed25519.NewKeyFromSeed(priv), msg), nil
}

func (ed25519Primitive) DerivePublicKey(priv []byte) ([]byte, error) {
	if len(priv) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrDecode, "ed25519 private key must be %d bytes", ed25519.SeedSize)
	}
	pub := ed25519.NewKeyFromSeed(priv).Public().(ed25519.PublicKey)
	return []byte(pub), nil
}

// Verify verifies the signature was created with this message and public key
func (ed25519Primitive) Verify(pub, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}

func (ed25519Primitive) ValidatePublicKey(pub []byte) error {
	if len(pub) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrDecode, "ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	return nil
}
