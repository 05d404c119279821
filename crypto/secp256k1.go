package crypto

import (
	"crypto/sha256"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/suimsig/errors"
)

const (
	secp256k1PublicKeySize  = 33
	secp256k1PrivateKeySize = 32
	secp256k1SignatureSize  = 64
)

var secp256k1HalfOrder = new(big.Int).Rsh(btcec.S256().N, 1)

// secp256k1Primitive implements ECDSA over secp256k1. Messages are hashed with
// sha256 before signing, signatures are 64 bytes r || s with a low s value.
type secp256k1Primitive struct{}

var _ Primitive = secp256k1Primitive{}

func (secp256k1Primitive) Scheme() Scheme      { return Secp256k1 }
func (secp256k1Primitive) PublicKeySize() int  { return secp256k1PublicKeySize }
func (secp256k1Primitive) PrivateKeySize() int { return secp256k1PrivateKeySize }
func (secp256k1Primitive) SignatureSize() int  { return secp256k1SignatureSize }

func (secp256k1Primitive) privateKey(priv []byte) (*btcec.PrivateKey, error) {
	if len(priv) != secp256k1PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrDecode, "secp256k1 private key must be %d bytes", secp256k1PrivateKeySize)
	}
	d := new(big.Int).SetBytes(priv)
	if d.Sign() == 0 || d.Cmp(btcec.S256().N) >= 0 {
		return nil, errors.Wrap(errors.ErrDecode, "secp256k1 private key out of range")
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), priv)
	return key, nil
}

func (p secp256k1Primitive) Sign(priv, msg []byte) ([]byte, error) {
	key, err := p.privateKey(priv)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(msg)
	// RFC6979 deterministic nonce, s is normalized to the lower half.
	sig, err := key.Sign(hash[:])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHuman, "secp256k1 sign: %s", err)
	}
	out := make([]byte, secp256k1SignatureSize)
	sig.R.FillBytes(out[:32])
	sig.S.FillBytes(out[32:])
	return out, nil
}

func (p secp256k1Primitive) DerivePublicKey(priv []byte) ([]byte, error) {
	key, err := p.privateKey(priv)
	if err != nil {
		return nil, err
	}
	return key.PubKey().SerializeCompressed(), nil
}

func (secp256k1Primitive) Verify(pub, msg, sig []byte) bool {
	if len(pub) != secp256k1PublicKeySize || len(sig) != secp256k1SignatureSize {
		return false
	}
	key, err := btcec.ParsePubKey(pub, btcec.S256())
	if err != nil {
		return false
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	n := btcec.S256().N
	if r.Sign() == 0 || s.Sign() == 0 || r.Cmp(n) >= 0 || s.Cmp(n) >= 0 {
		return false
	}
	// Malleated (high s) signatures are not accepted by the ledger.
	if s.Cmp(secp256k1HalfOrder) > 0 {
		return false
	}
	hash := sha256.Sum256(msg)
	return (&btcec.Signature{R: r, S: s}).Verify(hash[:], key)
}

func (secp256k1Primitive) ValidatePublicKey(pub []byte) error {
	if len(pub) != secp256k1PublicKeySize {
		return errors.Wrapf(errors.ErrDecode, "secp256k1 public key must be %d bytes, got %d", secp256k1PublicKeySize, len(pub))
	}
	if _, err := btcec.ParsePubKey(pub, btcec.S256()); err != nil {
		return errors.Wrapf(errors.ErrDecode, "secp256k1 public key: %s", err)
	}
	return nil
}
