package crypto

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/crypto/bech32"
	"github.com/iov-one/suimsig/errors"
)

// PrivateKeyPrefix is the human readable part of bech32 encoded private keys.
const PrivateKeyPrefix = "suiprivkey"

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(msg []byte) ([]byte, error)
	PublicKey() *PublicKey
}

// PrivateKey is a scheme tagged private key. It is never serialized by any
// encoding used for transport.
type PrivateKey struct {
	prim   Primitive
	secret []byte
	pub    *PublicKey
}

var _ Signer = (*PrivateKey)(nil)

// NewPrivateKey returns a private key of given scheme. Secret must not contain
// the scheme flag.
func NewPrivateKey(scheme Scheme, secret []byte) (*PrivateKey, error) {
	p, err := PrimitiveFor(scheme)
	if err != nil {
		return nil, err
	}
	if len(secret) != p.PrivateKeySize() {
		return nil, errors.Wrapf(errors.ErrDecode, "%s private key must be %d bytes, got %d", scheme, p.PrivateKeySize(), len(secret))
	}
	raw, err := p.DerivePublicKey(secret)
	if err != nil {
		return nil, errors.Wrap(err, "derive public key")
	}
	pub, err := NewPublicKey(scheme, raw)
	if err != nil {
		return nil, errors.Wrap(err, "derived public key")
	}
	cp := make([]byte, len(secret))
	copy(cp, secret)
	return &PrivateKey{prim: p, secret: cp, pub: pub}, nil
}

// ParsePrivateKey decodes a private key of given scheme. Two representations
// are accepted: a bech32 string with the suiprivkey prefix, or base64 encoded
// bytes. Both may start with the scheme flag, which then must match the
// scheme. A bech32 payload must always contain the flag.
func ParsePrivateKey(scheme Scheme, encoded string) (*PrivateKey, error) {
	p, err := PrimitiveFor(scheme)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(strings.ToLower(encoded), PrivateKeyPrefix+"1") {
		hrp, payload, err := bech32.Decode(encoded)
		if err != nil {
			return nil, errors.Wrap(err, "private key")
		}
		if hrp != PrivateKeyPrefix {
			return nil, errors.Wrapf(errors.ErrDecode, "unexpected bech32 prefix %q", hrp)
		}
		if len(payload) != p.PrivateKeySize()+1 {
			return nil, errors.Wrapf(errors.ErrDecode, "bech32 %s private key cannot be %d bytes", scheme, len(payload))
		}
		if Scheme(payload[0]) != scheme {
			return nil, errors.Wrapf(errors.ErrDecode, "private key flag %s does not match scheme %s", Scheme(payload[0]), scheme)
		}
		return NewPrivateKey(scheme, payload[1:])
	}

	raw, err := codec.DecodeBase64(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "private key")
	}
	switch len(raw) {
	case p.PrivateKeySize():
		return NewPrivateKey(scheme, raw)
	case p.PrivateKeySize() + 1:
		if Scheme(raw[0]) != scheme {
			return nil, errors.Wrapf(errors.ErrDecode, "private key flag %s does not match scheme %s", Scheme(raw[0]), scheme)
		}
		return NewPrivateKey(scheme, raw[1:])
	default:
		return nil, errors.Wrapf(errors.ErrDecode, "%s private key cannot be %d bytes", scheme, len(raw))
	}
}

// ParseKeystoreEntry decodes one entry of a keystore file: base64 encoded
// flag || secret. The scheme is taken from the flag.
func ParseKeystoreEntry(encoded string) (*PrivateKey, error) {
	raw, err := codec.DecodeBase64(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "keystore entry")
	}
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrDecode, "empty keystore entry")
	}
	return NewPrivateKey(Scheme(raw[0]), raw[1:])
}

// GenPrivateKey returns a random new private key.
func GenPrivateKey(scheme Scheme) (*PrivateKey, error) {
	p, err := PrimitiveFor(scheme)
	if err != nil {
		return nil, err
	}
	// A random secp256k1 scalar is out of range with negligible
	// probability, retry instead of failing.
	for i := 0; i < 8; i++ {
		secret := make([]byte, p.PrivateKeySize())
		if _, err := rand.Read(secret); err != nil {
			return nil, errors.Wrapf(errors.ErrHuman, "random source: %s", err)
		}
		if key, err := NewPrivateKey(scheme, secret); err == nil {
			return key, nil
		}
	}
	return nil, errors.Wrap(errors.ErrHuman, "cannot generate a private key")
}

// Sign returns a matching signature for this private key
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	return k.prim.Sign(k.secret, msg)
}

// PublicKey returns the corresponding PublicKey
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.pub
}

// Scheme returns the signature scheme of this key.
func (k *PrivateKey) Scheme() Scheme {
	return k.prim.Scheme()
}

// Bech32 returns the suiprivkey representation, flag included.
func (k *PrivateKey) Bech32() (string, error) {
	return bech32.Encode(PrivateKeyPrefix, k.flagged())
}

// KeystoreEntry returns the keystore file representation: base64 encoded
// flag || secret.
func (k *PrivateKey) KeystoreEntry() string {
	return codec.EncodeBase64(k.flagged())
}

func (k *PrivateKey) flagged() []byte {
	raw := make([]byte, 0, 1+len(k.secret))
	raw = append(raw, k.Scheme().Flag())
	return append(raw, k.secret...)
}

// String never reveals the secret.
func (k *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(%s, %s)", k.Scheme(), k.pub.Address())
}
