package crypto

import (
	"bytes"

	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/errors"
)

// PublicKey is a scheme tagged public key.
type PublicKey struct {
	scheme Scheme
	key    []byte
}

// NewPublicKey validates given key material and returns a public key of given
// scheme. Key material must not contain the scheme flag.
func NewPublicKey(scheme Scheme, key []byte) (*PublicKey, error) {
	p, err := PrimitiveFor(scheme)
	if err != nil {
		return nil, err
	}
	if err := p.ValidatePublicKey(key); err != nil {
		return nil, err
	}
	cp := make([]byte, len(key))
	copy(cp, key)
	return &PublicKey{scheme: scheme, key: cp}, nil
}

// ParsePublicKey decodes a base64 encoded public key of given scheme. Decoded
// data can either start with the scheme flag or contain only the key bytes.
// If the flag is present it must match the scheme.
func ParsePublicKey(scheme Scheme, encoded string) (*PublicKey, error) {
	p, err := PrimitiveFor(scheme)
	if err != nil {
		return nil, err
	}
	raw, err := codec.DecodeBase64(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "public key")
	}
	switch len(raw) {
	case p.PublicKeySize():
		return NewPublicKey(scheme, raw)
	case p.PublicKeySize() + 1:
		if Scheme(raw[0]) != scheme {
			return nil, errors.Wrapf(errors.ErrDecode, "public key flag %s does not match scheme %s", Scheme(raw[0]), scheme)
		}
		return NewPublicKey(scheme, raw[1:])
	default:
		return nil, errors.Wrapf(errors.ErrDecode, "%s public key cannot be %d bytes", scheme, len(raw))
	}
}

// ParseRawPublicKey decodes the canonical flag || key representation.
func ParseRawPublicKey(raw []byte) (*PublicKey, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrDecode, "empty public key")
	}
	return NewPublicKey(Scheme(raw[0]), raw[1:])
}

// Scheme returns the signature scheme of this key.
func (k *PublicKey) Scheme() Scheme {
	return k.scheme
}

// Bytes returns a copy of the key material, without the scheme flag.
func (k *PublicKey) Bytes() []byte {
	cp := make([]byte, len(k.key))
	copy(cp, k.key)
	return cp
}

// Raw returns the canonical encoding: the scheme flag followed by the key
// bytes. This is the only place where this representation is built.
func (k *PublicKey) Raw() []byte {
	raw := make([]byte, 0, 1+len(k.key))
	raw = append(raw, k.scheme.Flag())
	return append(raw, k.key...)
}

// String returns the base64 encoded canonical representation.
func (k *PublicKey) String() string {
	return codec.EncodeBase64(k.Raw())
}

// Equals checks if two keys are the same.
func (k *PublicKey) Equals(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.scheme == other.scheme && bytes.Equal(k.key, other.key)
}

// Verify verifies the signature was created with this message and public key
func (k *PublicKey) Verify(msg, sig []byte) bool {
	p, err := PrimitiveFor(k.scheme)
	if err != nil {
		return false
	}
	return p.Verify(k.key, msg, sig)
}

// Address returns the address of a single key account controlled by this
// key.
func (k *PublicKey) Address() suimsig.Address {
	return suimsig.NewAddress(k.Raw())
}
