package crypto

import (
	"github.com/iov-one/suimsig/errors"
)

// Primitive produces and verifies single key signatures of one scheme. It
// works on raw key material without the scheme flag.
type Primitive interface {
	Scheme() Scheme
	PublicKeySize() int
	PrivateKeySize() int
	SignatureSize() int

	// Sign returns a signature of given message created with the private
	// key.
	Sign(priv, msg []byte) ([]byte, error)
	// DerivePublicKey returns the public key matching the private key.
	DerivePublicKey(priv []byte) ([]byte, error)
	// Verify returns true if the signature of the message was created
	// with the private key matching given public key.
	Verify(pub, msg, sig []byte) bool
	// ValidatePublicKey returns an error if given bytes are not a valid
	// public key of this scheme.
	ValidatePublicKey(pub []byte) error
}

var primitives = map[Scheme]Primitive{
	ED25519:   ed25519Primitive{},
	Secp256k1: secp256k1Primitive{},
}

// PrimitiveFor returns the implementation of given scheme. Schemes that
// cannot be used for participant keys return errors.ErrDecode.
func PrimitiveFor(s Scheme) (Primitive, error) {
	p, ok := primitives[s]
	if !ok {
		return nil, errors.Wrapf(errors.ErrDecode, "unsupported key scheme %s", s)
	}
	return p, nil
}
