package multisig

import (
	"fmt"

	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/errors"
)

// Credential is a participant of a multisig account: a public key with its
// weight. A credential may hold a signer, in which case it can produce
// partial signatures. The signer is never serialized.
type Credential struct {
	pub    *crypto.PublicKey
	weight Weight
	signer crypto.Signer
}

// NewCredential returns a credential without signing capability.
func NewCredential(pub *crypto.PublicKey, weight Weight) (*Credential, error) {
	if pub == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "public key")
	}
	return &Credential{pub: pub, weight: weight}, nil
}

// FromPublicKeyString decodes a base64 encoded public key of given scheme.
// The decoded key may start with the scheme flag.
func FromPublicKeyString(scheme crypto.Scheme, encoded string, weight Weight) (*Credential, error) {
	pub, err := crypto.ParsePublicKey(scheme, encoded)
	if err != nil {
		return nil, err
	}
	return &Credential{pub: pub, weight: weight}, nil
}

// FromPrivateKeyString decodes a private key of given scheme, either base64
// or bech32 encoded. The returned credential can sign.
func FromPrivateKeyString(scheme crypto.Scheme, encoded string, weight Weight) (*Credential, error) {
	key, err := crypto.ParsePrivateKey(scheme, encoded)
	if err != nil {
		return nil, err
	}
	return FromSigner(key, weight)
}

// FromSigner returns a credential that signs with given signer.
func FromSigner(signer crypto.Signer, weight Weight) (*Credential, error) {
	if signer == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "signer")
	}
	return &Credential{pub: signer.PublicKey(), weight: weight, signer: signer}, nil
}

// WithSigner returns a copy of this credential that signs with given signer.
// The signer must own the credential public key.
func (c *Credential) WithSigner(signer crypto.Signer) (*Credential, error) {
	if signer == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "signer")
	}
	if !signer.PublicKey().Equals(c.pub) {
		return nil, errors.Wrapf(errors.ErrConfig, "signer does not own public key %s", c.pub)
	}
	return &Credential{pub: c.pub, weight: c.weight, signer: signer}, nil
}

// HasSigningCapability returns true if this credential holds a private key.
func (c *Credential) HasSigningCapability() bool {
	return c.signer != nil
}

// Sign returns a signature of given payload. It fails with
// errors.ErrMissingKey if this credential cannot sign.
func (c *Credential) Sign(payload []byte) ([]byte, error) {
	if c.signer == nil {
		return nil, errors.Wrapf(errors.ErrMissingKey, "participant %s", c.pub)
	}
	return c.signer.Sign(payload)
}

func (c *Credential) PublicKey() *crypto.PublicKey {
	return c.pub
}

func (c *Credential) Weight() Weight {
	return c.weight
}

// Raw returns flag || public key bytes.
func (c *Credential) Raw() []byte {
	return c.pub.Raw()
}

// Address returns the address of the single key account of this
// participant. This is not the multisig account address.
func (c *Credential) Address() suimsig.Address {
	return c.pub.Address()
}

func (c *Credential) String() string {
	return fmt.Sprintf("%s (weight %d)", c.pub, c.weight)
}
