package multisig

import (
	"strings"

	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/errors"
)

// PartialSignature is a single participant signature over the intent digest
// of a transaction. The signature carries the public key of the signer.
type PartialSignature struct {
	TxBytes   []byte
	Signature *crypto.Signature
}

// Digest returns the intent digest of the signed payload. Two partial
// signatures sign the same transaction only if their digests are equal.
func (p *PartialSignature) Digest() [32]byte {
	return suimsig.IntentDigest(p.TxBytes)
}

// Verify returns errors.ErrInvalidSignature if the signature was not created
// for the payload by the attached public key.
func (p *PartialSignature) Verify() error {
	if p.Signature == nil {
		return errors.Wrap(errors.ErrInvalidSignature, "no signature")
	}
	digest := p.Digest()
	if !p.Signature.Verify(digest[:]) {
		return errors.Wrapf(errors.ErrInvalidSignature, "signature of %s", p.Signature.PublicKey())
	}
	return nil
}

// Envelope returns the signed envelope transport form.
func (p *PartialSignature) Envelope() (string, error) {
	if p.Signature == nil {
		return "", errors.Wrap(errors.ErrEmpty, "signature")
	}
	return codec.EncodeSignedEnvelope(p.TxBytes, p.Signature.Serialize())
}

// ParsePartialSignature decodes a signed envelope holding a single
// participant signature.
func ParsePartialSignature(envelope string) (*PartialSignature, error) {
	payload, rawSig, err := codec.DecodeSignedEnvelope(strings.TrimSpace(envelope))
	if err != nil {
		return nil, err
	}
	sig, err := crypto.ParseRawSignature(rawSig)
	if err != nil {
		return nil, errors.Wrap(err, "partial signature")
	}
	return &PartialSignature{TxBytes: payload, Signature: sig}, nil
}
