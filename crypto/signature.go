package crypto

import (
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/errors"
)

// Signature is a single key signature together with the public key it was
// created with. Serialized form is flag || signature || public key.
type Signature struct {
	sig []byte
	pub *PublicKey
}

// NewSignature returns a signature created by the owner of given key.
func NewSignature(pub *PublicKey, sig []byte) (*Signature, error) {
	if pub == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "signature public key")
	}
	p, err := PrimitiveFor(pub.Scheme())
	if err != nil {
		return nil, err
	}
	if len(sig) != p.SignatureSize() {
		return nil, errors.Wrapf(errors.ErrDecode, "%s signature must be %d bytes, got %d", pub.Scheme(), p.SignatureSize(), len(sig))
	}
	cp := make([]byte, len(sig))
	copy(cp, sig)
	return &Signature{sig: cp, pub: pub}, nil
}

// SignMessage signs given message and returns the signature with the signer
// public key attached.
func SignMessage(signer Signer, msg []byte) (*Signature, error) {
	raw, err := signer.Sign(msg)
	if err != nil {
		return nil, err
	}
	return NewSignature(signer.PublicKey(), raw)
}

// ParseRawSignature decodes the serialized flag || signature || public key
// representation.
func ParseRawSignature(raw []byte) (*Signature, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrDecode, "empty signature")
	}
	scheme := Scheme(raw[0])
	p, err := PrimitiveFor(scheme)
	if err != nil {
		return nil, err
	}
	if want := 1 + p.SignatureSize() + p.PublicKeySize(); len(raw) != want {
		return nil, errors.Wrapf(errors.ErrDecode, "serialized %s signature must be %d bytes, got %d", scheme, want, len(raw))
	}
	pub, err := NewPublicKey(scheme, raw[1+p.SignatureSize():])
	if err != nil {
		return nil, errors.Wrap(err, "signature public key")
	}
	return NewSignature(pub, raw[1:1+p.SignatureSize()])
}

// ParseSignature decodes a base64 encoded serialized signature.
func ParseSignature(encoded string) (*Signature, error) {
	raw, err := codec.DecodeBase64(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "signature")
	}
	return ParseRawSignature(raw)
}

// Scheme returns the signature scheme.
func (s *Signature) Scheme() Scheme {
	return s.pub.Scheme()
}

// Bytes returns a copy of the raw signature, without flag and public key.
func (s *Signature) Bytes() []byte {
	cp := make([]byte, len(s.sig))
	copy(cp, s.sig)
	return cp
}

// PublicKey returns the key of the signer.
func (s *Signature) PublicKey() *PublicKey {
	return s.pub
}

// Serialize returns flag || signature || public key.
func (s *Signature) Serialize() []byte {
	out := make([]byte, 0, 1+len(s.sig)+len(s.pub.key))
	out = append(out, s.Scheme().Flag())
	out = append(out, s.sig...)
	return append(out, s.pub.key...)
}

// String returns the base64 encoded serialized signature.
func (s *Signature) String() string {
	return codec.EncodeBase64(s.Serialize())
}

// Verify returns true if this signature of given message was created by the
// attached public key.
func (s *Signature) Verify(msg []byte) bool {
	return s.pub.Verify(msg, s.sig)
}
