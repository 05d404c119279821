package multisig

import (
	"github.com/fardream/go-bcs/bcs"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/errors"
)

// The types below mirror the BCS layout of the ledger MultiSig object. Enum
// variant indexes are the scheme flags, so field order matters.

type compressedSignature struct {
	ED25519   *[64]byte
	Secp256k1 *[64]byte
	Secp256r1 *[64]byte
}

func (compressedSignature) IsBcsEnum() {}

type wirePublicKey struct {
	ED25519   *[32]byte
	Secp256k1 *[33]byte
	Secp256r1 *[33]byte
}

func (wirePublicKey) IsBcsEnum() {}

type weightedPublicKey struct {
	PublicKey wirePublicKey
	Weight    uint8
}

type multiSigPublicKey struct {
	PkMap     []weightedPublicKey
	Threshold uint16
}

type multiSig struct {
	Sigs       []compressedSignature
	Bitmap     uint16
	MultisigPK multiSigPublicKey
}

func toCompressedSignature(sig *crypto.Signature) (compressedSignature, error) {
	var (
		cs  compressedSignature
		raw [64]byte
	)
	if n := copy(raw[:], sig.Bytes()); n != len(raw) {
		return cs, errors.ErrDecode.Newf("%s signature of %d bytes", sig.Scheme(), n)
	}
	switch sig.Scheme() {
	case crypto.ED25519:
		cs.ED25519 = &raw
	case crypto.Secp256k1:
		cs.Secp256k1 = &raw
	default:
		return cs, errors.ErrDecode.Newf("unsupported signature scheme %s", sig.Scheme())
	}
	return cs, nil
}

func (cs compressedSignature) value() (crypto.Scheme, []byte) {
	switch {
	case cs.ED25519 != nil:
		return crypto.ED25519, cs.ED25519[:]
	case cs.Secp256k1 != nil:
		return crypto.Secp256k1, cs.Secp256k1[:]
	default:
		return crypto.Secp256r1, cs.Secp256r1[:]
	}
}

func toWirePublicKey(pub *crypto.PublicKey) (wirePublicKey, error) {
	var wk wirePublicKey
	switch key := pub.Bytes(); pub.Scheme() {
	case crypto.ED25519:
		var raw [32]byte
		copy(raw[:], key)
		wk.ED25519 = &raw
	case crypto.Secp256k1:
		var raw [33]byte
		copy(raw[:], key)
		wk.Secp256k1 = &raw
	default:
		return wk, errors.ErrDecode.Newf("unsupported key scheme %s", pub.Scheme())
	}
	return wk, nil
}

func (wk wirePublicKey) publicKey() (*crypto.PublicKey, error) {
	switch {
	case wk.ED25519 != nil:
		return crypto.NewPublicKey(crypto.ED25519, wk.ED25519[:])
	case wk.Secp256k1 != nil:
		return crypto.NewPublicKey(crypto.Secp256k1, wk.Secp256k1[:])
	default:
		return crypto.NewPublicKey(crypto.Secp256r1, wk.Secp256r1[:])
	}
}

// unmarshalAt decodes a single value starting at given offset of raw and
// returns the offset following it. Malformed data never panics.
func unmarshalAt(raw []byte, offset int, v interface{}, what string) (next int, err error) {
	defer func() {
		if r := recover(); r != nil {
			next, err = offset, errors.ErrDecode.Newf("%s: %v", what, r)
		}
	}()
	if offset >= len(raw) {
		return offset, errors.ErrDecode.Newf("%s: unexpected end of data", what)
	}
	n, err := bcs.Unmarshal(raw[offset:], v)
	if err != nil {
		return offset, errors.ErrDecode.Newf("%s: %s", what, err)
	}
	return offset + n, nil
}

// checkCount rejects a vector length prefix at given offset that is longer
// than a participant set can be. Lengths up to the limit take a single byte.
func checkCount(raw []byte, offset int, what string) error {
	if offset >= len(raw) {
		return errors.ErrDecode.Newf("%s: unexpected end of data", what)
	}
	if n := raw[offset]; n > maxParticipantsAllowed {
		return errors.ErrDecode.Newf("too many %s", what)
	}
	return nil
}
