package multisig

import (
	"math/bits"
	"strings"

	"github.com/fardream/go-bcs/bcs"
	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/errors"
)

// CombinedSignature authorizes a transaction of a multisig account. It holds
// the signatures of the contributing participants ordered by participant
// position, a bitmap of the contributors and the participant set itself.
//
// A combined signature is only created by Coordinator.Combine, which
// enforces the threshold, or decoded from its transport form.
type CombinedSignature struct {
	set    *ParticipantSet
	bitmap uint16
	// Signatures ordered by the position of the signer in the set.
	sigs []*crypto.Signature
}

// Bitmap has bit i set when participant i contributed a signature.
func (c *CombinedSignature) Bitmap() uint16 {
	return c.bitmap
}

// Signers returns positions of the contributing participants, ascending.
func (c *CombinedSignature) Signers() []int {
	signers := make([]int, 0, len(c.sigs))
	for i := 0; i < c.set.Len(); i++ {
		if c.bitmap&(1<<uint(i)) != 0 {
			signers = append(signers, i)
		}
	}
	return signers
}

// Weight returns the summed weight of the contributing participants.
func (c *CombinedSignature) Weight() Weight {
	var w Weight
	for _, i := range c.Signers() {
		w += c.set.participants[i].weight
	}
	return w
}

// ParticipantSet returns the set this signature was created for.
func (c *CombinedSignature) ParticipantSet() *ParticipantSet {
	return c.set
}

// Address returns the multisig account this signature authorizes for.
func (c *CombinedSignature) Address() suimsig.Address {
	return DeriveAddress(c.set)
}

/*
Serialize returns the ledger representation of this signature.

	flag | BCS MultiSig
	0x03 | sigs:        vector<CompressedSignature>
	     | bitmap:      u16
	     | multisig_pk: vector<(PublicKey, u8)>, u16 threshold

CompressedSignature and PublicKey are enums. The variant index is the scheme
flag, the value a fixed size byte array.
*/
func (c *CombinedSignature) Serialize() []byte {
	ms := multiSig{
		Bitmap: c.bitmap,
		MultisigPK: multiSigPublicKey{
			PkMap:     make([]weightedPublicKey, 0, c.set.Len()),
			Threshold: uint16(c.set.threshold),
		},
	}
	for _, s := range c.sigs {
		cs, err := toCompressedSignature(s)
		if err != nil {
			panic(errors.Wrap(errors.ErrHuman, err.Error()))
		}
		ms.Sigs = append(ms.Sigs, cs)
	}
	for _, p := range c.set.participants {
		wk, err := toWirePublicKey(p.pub)
		if err != nil {
			panic(errors.Wrap(errors.ErrHuman, err.Error()))
		}
		ms.MultisigPK.PkMap = append(ms.MultisigPK.PkMap, weightedPublicKey{PublicKey: wk, Weight: uint8(p.weight)})
	}

	raw, err := bcs.Marshal(ms)
	if err != nil {
		panic(errors.Wrapf(errors.ErrHuman, "bcs: %s", err))
	}
	return append([]byte{crypto.MultiSig.Flag()}, raw...)
}

// String returns the base64 encoded serialized signature.
func (c *CombinedSignature) String() string {
	return codec.EncodeBase64(c.Serialize())
}

// Verify checks that every contained signature was created for given
// transaction bytes by the participant the bitmap points to and that the
// contributors weight reaches the threshold.
func (c *CombinedSignature) Verify(txBytes []byte) error {
	digest := suimsig.IntentDigest(txBytes)
	for n, i := range c.Signers() {
		sig := c.sigs[n]
		if !sig.PublicKey().Equals(c.set.participants[i].pub) {
			return errors.Wrapf(errors.ErrInvalidSignature, "signature %d is not made by participant %d", n, i)
		}
		if !sig.Verify(digest[:]) {
			return errors.Wrapf(errors.ErrInvalidSignature, "signature of participant %d", i)
		}
	}
	if w := c.Weight(); Weight(c.set.threshold) > w {
		return errors.Wrapf(errors.ErrThresholdNotMet, "weight %d, threshold %d", w, c.set.threshold)
	}
	return nil
}

// ParseCombinedSignature decodes the base64 encoded ledger representation.
func ParseCombinedSignature(encoded string) (*CombinedSignature, error) {
	raw, err := codec.DecodeBase64(strings.TrimSpace(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "combined signature")
	}
	return ParseRawCombinedSignature(raw)
}

// ParseRawCombinedSignature decodes the ledger representation. The threshold
// is not checked, use Verify for that.
func ParseRawCombinedSignature(raw []byte) (*CombinedSignature, error) {
	if len(raw) == 0 {
		return nil, errors.ErrDecode.New("empty combined signature")
	}
	if flag := crypto.Scheme(raw[0]); flag != crypto.MultiSig {
		return nil, errors.ErrDecode.Newf("not a multisig signature, flag %s", flag)
	}

	var (
		ms  multiSig
		pos = 1
		err error
	)
	if err := checkCount(raw, pos, "signatures"); err != nil {
		return nil, err
	}
	if pos, err = unmarshalAt(raw, pos, &ms.Sigs, "signatures"); err != nil {
		return nil, err
	}
	if pos, err = unmarshalAt(raw, pos, &ms.Bitmap, "bitmap"); err != nil {
		return nil, err
	}
	if err := checkCount(raw, pos, "public keys"); err != nil {
		return nil, err
	}
	if pos, err = unmarshalAt(raw, pos, &ms.MultisigPK.PkMap, "public keys"); err != nil {
		return nil, err
	}
	if pos, err = unmarshalAt(raw, pos, &ms.MultisigPK.Threshold, "threshold"); err != nil {
		return nil, err
	}
	if rest := len(raw) - pos; rest != 0 {
		return nil, errors.ErrDecode.Newf("%d trailing bytes", rest)
	}

	participants := make([]*Credential, 0, len(ms.MultisigPK.PkMap))
	for i, wk := range ms.MultisigPK.PkMap {
		pub, err := wk.PublicKey.publicKey()
		if err != nil {
			return nil, errors.Wrapf(err, "public key %d", i)
		}
		participants = append(participants, &Credential{pub: pub, weight: Weight(wk.Weight)})
	}
	set, err := NewParticipantSet(participants, Threshold(ms.MultisigPK.Threshold))
	if err != nil {
		return nil, errors.ErrDecode.Newf("multisig public key: %s", err)
	}
	if ms.Bitmap>>uint(set.Len()) != 0 {
		return nil, errors.ErrDecode.Newf("bitmap %b refers to unknown participants", ms.Bitmap)
	}
	if bits.OnesCount16(ms.Bitmap) != len(ms.Sigs) {
		return nil, errors.ErrDecode.Newf("bitmap %b does not match %d signatures", ms.Bitmap, len(ms.Sigs))
	}

	c := &CombinedSignature{set: set, bitmap: ms.Bitmap}
	for n, i := range c.Signers() {
		scheme, sigBytes := ms.Sigs[n].value()
		pub := set.participants[i].pub
		if scheme != pub.Scheme() {
			return nil, errors.ErrDecode.Newf("signature %d scheme %s does not match participant %d scheme %s", n, scheme, i, pub.Scheme())
		}
		sig, err := crypto.NewSignature(pub, sigBytes)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", n)
		}
		c.sigs = append(c.sigs, sig)
	}
	return c, nil
}
