package multisig

import (
	"testing"

	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/errors"
	"github.com/iov-one/suimsig/suimsigtest/assert"
)

func TestPartialSignatureEnvelope(t *testing.T) {
	c, keys := newTestCoordinator(t, nil, 1, 1, 1)
	p := sign(t, c, testTxBytes, 1)

	env, err := p.Envelope()
	assert.Nil(t, err)

	read, err := ParsePartialSignature(env)
	assert.Nil(t, err)
	assert.BytesEqual(t, p.TxBytes, read.TxBytes)
	assert.Equal(t, p.Digest(), read.Digest())
	assert.Nil(t, read.Verify())
	if !read.Signature.PublicKey().Equals(keys[1].PublicKey()) {
		t.Fatal("signer public key not restored")
	}

	combined, err := c.Combine([]*PartialSignature{read})
	assert.Nil(t, err)
	assert.Nil(t, c.Verify(testTxBytes, combined))
}

func TestParsePartialSignatureErrors(t *testing.T) {
	c, _ := newTestCoordinator(t, nil, 1, 1)
	p := sign(t, c, testTxBytes, 0)
	valid, err := codec.EncodeSignedEnvelope(p.TxBytes, p.Signature.Serialize())
	assert.Nil(t, err)

	truncated, err := codec.EncodeSignedEnvelope(p.TxBytes, p.Signature.Serialize()[:40])
	assert.Nil(t, err)

	cases := map[string]struct {
		envelope string
		wantErr  *errors.Error
	}{
		"valid":               {envelope: valid},
		"valid with newline":  {envelope: valid + "\n"},
		"not json":            {envelope: "transaction", wantErr: errors.ErrDecode},
		"missing signature":   {envelope: `{"transactionBlockBytes": ""}`, wantErr: errors.ErrDecode},
		"truncated signature": {envelope: truncated, wantErr: errors.ErrDecode},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := ParsePartialSignature(tc.envelope)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}
