package codec

import (
	"encoding/json"

	"github.com/iov-one/suimsig/errors"
)

// SignedEnvelope is the transport representation of a transaction payload
// together with a signature over it. The signature can be a single
// participant signature or a combined multisig signature.
type SignedEnvelope struct {
	TxBytes   string `json:"transactionBlockBytes"`
	Signature string `json:"signature"`
}

// EncodeSignedEnvelope returns the JSON text representation of given payload
// and signature bytes.
func EncodeSignedEnvelope(payload, signature []byte) (string, error) {
	raw, err := json.Marshal(SignedEnvelope{
		TxBytes:   EncodeBase64(payload),
		Signature: EncodeBase64(signature),
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrHuman, err.Error())
	}
	return string(raw), nil
}

// DecodeSignedEnvelope is the inverse of EncodeSignedEnvelope. Both fields
// must be present, an empty string is a valid empty value.
func DecodeSignedEnvelope(s string) (payload, signature []byte, err error) {
	var env struct {
		TxBytes   *string `json:"transactionBlockBytes"`
		Signature *string `json:"signature"`
	}
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, nil, errors.Wrapf(errors.ErrDecode, "envelope json: %s", err)
	}
	if env.TxBytes == nil {
		return nil, nil, errors.Wrap(errors.ErrDecode, "envelope: missing transactionBlockBytes")
	}
	if env.Signature == nil {
		return nil, nil, errors.Wrap(errors.ErrDecode, "envelope: missing signature")
	}
	if payload, err = DecodeBase64(*env.TxBytes); err != nil {
		return nil, nil, errors.Wrap(err, "transactionBlockBytes")
	}
	if signature, err = DecodeBase64(*env.Signature); err != nil {
		return nil, nil, errors.Wrap(err, "signature")
	}
	return payload, signature, nil
}
