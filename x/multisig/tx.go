package multisig

import (
	"encoding/json"
	"strings"

	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/errors"
)

// TxTemplate describes a transaction that the ledger transaction builder
// completes. Method is the name of an unsafe_* builder method, for example
// unsafe_paySui. Params are the method arguments without the leading sender
// address, which is always the multisig account.
type TxTemplate struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

func (t TxTemplate) Validate() error {
	var errs error
	if !strings.HasPrefix(t.Method, "unsafe_") {
		errs = errors.AppendField(errs, "method",
			errors.Wrapf(errors.ErrInvalidInput, "%q is not a transaction builder method", t.Method))
	}
	for i, p := range t.Params {
		if !json.Valid(p) {
			errs = errors.AppendField(errs, "params",
				errors.Wrapf(errors.ErrInvalidInput, "parameter %d is not valid JSON", i))
		}
	}
	return errs
}

// UnsignedTransaction is a serialized transaction of the multisig account.
// Bytes are produced by the ledger transaction builder and are opaque here.
type UnsignedTransaction struct {
	// Sender is the account the transaction was built for. A zero value
	// means unknown, for example when the transaction was received from
	// another participant.
	Sender suimsig.Address
	Bytes  []byte
}

// String returns the base64 encoded transaction bytes.
func (tx *UnsignedTransaction) String() string {
	return codec.EncodeBase64(tx.Bytes)
}

// Digest returns the intent digest all participants sign.
func (tx *UnsignedTransaction) Digest() [32]byte {
	return suimsig.IntentDigest(tx.Bytes)
}

// ParseUnsignedTransaction decodes base64 encoded transaction bytes. Sender
// of the returned transaction is unknown.
func ParseUnsignedTransaction(encoded string) (*UnsignedTransaction, error) {
	raw, err := codec.DecodeBase64(strings.TrimSpace(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "transaction bytes")
	}
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "transaction bytes")
	}
	return &UnsignedTransaction{Bytes: raw}, nil
}
