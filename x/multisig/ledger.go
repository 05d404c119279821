package multisig

import (
	"context"
	"encoding/json"

	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/errors"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger_test.go -package=multisig

// Ledger is the ledger client the coordinator depends on.
type Ledger interface {
	// CompleteUnsignedTransaction asks the ledger transaction builder to
	// resolve gas, fees and objects of given template and returns the
	// serialized transaction of given sender.
	CompleteUnsignedTransaction(ctx context.Context, tmpl TxTemplate, sender suimsig.Address) ([]byte, error)
	// Submit executes a transaction authorized by given base64 encoded
	// signature. Failures are reported as errors.ErrSubmission.
	Submit(ctx context.Context, txBytes []byte, signature string) (*Receipt, error)
}

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Receipt is the result of a transaction execution.
type Receipt struct {
	// Digest is the ledger identifier of the executed transaction.
	Digest string `json:"digest"`
	// Status is either StatusSuccess or StatusFailure.
	Status string `json:"status"`
	// Error describes the failure if the status is StatusFailure.
	Error string `json:"error,omitempty"`
	// Raw is the full ledger response.
	Raw json.RawMessage `json:"raw,omitempty"`
}

func (r *Receipt) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Submitter hands combined signatures over to the ledger. It does not retry
// and returns ledger errors as they are.
type Submitter struct {
	ledger Ledger
}

func NewSubmitter(ledger Ledger) *Submitter {
	return &Submitter{ledger: ledger}
}

// Submit executes given transaction with the combined signature attached.
func (s *Submitter) Submit(ctx context.Context, tx *UnsignedTransaction, sig *CombinedSignature) (*Receipt, error) {
	if tx == nil || len(tx.Bytes) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "transaction")
	}
	if sig == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "combined signature")
	}
	return s.ledger.Submit(ctx, tx.Bytes, sig.String())
}
