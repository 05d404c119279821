package multisig

import (
	"bytes"
	"context"
	"sort"

	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Coordinator drives the signing flow of a single multisig account. It is
// not modified after creation and is safe for concurrent use.
type Coordinator struct {
	set       *ParticipantSet
	address   suimsig.Address
	ledger    Ledger
	submitter *Submitter
	logger    log.Logger
}

// NewCoordinator returns a coordinator of the multisig account of given
// participant set. Ledger is required only to build and execute
// transactions. A nil logger discards all messages.
func NewCoordinator(set *ParticipantSet, ledger Ledger, logger log.Logger) (*Coordinator, error) {
	if set == nil {
		return nil, errors.Wrap(errors.ErrConfig, "no participant set")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	address := DeriveAddress(set)
	c := &Coordinator{
		set:     set,
		address: address,
		ledger:  ledger,
		logger:  logger.With("module", "multisig", "account", address.String()),
	}
	if ledger != nil {
		c.submitter = NewSubmitter(ledger)
	}
	return c, nil
}

// Address returns the composite address of the multisig account.
func (c *Coordinator) Address() suimsig.Address {
	return c.address
}

func (c *Coordinator) Participants() *ParticipantSet {
	return c.set
}

func (c *Coordinator) Threshold() Threshold {
	return c.set.threshold
}

// BuildUnsignedTransaction returns a transaction of the multisig account
// built by the ledger from given template.
func (c *Coordinator) BuildUnsignedTransaction(ctx context.Context, tmpl TxTemplate) (*UnsignedTransaction, error) {
	if c.ledger == nil {
		return nil, errors.Wrap(errors.ErrHuman, "coordinator has no ledger")
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.ledger.CompleteUnsignedTransaction(ctx, tmpl, c.address)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Transaction built", "method", tmpl.Method, "size", len(raw))
	return &UnsignedTransaction{Sender: c.address, Bytes: raw}, nil
}

// RequestPartialSignature signs given transaction by the selected
// participant. The participant must hold a private key.
//
// Only the Sender field of tx is checked against the multisig account. The
// transaction bytes are signed as they are, the sender encoded inside them is
// not inspected.
func (c *Coordinator) RequestPartialSignature(tx *UnsignedTransaction, sel Selector) (*PartialSignature, error) {
	if tx == nil || len(tx.Bytes) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "transaction")
	}
	i, p, err := c.set.Resolve(sel)
	if err != nil {
		return nil, err
	}
	if !p.HasSigningCapability() {
		return nil, errors.Wrapf(errors.ErrMissingKey, "participant %d", i)
	}

	switch {
	case tx.Sender.IsZero():
		tx = &UnsignedTransaction{Sender: c.address, Bytes: tx.Bytes}
	case !tx.Sender.Equals(c.address):
		return nil, errors.Wrapf(errors.ErrInvalidInput, "transaction sender %s is not the multisig account %s", tx.Sender, c.address)
	}

	digest := tx.Digest()
	raw, err := p.Sign(digest[:])
	if err != nil {
		return nil, errors.Wrapf(err, "participant %d", i)
	}
	sig, err := crypto.NewSignature(p.pub, raw)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Partial signature created", "participant", i, "weight", p.weight)
	return &PartialSignature{TxBytes: tx.Bytes, Signature: sig}, nil
}

// contribution is a partial signature matched with its participant.
type contribution struct {
	index int
	sig   *crypto.Signature
}

// Combine builds a combined signature from given partial signatures. All
// partial signatures must sign the same transaction, each participant can
// contribute only once and the summed weight of the contributors must reach
// the threshold. The result does not depend on the order of partials.
func (c *Coordinator) Combine(partials []*PartialSignature) (*CombinedSignature, error) {
	if len(partials) == 0 {
		return nil, errors.Wrapf(errors.ErrThresholdNotMet, "no partial signatures, threshold %d", c.set.threshold)
	}
	for i, p := range partials {
		if p == nil || p.Signature == nil {
			return nil, errors.Wrapf(errors.ErrEmpty, "partial signature %d", i)
		}
	}

	payload := partials[0].TxBytes
	for i, p := range partials[1:] {
		if !bytes.Equal(payload, p.TxBytes) {
			return nil, errors.Wrapf(errors.ErrPayloadMismatch, "partial signature %d signs a different transaction", i+1)
		}
	}

	contributions := make([]contribution, 0, len(partials))
	seen := make(map[int]int, len(partials))
	for n, p := range partials {
		i, err := c.signer(p)
		if err != nil {
			return nil, errors.Wrapf(err, "partial signature %d", n)
		}
		if first, ok := seen[i]; ok {
			return nil, errors.Wrapf(errors.ErrDuplicateSigner, "participant %d signed in partial signatures %d and %d", i, first, n)
		}
		seen[i] = n
		contributions = append(contributions, contribution{index: i, sig: p.Signature})
	}

	for n, p := range partials {
		if err := p.Verify(); err != nil {
			return nil, errors.Wrapf(err, "partial signature %d", n)
		}
	}

	var weight Weight
	for _, ct := range contributions {
		weight += c.set.participants[ct.index].weight
	}
	if Weight(c.set.threshold) > weight {
		return nil, errors.Wrapf(errors.ErrThresholdNotMet, "weight %d, threshold %d", weight, c.set.threshold)
	}

	sort.Slice(contributions, func(a, b int) bool {
		return contributions[a].index < contributions[b].index
	})
	combined := &CombinedSignature{set: c.set}
	for _, ct := range contributions {
		combined.bitmap |= 1 << uint(ct.index)
		combined.sigs = append(combined.sigs, ct.sig)
	}
	c.logger.Debug("Partial signatures combined", "signers", len(contributions), "weight", weight, "threshold", c.set.threshold)
	return combined, nil
}

// signer returns the position of the participant that created given partial
// signature.
func (c *Coordinator) signer(p *PartialSignature) (int, error) {
	i, ok := c.set.IndexOf(p.Signature.PublicKey())
	if !ok {
		return -1, errors.Wrapf(errors.ErrNotFound, "signer %s is not a participant", p.Signature.PublicKey())
	}
	return i, nil
}

// Verify returns an error if given combined signature does not authorize
// given transaction for this multisig account.
func (c *Coordinator) Verify(txBytes []byte, sig *CombinedSignature) error {
	if sig == nil {
		return errors.Wrap(errors.ErrEmpty, "combined signature")
	}
	if !sig.set.Equals(c.set) {
		return errors.Wrapf(errors.ErrInvalidSignature, "signature of account %s", sig.Address())
	}
	return sig.Verify(txBytes)
}

// Execute submits given transaction with the combined signature to the
// ledger. Ledger errors are returned unchanged, nothing is retried.
func (c *Coordinator) Execute(ctx context.Context, tx *UnsignedTransaction, sig *CombinedSignature) (*Receipt, error) {
	if c.submitter == nil {
		return nil, errors.Wrap(errors.ErrHuman, "coordinator has no ledger")
	}
	receipt, err := c.submitter.Submit(ctx, tx, sig)
	if err != nil {
		c.logger.Error("Transaction submission failed", "cause", err)
		return nil, err
	}
	c.logger.Info("Transaction executed", "digest", receipt.Digest, "status", receipt.Status)
	return receipt, nil
}

// CombineAndExecute combines given partial signatures and submits the signed
// transaction. Nothing is submitted if the partial signatures cannot be
// combined.
func (c *Coordinator) CombineAndExecute(ctx context.Context, partials []*PartialSignature) (*Receipt, error) {
	sig, err := c.Combine(partials)
	if err != nil {
		return nil, err
	}
	tx := &UnsignedTransaction{Sender: c.address, Bytes: partials[0].TxBytes}
	return c.Execute(ctx, tx, sig)
}
