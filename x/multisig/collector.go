package multisig

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
	"github.com/iov-one/suimsig/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Collector gathers partial signatures of a single transaction. Partial
// signatures are validated when added and can be added concurrently and in
// any order.
type Collector struct {
	id     uuid.UUID
	coord  *Coordinator
	tx     *UnsignedTransaction
	logger log.Logger

	mu       sync.Mutex
	partials map[int]*PartialSignature
	weight   Weight
}

// NewCollector returns a collector of partial signatures for given
// transaction. Each collector has a unique session ID.
func (c *Coordinator) NewCollector(tx *UnsignedTransaction) (*Collector, error) {
	if tx == nil || len(tx.Bytes) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "transaction")
	}
	if !tx.Sender.IsZero() && !tx.Sender.Equals(c.address) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "transaction sender %s is not the multisig account %s", tx.Sender, c.address)
	}
	id := uuid.New()
	return &Collector{
		id:       id,
		coord:    c,
		tx:       &UnsignedTransaction{Sender: c.address, Bytes: tx.Bytes},
		logger:   c.logger.With("session", id.String()),
		partials: make(map[int]*PartialSignature),
	}, nil
}

// ID returns the session ID of this collector.
func (c *Collector) ID() uuid.UUID {
	return c.id
}

// Transaction returns the transaction signatures are collected for.
func (c *Collector) Transaction() *UnsignedTransaction {
	return c.tx
}

// Add validates and stores given partial signature. It returns true if the
// collected weight reaches the threshold.
func (c *Collector) Add(p *PartialSignature) (bool, error) {
	if p == nil || p.Signature == nil {
		return false, errors.Wrap(errors.ErrEmpty, "partial signature")
	}
	if !bytes.Equal(p.TxBytes, c.tx.Bytes) {
		return false, errors.Wrap(errors.ErrPayloadMismatch, "partial signature signs a different transaction")
	}
	i, err := c.coord.signer(p)
	if err != nil {
		return false, err
	}
	if err := p.Verify(); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.partials[i]; ok {
		return false, errors.Wrapf(errors.ErrDuplicateSigner, "participant %d already signed", i)
	}
	c.partials[i] = p
	c.weight += c.coord.set.participants[i].weight

	ready := c.weight >= Weight(c.coord.set.threshold)
	c.logger.Debug("Partial signature collected", "participant", i, "weight", c.weight, "ready", ready)
	return ready, nil
}

// Weight returns the summed weight of the collected signers.
func (c *Collector) Weight() Weight {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.weight
}

// Ready returns true if the collected weight reaches the threshold.
func (c *Collector) Ready() bool {
	return c.Weight() >= Weight(c.coord.set.threshold)
}

// Combine returns the combined signature of all collected partial
// signatures.
func (c *Collector) Combine() (*CombinedSignature, error) {
	c.mu.Lock()
	partials := make([]*PartialSignature, 0, len(c.partials))
	for _, p := range c.partials {
		partials = append(partials, p)
	}
	c.mu.Unlock()

	return c.coord.Combine(partials)
}
