package multisig

import (
	"github.com/iov-one/suimsig/errors"
)

const (
	// Maximum value a weight value can be set to. The ledger encodes
	// weights as u8.
	maxWeightValue = 255

	// Maximum value of a threshold. The ledger encodes the threshold as
	// u16.
	maxThresholdValue = 65535

	// This is the maximum number of participants the ledger accepts in
	// a single multisig public key.
	maxParticipantsAllowed = 10
)

// Weight represents the strength of a signature.
type Weight int32

func (w Weight) Validate() error {
	if w < 1 {
		return errors.Wrap(errors.ErrConfig,
			"weight must be greater than 0")
	}
	if w > maxWeightValue {
		return errors.Wrapf(errors.ErrConfig,
			"weight is %d and must not be greater than %d", w, maxWeightValue)
	}
	return nil
}

// Threshold is the minimal summed weight of distinct signers required to
// authorize a transaction.
type Threshold int32

func (t Threshold) Validate() error {
	if t < 1 {
		return errors.Wrap(errors.ErrConfig,
			"threshold must be greater than 0")
	}
	if t > maxThresholdValue {
		return errors.Wrapf(errors.ErrConfig,
			"threshold is %d and must not be greater than %d", t, maxThresholdValue)
	}
	return nil
}
