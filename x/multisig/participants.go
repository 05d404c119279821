package multisig

import (
	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/errors"
)

// ParticipantSet is an ordered list of credentials together with
// a threshold. Order is significant: it is the order used when the composite
// address is derived and the order the combined signature bitmap refers to.
// A set is never modified after creation.
type ParticipantSet struct {
	participants []*Credential
	threshold    Threshold
	total        Weight
}

// NewParticipantSet validates given configuration and returns a participant
// set. Participants keep the order they were given in. Any configuration
// problem results in errors.ErrConfig.
func NewParticipantSet(participants []*Credential, threshold Threshold) (*ParticipantSet, error) {
	switch n := len(participants); {
	case n == 0:
		return nil, errors.Wrap(errors.ErrConfig, "no participants")
	case n > maxParticipantsAllowed:
		return nil, errors.Wrapf(errors.ErrConfig, "too many participants: %d > %d", n, maxParticipantsAllowed)
	}
	total, err := validateWeights(participants, threshold)
	if err != nil {
		return nil, err
	}
	ps := make([]*Credential, len(participants))
	copy(ps, participants)
	return &ParticipantSet{
		participants: ps,
		threshold:    threshold,
		total:        total,
	}, nil
}

// validateWeights returns the total weight of given participants or an error
// if given participants and threshold configuration is not valid.
func validateWeights(ps []*Credential, threshold Threshold) (Weight, error) {
	var total Weight
	seen := make(map[string]int, len(ps))
	for i, p := range ps {
		if p == nil || p.pub == nil {
			return 0, errors.Wrapf(errors.ErrConfig, "participant %d: missing public key", i)
		}
		if err := p.weight.Validate(); err != nil {
			return 0, errors.Wrapf(err, "participant %d", i)
		}
		key := string(p.Raw())
		if j, ok := seen[key]; ok {
			return 0, errors.Wrapf(errors.ErrConfig, "participant %d: public key %s already listed as participant %d", i, p.pub, j)
		}
		seen[key] = i
		total += p.weight
	}
	if err := threshold.Validate(); err != nil {
		return 0, err
	}
	if Weight(threshold) > total {
		return 0, errors.Wrapf(errors.ErrConfig, "threshold %d greater than total weight %d", threshold, total)
	}
	return total, nil
}

// Len returns the number of participants.
func (s *ParticipantSet) Len() int {
	return len(s.participants)
}

// Participants returns the credentials in the set order.
func (s *ParticipantSet) Participants() []*Credential {
	ps := make([]*Credential, len(s.participants))
	copy(ps, s.participants)
	return ps
}

// Participant returns the credential at given position.
func (s *ParticipantSet) Participant(i int) (*Credential, error) {
	if i < 0 || i >= len(s.participants) {
		return nil, errors.Wrapf(errors.ErrNotFound, "participant index %d out of range [0, %d)", i, len(s.participants))
	}
	return s.participants[i], nil
}

func (s *ParticipantSet) Threshold() Threshold {
	return s.threshold
}

// TotalWeight returns the sum of all participant weights.
func (s *ParticipantSet) TotalWeight() Weight {
	return s.total
}

// IndexOf returns the position of the participant owning given public key.
func (s *ParticipantSet) IndexOf(pub *crypto.PublicKey) (int, bool) {
	for i, p := range s.participants {
		if p.pub.Equals(pub) {
			return i, true
		}
	}
	return -1, false
}

// Resolve returns the participant given selector points to, together with
// its position.
func (s *ParticipantSet) Resolve(sel Selector) (int, *Credential, error) {
	if sel == nil {
		return -1, nil, errors.Wrap(errors.ErrNotFound, "no participant selector")
	}
	i, err := sel.resolve(s)
	if err != nil {
		return -1, nil, err
	}
	return i, s.participants[i], nil
}

// Equals returns true if both sets have the same public keys and weights in
// the same order and the same threshold. Signing capability is ignored.
func (s *ParticipantSet) Equals(other *ParticipantSet) bool {
	if s.threshold != other.threshold || len(s.participants) != len(other.participants) {
		return false
	}
	for i, p := range s.participants {
		o := other.participants[i]
		if p.weight != o.weight || !p.pub.Equals(o.pub) {
			return false
		}
	}
	return true
}

// Address returns the composite address of this set.
func (s *ParticipantSet) Address() suimsig.Address {
	return DeriveAddress(s)
}
