package multisig

import (
	"bytes"
	"fmt"

	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/errors"
)

// Selector points to a single participant of a set.
type Selector interface {
	resolve(*ParticipantSet) (int, error)
	fmt.Stringer
}

// ByIndex selects a participant by its position in the set.
type ByIndex int

func (i ByIndex) resolve(s *ParticipantSet) (int, error) {
	if _, err := s.Participant(int(i)); err != nil {
		return -1, err
	}
	return int(i), nil
}

func (i ByIndex) String() string {
	return fmt.Sprintf("participant #%d", int(i))
}

// ByKey selects a participant by its base64 encoded public key. The key may
// be given with or without the scheme flag. Resolving fails with
// errors.ErrDecode if the key is not valid base64 and with errors.ErrNotFound
// if no participant holds the key.
type ByKey string

func (k ByKey) resolve(s *ParticipantSet) (int, error) {
	raw, err := codec.DecodeBase64(string(k))
	if err != nil {
		return -1, errors.Wrap(err, "participant public key")
	}
	for i, p := range s.participants {
		if bytes.Equal(raw, p.Raw()) || bytes.Equal(raw, p.pub.Bytes()) {
			return i, nil
		}
	}
	return -1, errors.Wrapf(errors.ErrNotFound, "participant with public key %s", string(k))
}

func (k ByKey) String() string {
	return fmt.Sprintf("participant %s", string(k))
}
