package multisig

import (
	"encoding/binary"

	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/crypto"
)

/*
DeriveAddress returns the composite address of given participant set.

	flag    | threshold | participant 0          | ... | participant n
	1 byte  | u16 LE    | flag | public key | u8  | ... |
	0x03    |           |      weight             |

Participants are taken in the set order. The preimage is hashed with
blake2b-256. Any change of a key, a weight, the threshold or the order
results in a different address.
*/
func DeriveAddress(s *ParticipantSet) suimsig.Address {
	preimage := make([]byte, 0, 3+s.Len()*35)
	preimage = append(preimage, crypto.MultiSig.Flag())
	var threshold [2]byte
	binary.LittleEndian.PutUint16(threshold[:], uint16(s.threshold))
	preimage = append(preimage, threshold[:]...)
	for _, p := range s.participants {
		preimage = append(preimage, p.Raw()...)
		preimage = append(preimage, uint8(p.weight))
	}
	return suimsig.NewAddress(preimage)
}
