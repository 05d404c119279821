package suimsig

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/suimsig/errors"
	"golang.org/x/crypto/blake2b"
)

// AddressLength is the length of all Sui addresses.
const AddressLength = 32

// Address is a Sui account identifier. It is a one-way blake2b-256 digest of
// a scheme flag followed by the public key material of the account, see
// NewAddress.
type Address [AddressLength]byte

// ZeroAddress is the unset address value.
var ZeroAddress Address

// NewAddress hashes given preimage into an address. Preimage must start with
// the signature scheme flag.
func NewAddress(preimage []byte) Address {
	return Address(blake2b.Sum256(preimage))
}

// ParseAddress decodes a human readable, hex encoded address. The 0x prefix is
// optional. Shorter values are left padded with zeros, so that "0x2" is
// a valid address.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(raw) == 0 {
		return a, errors.Wrap(errors.ErrDecode, "empty address")
	}
	if len(raw) > 2*AddressLength {
		return a, errors.Wrapf(errors.ErrDecode, "address too long: %d hex digits", len(raw))
	}
	if len(raw)%2 == 1 {
		raw = "0" + raw
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return a, errors.Wrapf(errors.ErrDecode, "address %q: %s", s, err)
	}
	copy(a[AddressLength-len(b):], b)
	return a, nil
}

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return a == b
}

// IsZero returns true if the address was not set.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// String returns the canonical representation: 0x followed by 64 lower case
// hex digits.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// Validate returns an error if the address is not set.
func (a Address) Validate() error {
	if a.IsZero() {
		return errors.Wrap(errors.ErrEmpty, "address")
	}
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrapf(errors.ErrDecode, "cannot decode json: %s", err)
	}
	// No value zero the address.
	if len(enc) == 0 {
		*a = ZeroAddress
		return nil
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
