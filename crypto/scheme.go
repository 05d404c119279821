package crypto

import (
	"fmt"
	"strings"

	"github.com/iov-one/suimsig/errors"
)

// Scheme is the one byte flag identifying a signature algorithm.
type Scheme uint8

const (
	ED25519   Scheme = 0x00
	Secp256k1 Scheme = 0x01
	Secp256r1 Scheme = 0x02
	// MultiSig flags combined signatures and the composite address preimage.
	MultiSig Scheme = 0x03
)

var schemeNames = map[Scheme]string{
	ED25519:   "ED25519",
	Secp256k1: "Secp256k1",
	Secp256r1: "Secp256r1",
	MultiSig:  "MultiSig",
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// Flag returns the byte prefix of this scheme.
func (s Scheme) Flag() byte {
	return byte(s)
}

// ParseScheme returns the scheme of given name. Names are matched case
// insensitive.
func ParseScheme(name string) (Scheme, error) {
	for s, n := range schemeNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrDecode, "unknown signature scheme %q", name)
}

func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Scheme) UnmarshalText(raw []byte) error {
	v, err := ParseScheme(string(raw))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
