// Package suimsigtest provides helpers for tests that need keys and
// participant sets.
package suimsigtest

import (
	"github.com/iov-one/suimsig/crypto"
)

// Tester is implemented by both *testing.T and *testing.B.
type Tester interface {
	Helper()
	Fatalf(string, ...interface{})
}

// NewKey returns a random private key of given scheme.
func NewKey(t Tester, scheme crypto.Scheme) *crypto.PrivateKey {
	t.Helper()
	key, err := crypto.GenPrivateKey(scheme)
	if err != nil {
		t.Fatalf("cannot generate %s key: %s", scheme, err)
	}
	return key
}

// SeedKey returns a deterministic private key. Secrets are filled with given
// byte, so the same seed always produces the same key. Seed must not be zero.
func SeedKey(t Tester, scheme crypto.Scheme, seed byte) *crypto.PrivateKey {
	t.Helper()
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = seed
	}
	key, err := crypto.NewPrivateKey(scheme, secret)
	if err != nil {
		t.Fatalf("cannot create %s key from seed %d: %s", scheme, seed, err)
	}
	return key
}
