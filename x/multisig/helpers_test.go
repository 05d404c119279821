package multisig

import (
	"testing"

	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/suimsigtest"
)

// newTestSet returns a set of ED25519 participants that can all sign.
// Participant i key is created from seed i+1.
func newTestSet(t testing.TB, threshold Threshold, weights ...Weight) (*ParticipantSet, []*crypto.PrivateKey) {
	t.Helper()
	keys := make([]*crypto.PrivateKey, len(weights))
	creds := make([]*Credential, len(weights))
	for i, w := range weights {
		keys[i] = suimsigtest.SeedKey(t, crypto.ED25519, byte(i+1))
		c, err := FromSigner(keys[i], w)
		if err != nil {
			t.Fatalf("credential %d: %s", i, err)
		}
		creds[i] = c
	}
	set, err := NewParticipantSet(creds, threshold)
	if err != nil {
		t.Fatalf("participant set: %+v", err)
	}
	return set, keys
}

func publicCredential(t testing.TB, key *crypto.PrivateKey, w Weight) *Credential {
	t.Helper()
	c, err := NewCredential(key.PublicKey(), w)
	if err != nil {
		t.Fatalf("credential: %s", err)
	}
	return c
}
