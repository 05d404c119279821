package crypto

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/errors"
	"github.com/iov-one/suimsig/suimsigtest/assert"
)

func seed(b byte) []byte {
	s := make([]byte, 32)
	for i := range s {
		s[i] = b
	}
	return s
}

func TestSigning(t *testing.T) {
	for _, scheme := range []Scheme{ED25519, Secp256k1} {
		t.Run(scheme.String(), func(t *testing.T) {
			private, err := GenPrivateKey(scheme)
			assert.Nil(t, err)
			public := private.PublicKey()

			msg := []byte("foobar")
			msg2 := []byte("dingbooms")

			sig, err := private.Sign(msg)
			assert.Nil(t, err)
			sig2, err := private.Sign(msg2)
			assert.Nil(t, err)

			if bytes.Equal(sig, sig2) {
				t.Fatal("different messages produce the same signature")
			}
			if !public.Verify(msg, sig) {
				t.Fatal("cannot verify a message signed with this public key")
			}
			if !public.Verify(msg2, sig2) {
				t.Fatal("cannot verify a message signed with this public key")
			}
			if public.Verify(msg, sig2) {
				t.Fatal("verified message signature of the wrong message")
			}
			if public.Verify(msg, nil) {
				t.Fatal("verified a nil signature of a message")
			}

			other, err := GenPrivateKey(scheme)
			assert.Nil(t, err)
			if other.PublicKey().Verify(msg, sig) {
				t.Fatal("verified a signature with a foreign key")
			}
		})
	}
}

func TestSecp256k1Deterministic(t *testing.T) {
	key, err := NewPrivateKey(Secp256k1, seed(7))
	assert.Nil(t, err)
	a, err := key.Sign([]byte("payload"))
	assert.Nil(t, err)
	b, err := key.Sign([]byte("payload"))
	assert.Nil(t, err)
	assert.BytesEqual(t, a, b)
	assert.Equal(t, 64, len(a))
	assert.Equal(t, 33, len(key.PublicKey().Bytes()))
}

func TestSecp256k1RejectsHighS(t *testing.T) {
	key, err := NewPrivateKey(Secp256k1, seed(9))
	assert.Nil(t, err)
	msg := []byte("payload")
	sig, err := key.Sign(msg)
	assert.Nil(t, err)

	// s' = n - s is a valid ECDSA signature as well, but malleated.
	s := new(big.Int).SetBytes(sig[32:])
	s.Sub(btcec.S256().N, s)
	high := make([]byte, 64)
	copy(high, sig[:32])
	s.FillBytes(high[32:])

	if !key.PublicKey().Verify(msg, sig) {
		t.Fatal("low s signature must verify")
	}
	if key.PublicKey().Verify(msg, high) {
		t.Fatal("high s signature must not verify")
	}
}

func TestEd25519FromSeed(t *testing.T) {
	key, err := NewPrivateKey(ED25519, seed(0))
	assert.Nil(t, err)
	// RFC 8032 derivation of the all zero seed.
	want, _ := codec.DecodeBase64("O2onvM62pC1io6jQKm8Nc2UyFXcd4kOmOsBIoYtZ2ik=")
	assert.BytesEqual(t, want, key.PublicKey().Bytes())
}

func TestNewPrivateKey(t *testing.T) {
	n := btcec.S256().N.Bytes()

	cases := map[string]struct {
		scheme  Scheme
		secret  []byte
		wantErr *errors.Error
	}{
		"ed25519":               {scheme: ED25519, secret: seed(1)},
		"secp256k1":             {scheme: Secp256k1, secret: seed(1)},
		"ed25519 short":         {scheme: ED25519, secret: seed(1)[:31], wantErr: errors.ErrDecode},
		"secp256k1 zero scalar": {scheme: Secp256k1, secret: seed(0), wantErr: errors.ErrDecode},
		"secp256k1 group order": {scheme: Secp256k1, secret: n, wantErr: errors.ErrDecode},
		"secp256r1":             {scheme: Secp256r1, secret: seed(1), wantErr: errors.ErrDecode},
		"multisig flag":         {scheme: MultiSig, secret: seed(1), wantErr: errors.ErrDecode},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := NewPrivateKey(tc.scheme, tc.secret)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestParsePrivateKey(t *testing.T) {
	ed, err := NewPrivateKey(ED25519, seed(3))
	assert.Nil(t, err)
	k1, err := NewPrivateKey(Secp256k1, seed(3))
	assert.Nil(t, err)

	edBech, err := ed.Bech32()
	assert.Nil(t, err)
	k1Bech, err := k1.Bech32()
	assert.Nil(t, err)

	cases := map[string]struct {
		scheme  Scheme
		encoded string
		want    *PublicKey
		wantErr *errors.Error
	}{
		"raw base64": {
			scheme:  ED25519,
			encoded: codec.EncodeBase64(seed(3)),
			want:    ed.PublicKey(),
		},
		"flagged base64": {
			scheme:  Secp256k1,
			encoded: k1.KeystoreEntry(),
			want:    k1.PublicKey(),
		},
		"bech32 ed25519": {
			scheme:  ED25519,
			encoded: edBech,
			want:    ed.PublicKey(),
		},
		"bech32 secp256k1": {
			scheme:  Secp256k1,
			encoded: k1Bech,
			want:    k1.PublicKey(),
		},
		"flag does not match scheme": {
			scheme:  ED25519,
			encoded: k1.KeystoreEntry(),
			wantErr: errors.ErrDecode,
		},
		"bech32 flag does not match scheme": {
			scheme:  Secp256k1,
			encoded: edBech,
			wantErr: errors.ErrDecode,
		},
		"not base64": {
			scheme:  ED25519,
			encoded: "!!!",
			wantErr: errors.ErrDecode,
		},
		"wrong length": {
			scheme:  ED25519,
			encoded: codec.EncodeBase64(seed(3)[:20]),
			wantErr: errors.ErrDecode,
		},
		"empty": {
			scheme:  ED25519,
			encoded: "",
			wantErr: errors.ErrDecode,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			key, err := ParsePrivateKey(tc.scheme, tc.encoded)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil && !key.PublicKey().Equals(tc.want) {
				t.Fatalf("want %s public key, got %s", tc.want, key.PublicKey())
			}
		})
	}
}

func TestKeystoreEntry(t *testing.T) {
	key, err := NewPrivateKey(Secp256k1, seed(5))
	assert.Nil(t, err)

	read, err := ParseKeystoreEntry(key.KeystoreEntry())
	assert.Nil(t, err)
	assert.Equal(t, Secp256k1, read.Scheme())
	if !read.PublicKey().Equals(key.PublicKey()) {
		t.Fatal("keystore entry does not restore the key")
	}

	_, err = ParseKeystoreEntry("")
	assert.IsErr(t, errors.ErrDecode, err)
}

func TestPrivateKeyStringHidesSecret(t *testing.T) {
	key, err := NewPrivateKey(ED25519, seed(4))
	assert.Nil(t, err)
	s := key.String()
	for _, secret := range []string{codec.EncodeBase64(seed(4)), key.KeystoreEntry()} {
		if bytes.Contains([]byte(s), []byte(secret)) {
			t.Fatalf("string representation reveals the secret: %s", s)
		}
	}
}

func TestParsePublicKey(t *testing.T) {
	ed, err := NewPrivateKey(ED25519, seed(6))
	assert.Nil(t, err)
	k1, err := NewPrivateKey(Secp256k1, seed(6))
	assert.Nil(t, err)

	cases := map[string]struct {
		scheme  Scheme
		encoded string
		want    *PublicKey
		wantErr *errors.Error
	}{
		"flagged ed25519": {
			scheme:  ED25519,
			encoded: ed.PublicKey().String(),
			want:    ed.PublicKey(),
		},
		"bare ed25519": {
			scheme:  ED25519,
			encoded: codec.EncodeBase64(ed.PublicKey().Bytes()),
			want:    ed.PublicKey(),
		},
		"bare secp256k1": {
			scheme:  Secp256k1,
			encoded: codec.EncodeBase64(k1.PublicKey().Bytes()),
			want:    k1.PublicKey(),
		},
		"flag mismatch": {
			scheme:  Secp256k1,
			encoded: codec.EncodeBase64(append([]byte{0x00}, k1.PublicKey().Bytes()...)),
			wantErr: errors.ErrDecode,
		},
		"secp256k1 not on curve": {
			scheme:  Secp256k1,
			encoded: codec.EncodeBase64(append([]byte{0x05}, seed(1)...)),
			wantErr: errors.ErrDecode,
		},
		"unsupported scheme": {
			scheme:  Secp256r1,
			encoded: codec.EncodeBase64(k1.PublicKey().Bytes()),
			wantErr: errors.ErrDecode,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			key, err := ParsePublicKey(tc.scheme, tc.encoded)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil && !key.Equals(tc.want) {
				t.Fatalf("want %s public key, got %s", tc.want, key)
			}
		})
	}
}

func TestPublicKeyRaw(t *testing.T) {
	key, err := NewPrivateKey(Secp256k1, seed(8))
	assert.Nil(t, err)
	pub := key.PublicKey()

	raw := pub.Raw()
	assert.Equal(t, byte(0x01), raw[0])
	assert.Equal(t, 34, len(raw))

	read, err := ParseRawPublicKey(raw)
	assert.Nil(t, err)
	if !read.Equals(pub) {
		t.Fatal("raw encoding does not restore the key")
	}
	assert.Equal(t, pub.Address(), read.Address())
	if pub.Address().IsZero() {
		t.Fatal("zero address")
	}
}

func TestSignatureSerialization(t *testing.T) {
	for _, scheme := range []Scheme{ED25519, Secp256k1} {
		t.Run(scheme.String(), func(t *testing.T) {
			key, err := NewPrivateKey(scheme, seed(2))
			assert.Nil(t, err)
			msg := []byte("a message")

			sig, err := SignMessage(key, msg)
			assert.Nil(t, err)
			raw := sig.Serialize()
			assert.Equal(t, scheme.Flag(), raw[0])
			assert.BytesEqual(t, key.PublicKey().Bytes(), raw[65:])

			read, err := ParseSignature(sig.String())
			assert.Nil(t, err)
			assert.BytesEqual(t, sig.Bytes(), read.Bytes())
			if !read.PublicKey().Equals(key.PublicKey()) {
				t.Fatal("public key not restored")
			}
			if !read.Verify(msg) {
				t.Fatal("restored signature does not verify")
			}
			if read.Verify([]byte("another message")) {
				t.Fatal("signature verifies a different message")
			}

			_, err = ParseRawSignature(raw[:len(raw)-1])
			assert.IsErr(t, errors.ErrDecode, err)
		})
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("ed25519")
	assert.Nil(t, err)
	assert.Equal(t, ED25519, s)

	s, err = ParseScheme("SECP256K1")
	assert.Nil(t, err)
	assert.Equal(t, Secp256k1, s)

	_, err = ParseScheme("rsa")
	assert.IsErr(t, errors.ErrDecode, err)
}
