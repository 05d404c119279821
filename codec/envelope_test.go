package codec

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/iov-one/suimsig/errors"
)

func TestSignedEnvelopeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	random := func(n int) []byte {
		b := make([]byte, n)
		rnd.Read(b)
		return b
	}

	cases := map[string]struct {
		payload   []byte
		signature []byte
	}{
		"empty payload and signature": {},
		"empty payload": {
			signature: random(97),
		},
		"empty signature": {
			payload: random(10),
		},
		"single participant signature": {
			payload:   random(350),
			signature: random(97),
		},
		"large payload": {
			payload:   random(128 << 10),
			signature: random(300),
		},
		"binary zeros": {
			payload:   make([]byte, 64),
			signature: make([]byte, 64),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s, err := EncodeSignedEnvelope(tc.payload, tc.signature)
			if err != nil {
				t.Fatalf("cannot encode: %s", err)
			}
			payload, signature, err := DecodeSignedEnvelope(s)
			if err != nil {
				t.Fatalf("cannot decode: %s", err)
			}
			if diff := cmp.Diff(tc.payload, payload, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("payload mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.signature, signature, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("signature mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSignedEnvelopeFieldNames(t *testing.T) {
	s, err := EncodeSignedEnvelope([]byte{1, 2, 3}, []byte{4, 5})
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	var fields map[string]string
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		t.Fatalf("envelope is not a json object: %s", err)
	}
	want := map[string]string{
		"transactionBlockBytes": "AQID",
		"signature":             "BAU=",
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("unexpected envelope (-want +got):\n%s", diff)
	}
}

func TestDecodeSignedEnvelopeErrors(t *testing.T) {
	cases := map[string]string{
		"not json":             `transactionBlockBytes=AQID`,
		"json array":           `["AQID", "BAU="]`,
		"null":                 `null`,
		"missing payload":      `{"signature": "BAU="}`,
		"missing signature":    `{"transactionBlockBytes": "AQID"}`,
		"payload not a string": `{"transactionBlockBytes": 12, "signature": "BAU="}`,
		"invalid base64":       `{"transactionBlockBytes": "***", "signature": "BAU="}`,
		"unpadded base64":      `{"transactionBlockBytes": "AQID", "signature": "BAU"}`,
	}

	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, _, err := DecodeSignedEnvelope(raw); !errors.ErrDecode.Is(err) {
				t.Fatalf("want decode error, got %+v", err)
			}
		})
	}
}

func TestDecodeSignedEnvelopeAcceptsForeignFields(t *testing.T) {
	raw := `{"transactionBlockBytes": "AQID", "signature": "BAU=", "digest": "x"}`
	payload, _, err := DecodeSignedEnvelope(raw)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if !bytes.Equal(payload, []byte{1, 2, 3}) {
		t.Fatalf("unexpected payload: %x", payload)
	}
}
