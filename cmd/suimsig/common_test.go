package main

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/crypto"
	"github.com/iov-one/suimsig/suimsigtest"
	"github.com/iov-one/suimsig/x/multisig"
)

// writeConfig writes a configuration of a multisig account with ED25519
// participants created from seeds 1, 2 and 3, each of weight 1. Only
// participants listed in signers have their private key configured.
func writeConfig(t *testing.T, threshold int, signers ...int) string {
	t.Helper()

	canSign := make(map[int]bool)
	for _, i := range signers {
		canSign[i] = true
	}
	conf := multisig.Config{Threshold: multisig.Threshold(threshold)}
	for i := 0; i < 3; i++ {
		key := suimsigtest.SeedKey(t, crypto.ED25519, byte(i+1))
		p := multisig.ParticipantConfig{
			Scheme:    crypto.ED25519,
			PublicKey: key.PublicKey().String(),
			Weight:    1,
		}
		if canSign[i] {
			priv, err := key.Bech32()
			if err != nil {
				t.Fatalf("cannot encode private key: %s", err)
			}
			p.PrivateKey = priv
		}
		conf.Participants = append(conf.Participants, p)
	}

	raw, err := json.Marshal(conf)
	if err != nil {
		t.Fatalf("cannot serialize configuration: %s", err)
	}
	path := filepath.Join(t.TempDir(), "multisig.json")
	if err := ioutil.WriteFile(path, raw, 0600); err != nil {
		t.Fatalf("cannot write configuration: %s", err)
	}
	return path
}

// run executes given command and returns its output.
func run(t *testing.T, cmd func(input io.Reader, output io.Writer, args []string) error, input string, args ...string) string {
	t.Helper()
	var output bytes.Buffer
	if err := cmd(strings.NewReader(input), &output, args); err != nil {
		t.Fatalf("command failed: %s", err)
	}
	return output.String()
}

type builderResponse struct {
	TxBytes string `json:"txBytes"`
}

type executionResponse struct {
	Digest  string          `json:"digest"`
	Effects effectsResponse `json:"effects"`
}

type effectsResponse struct {
	Status struct {
		Status string `json:"status"`
	} `json:"status"`
	TransactionDigest string `json:"transactionDigest"`
}

// testNode is a full node with the transaction builder and the execution API.
type testNode struct {
	mu         sync.Mutex
	txBytes    []byte
	sender     string
	executed   string
	signatures []string
	dryRuns    int
}

func (n *testNode) PaySui(sender string, coins, recipients, amounts []string, gasBudget string) (*builderResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sender = sender
	return &builderResponse{TxBytes: codec.EncodeBase64(n.txBytes)}, nil
}

func (n *testNode) ExecuteTransactionBlock(txBytes string, signatures []string, options map[string]bool, request string) (*executionResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.executed = txBytes
	n.signatures = signatures
	return n.effects("9RWx3wkd5KWVKGrkzMo3bpotpp7TfPJvSKc1AhVWEmpi"), nil
}

func (n *testNode) DryRunTransactionBlock(txBytes string) (*executionResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dryRuns++
	return n.effects("dry"), nil
}

func (n *testNode) effects(digest string) *executionResponse {
	res := &executionResponse{Digest: digest}
	res.Effects.Status.Status = multisig.StatusSuccess
	res.Effects.TransactionDigest = digest
	return res
}

// newTestNode returns a node serving JSON-RPC over HTTP.
func newTestNode(t *testing.T, txBytes []byte) (*testNode, string) {
	t.Helper()
	node := &testNode{txBytes: txBytes}
	server := rpc.NewServer()
	if err := server.RegisterName("unsafe", node); err != nil {
		t.Fatalf("cannot register builder API: %s", err)
	}
	if err := server.RegisterName("sui", node); err != nil {
		t.Fatalf("cannot register execution API: %s", err)
	}
	hs := httptest.NewServer(server)
	t.Cleanup(func() {
		hs.Close()
		server.Stop()
	})
	return node, hs.URL
}
