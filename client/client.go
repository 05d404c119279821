package client

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/iov-one/suimsig"
	"github.com/iov-one/suimsig/codec"
	"github.com/iov-one/suimsig/errors"
	"github.com/iov-one/suimsig/x/multisig"
	"github.com/tendermint/tendermint/libs/log"
)

// Client is a Sui JSON-RPC client.
type Client struct {
	conn   *rpc.Client
	logger log.Logger
}

var _ multisig.Ledger = (*Client)(nil)

// NewClient wraps an existing JSON-RPC connection. A nil logger discards all
// messages.
func NewClient(conn *rpc.Client, logger log.Logger) *Client {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Client{
		conn:   conn,
		logger: logger.With("module", "client"),
	}
}

// Dial connects to a full node, for example https://fullnode.devnet.sui.io:443
func Dial(ctx context.Context, url string, logger log.Logger) (*Client, error) {
	conn, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSubmission, "dial %s: %s", url, err)
	}
	return NewClient(conn, logger), nil
}

// Close terminates the connection.
func (c *Client) Close() {
	c.conn.Close()
}

// CompleteUnsignedTransaction calls the transaction builder method of given
// template with the sender prepended to the template params.
func (c *Client) CompleteUnsignedTransaction(ctx context.Context, tmpl multisig.TxTemplate, sender suimsig.Address) ([]byte, error) {
	if !strings.HasPrefix(tmpl.Method, "unsafe_") {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "%q is not a transaction builder method", tmpl.Method)
	}
	args := make([]interface{}, 0, len(tmpl.Params)+1)
	args = append(args, sender.String())
	for _, p := range tmpl.Params {
		args = append(args, p)
	}

	var res builderResult
	if err := c.call(ctx, &res, tmpl.Method, args...); err != nil {
		return nil, err
	}
	txBytes, err := codec.DecodeBase64(res.TxBytes)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSubmission, "%s returned invalid transaction bytes: %s", tmpl.Method, err)
	}
	if len(txBytes) == 0 {
		return nil, errors.Wrapf(errors.ErrSubmission, "%s returned no transaction bytes", tmpl.Method)
	}
	return txBytes, nil
}

// Submit executes a transaction with given signature attached and waits for
// the local execution. A transaction that was executed but failed results in
// an error.
func (c *Client) Submit(ctx context.Context, txBytes []byte, signature string) (*multisig.Receipt, error) {
	var raw json.RawMessage
	err := c.call(ctx, &raw, "sui_executeTransactionBlock",
		codec.EncodeBase64(txBytes),
		[]string{signature},
		executeOptions{ShowEffects: true},
		waitForLocalExecution,
	)
	if err != nil {
		return nil, err
	}

	var res executeResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, errors.Wrapf(errors.ErrSubmission, "cannot decode execution result: %s", err)
	}
	receipt := &multisig.Receipt{
		Digest: res.Digest,
		Status: multisig.StatusSuccess,
		Raw:    raw,
	}
	if res.Effects != nil {
		receipt.Status = res.Effects.Status.Status
		receipt.Error = res.Effects.Status.Error
	}
	if !receipt.Succeeded() {
		return nil, errors.Wrapf(errors.ErrSubmission, "transaction %s failed: %s", receipt.Digest, receipt.Error)
	}
	c.logger.Info("Transaction executed", "digest", receipt.Digest)
	return receipt, nil
}

// DryRun executes a transaction without committing it. Signatures are not
// checked by the node. Failed execution is reported by the receipt status.
func (c *Client) DryRun(ctx context.Context, txBytes []byte) (*multisig.Receipt, error) {
	var raw json.RawMessage
	if err := c.call(ctx, &raw, "sui_dryRunTransactionBlock", codec.EncodeBase64(txBytes)); err != nil {
		return nil, err
	}
	var res dryRunResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, errors.Wrapf(errors.ErrSubmission, "cannot decode dry run result: %s", err)
	}
	if res.Effects == nil {
		return nil, errors.Wrap(errors.ErrSubmission, "dry run result without effects")
	}
	return &multisig.Receipt{
		Digest: res.Effects.TransactionDigest,
		Status: res.Effects.Status.Status,
		Error:  res.Effects.Status.Error,
		Raw:    raw,
	}, nil
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	c.logger.Debug("Calling node", "method", method)
	if err := c.conn.CallContext(ctx, result, method, args...); err != nil {
		return errors.Wrapf(errors.ErrSubmission, "%s: %s", method, err)
	}
	return nil
}
