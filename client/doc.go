/*
Package client is a Sui full node JSON-RPC client. It implements the ledger
interface of the multisig package: transactions are built by the node
transaction builder and executed with a combined signature attached.

Network and ledger failures are reported as errors.ErrSubmission.
*/
package client
