/*

Package suimsig defines the values shared by all packages of the weighted
threshold multisig coordinator: the Sui address and the intent digest that
every participant signs.

The protocol itself lives in x/multisig, key material and signature
primitives in crypto, transport encodings in codec and the ledger JSON-RPC
client in client.

*/

package suimsig
