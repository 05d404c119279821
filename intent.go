package suimsig

import "golang.org/x/crypto/blake2b"

// TransactionIntent is the intent prefix of a transaction signing request:
// scope TransactionData, version V0, application Sui.
var TransactionIntent = []byte{0, 0, 0}

/*
IntentDigest builds the message that every participant signs for a given
serialized transaction.

	intent  | txBytes
	3 bytes | BCS serialized TransactionData

This is then hashed with blake2b-256, so that all signature schemes are fed
with a constant length message.
*/
func IntentDigest(txBytes []byte) [32]byte {
	msg := make([]byte, 0, len(TransactionIntent)+len(txBytes))
	msg = append(msg, TransactionIntent...)
	msg = append(msg, txBytes...)
	return blake2b.Sum256(msg)
}
