/*
Package crypto holds the key material of multisig participants and the single
key signature primitives they delegate to.

Every key is tagged with a one byte signature scheme flag. The flag followed
by the key bytes is the canonical raw encoding of a public key. It is used for
address derivation and for transport, and it is only ever produced by
PublicKey.Raw.
*/
package crypto
