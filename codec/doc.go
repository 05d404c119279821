/*
Package codec implements the canonical transport encodings: standard base64
and the signed transaction envelope exchanged between participants.

The envelope field names match the SignedTransaction object of the Sui
ecosystem, so envelopes produced by other Sui tooling can be consumed
directly.
*/
package codec
