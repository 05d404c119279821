/*
> Multisignature (multi-signature) is a digital signature scheme which allows a group of users to sign a single document.
https://en.wikipedia.org/wiki/Multisignature

This multisig package implements weighted threshold multisig accounts on the
Sui ledger. A `ParticipantSet` is an immutable, ordered list of public key
credentials with a weight each, together with a threshold. The set derives
a composite address, which is the sender of every transaction the group
authorizes.

A `Coordinator` drives the signing flow. It builds an unsigned transaction
through the `Ledger`, asks participants holding a private key for partial
signatures and combines partial signatures into one `CombinedSignature` once
the weight of distinct signers reaches the threshold. The combination is the
only place where the threshold is enforced. The combined signature is then
submitted together with the transaction bytes.

Partial signatures travel between participants as signed envelopes, see
codec.EncodeSignedEnvelope. A `Collector` can gather them concurrently.

A `Config` loads the participant set and the threshold from a JSON file.
*/
package multisig
