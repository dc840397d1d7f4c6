/*
Package wasmstorage implements the wasm-storage module, which keeps
WebAssembly bytecode addressed by its keccak256 hash. Data request and tally
wasms may be uploaded by any account, while executor and relayer (overlay)
wasms are reserved for the module authority.

Uploads must be gzip compressed. The bytecode is unpacked and validated
before it is stored.

Trust model: the node takes Msgs over plain gRPC without transaction
signatures. The signer named in a Msg is resolved from its
cosmos.msg.v1.signer field and only checked to be a well formed address.
The authority check compares that caller supplied string against the
configured authority, so anyone who can reach the gRPC endpoint can act as
the authority. Expose the endpoint only to trusted callers.
*/
package wasmstorage
