// Package indexer watches
// confirmed transactions touching the SPL Token and Bubblegum
// programs and republishes every ownership change it observes as a
// MintOwnershipUpdate, independent of the request/response event
// lifecycle in internal/events.
package indexer

import solana "github.com/holaplex/hub-nfts-solana-go"

// RawInstruction is a single top-level instruction, already
// resolved from account-key indices to public keys so per-program
// processors never touch the index table themselves.
type RawInstruction struct {
	ProgramID solana.PublicKey
	Accounts  []solana.PublicKey
	Data      []byte
}

// RawTransaction is the subset of a confirmed transaction the
// per-program processors need: its signature, its top-level
// instructions in transaction order (inner CPI instructions are not
// included) and the slot it
// landed in, used only for bucketed in-order dispatch.
type RawTransaction struct {
	Slot         uint64
	Signature    solana.Signature
	Instructions []RawInstruction
}
