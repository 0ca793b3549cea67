// Package assembly holds the transaction assembly backends: the
// polymorphic builders that derive PDAs, compose exact Solana
// instruction sequences, and serialize unsigned wire-format messages.
package assembly

import (
	solana "github.com/holaplex/hub-nfts-solana-go"
)

// PendingTransaction is the common output of every builder: an
// unsigned serialized message plus the signatures-or-signers
// discipline: each required signer is either pre-signed locally or
// left for the treasury.
type PendingTransaction struct {
	SerializedMessage []byte
	// SignaturesOrSigners is positional: slot i corresponds to the
	// message's required signer at index i. A populated Signature
	// means a locally-owned ephemeral key already signed; an empty
	// Signature with only PublicKey set means the treasury must sign.
	SignaturesOrSigners []SignerSlot
}

type SignerSlot struct {
	PublicKey solana.PublicKey
	Signature solana.Signature // zero value if unsigned, treasury must fill in
}

func (s SignerSlot) IsPreSigned() bool {
	return !s.Signature.IsZero()
}

// finalizeMessage builds the wire-format Message, serializes it, and
// pre-signs any locally owned ephemeral keys, producing the
// positional signatures-or-signers vector.
func finalizeMessage(
	instructions []solana.Instruction,
	payer solana.PublicKey,
	blockhash solana.Hash,
	ephemeralSigners []*solana.PrivateKey,
) (*PendingTransaction, error) {
	message, err := solana.NewMessage(instructions, payer, blockhash)
	if err != nil {
		return nil, err
	}

	serialized, err := message.MarshalBinary()
	if err != nil {
		return nil, err
	}

	ephemeralByPubkey := make(map[solana.PublicKey]*solana.PrivateKey, len(ephemeralSigners))
	for _, key := range ephemeralSigners {
		ephemeralByPubkey[key.PublicKey()] = key
	}

	slots := make([]SignerSlot, 0, message.Header.NumRequiredSignatures)
	for _, signer := range message.Signers() {
		slot := SignerSlot{PublicKey: signer}
		if key, ok := ephemeralByPubkey[signer]; ok {
			sig, err := key.Sign(serialized)
			if err != nil {
				return nil, err
			}
			slot.Signature = sig
		}
		slots = append(slots, slot)
	}

	return &PendingTransaction{
		SerializedMessage:   serialized,
		SignaturesOrSigners: slots,
	}, nil
}
