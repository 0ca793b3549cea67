package indexer

import (
	"encoding/binary"
	"fmt"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/programs/bubblegum"
)

// bubblegumOwnershipChange is a decoded Bubblegum Transfer: the leaf
// changed owner, and nonce (together with the tree) is what
// resolveSuccessAddress-style asset-id derivation needs to look the
// leaf back up in compression_leafs.
type bubblegumOwnershipChange struct {
	MerkleTree  solana.PublicKey
	Sender      solana.PublicKey
	Recipient   solana.PublicKey
	Nonce       uint64
}

// transferArgs' borsh layout after the 1-byte discriminator:
// root[32] + dataHash[32] + creatorHash[32] + nonce(u64 LE) + index(u32 LE).
const transferArgsLen = 32 + 32 + 32 + 8 + 4

// decodeBubblegumTransfer reads a raw Bubblegum instruction and
// returns the leaf ownership change it represents, if it is a
// Transfer. Every other Bubblegum instruction (mint, redeem, decompress,
// delegate, ...) is ignored by returning ok=false.
func decodeBubblegumTransfer(inst RawInstruction) (change bubblegumOwnershipChange, ok bool, err error) {
	if len(inst.Data) < 1 || inst.Data[0] != bubblegum.Instruction_Transfer {
		return change, false, nil
	}
	if len(inst.Data) < 1+transferArgsLen {
		return change, false, fmt.Errorf("decode bubblegum Transfer: short instruction")
	}
	// accounts: [0]=treeAuthority [1]=leafOwner/sender [2]=leafDelegate
	// [3]=newLeafOwner/recipient [4]=merkleTree [5..7]=programs [8..]=proof
	if len(inst.Accounts) < 5 {
		return change, false, fmt.Errorf("decode bubblegum Transfer: too few accounts")
	}

	nonceOffset := 1 + 32 + 32 + 32
	nonce := binary.LittleEndian.Uint64(inst.Data[nonceOffset : nonceOffset+8])

	return bubblegumOwnershipChange{
		MerkleTree: inst.Accounts[4],
		Sender:     inst.Accounts[1],
		Recipient:  inst.Accounts[3],
		Nonce:      nonce,
	}, true, nil
}
