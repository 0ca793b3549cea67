package indexer

import (
	"encoding/binary"
	"fmt"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/programs/token"
)

// tokenOwnershipChange is what either SPL Token instruction variant
// this worker cares about reduces to: a single unit moved from one
// token account to another.
type tokenOwnershipChange struct {
	Source      solana.PublicKey
	Destination solana.PublicKey
}

// decodeTokenTransfer reads a raw SPL Token instruction and returns
// the ownership change it represents, if any. Only Transfer and
// TransferChecked moving exactly one unit are treated as NFT
// ownership changes — every other SPL Token instruction (mint,
// approve, freeze, multi-unit fungible transfers, ...) is ignored by
// returning ok=false, not an error, since a single transaction can
// freely mix token-program instructions this indexer has no interest
// in with ones it does.
func decodeTokenTransfer(inst RawInstruction) (change tokenOwnershipChange, ok bool, err error) {
	if len(inst.Data) < 1 {
		return change, false, nil
	}

	switch inst.Data[0] {
	case uint8(token.Instruction_Transfer):
		// source, destination, owner
		if len(inst.Data) < 9 || len(inst.Accounts) < 2 {
			return change, false, fmt.Errorf("decode token Transfer: short instruction")
		}
		amount := binary.LittleEndian.Uint64(inst.Data[1:9])
		if amount != 1 {
			return change, false, nil
		}
		return tokenOwnershipChange{Source: inst.Accounts[0], Destination: inst.Accounts[1]}, true, nil

	case uint8(token.Instruction_TransferChecked):
		// source, mint, destination, owner
		if len(inst.Data) < 10 || len(inst.Accounts) < 3 {
			return change, false, fmt.Errorf("decode token TransferChecked: short instruction")
		}
		amount := binary.LittleEndian.Uint64(inst.Data[1:9])
		if amount != 1 {
			return change, false, nil
		}
		return tokenOwnershipChange{Source: inst.Accounts[0], Destination: inst.Accounts[2]}, true, nil

	default:
		return change, false, nil
	}
}
