package rpc

import (
	"context"
)

// GetTransactionResult is the subset of getTransaction's response this
// worker reads: account keys (to resolve program indices) and inner
// instructions, used to extract the Bubblegum leaf nonce.
type GetTransactionResult struct {
	Slot        uint64                 `json:"slot"`
	Meta        *TransactionStatusMeta `json:"meta"`
	Transaction *DecodedTransaction    `json:"transaction"`
}

type TransactionStatusMeta struct {
	Err              interface{}        `json:"err"`
	InnerInstructions []InnerInstructionGroup `json:"innerInstructions"`
}

type InnerInstructionGroup struct {
	Index        uint16                `json:"index"`
	Instructions []ParsedInnerInstruction `json:"instructions"`
}

type ParsedInnerInstruction struct {
	ProgramIDIndex uint16   `json:"programIdIndex"`
	Accounts       []uint16 `json:"accounts"`
	Data           string   `json:"data"` // base58-encoded
}

type DecodedTransaction struct {
	Signatures []string `json:"signatures"`
	Message    struct {
		AccountKeys []string `json:"accountKeys"`
	} `json:"message"`
}

// GetTransaction fetches a confirmed transaction by signature with
// JSON encoding, as required to read inner instructions (base64
// encoding does not expose decoded inner-instruction account indices
// the way json encoding does).
func (cl *Client) GetTransaction(
	ctx context.Context,
	signature string,
	commitment CommitmentType,
) (out *GetTransactionResult, err error) {
	opts := M{"encoding": "json", "maxSupportedTransactionVersion": 0}
	if commitment != "" {
		opts["commitment"] = commitment
	}
	err = cl.rpcClient.CallFor(ctx, &out, "getTransaction", signature, opts)
	return
}
