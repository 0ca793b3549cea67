package rpc

import (
	"context"

	solana "github.com/holaplex/hub-nfts-solana-go"
)

type GetLatestBlockhashResult struct {
	RPCContext
	Value *LatestBlockhashResult `json:"value"`
}

type LatestBlockhashResult struct {
	Blockhash            solana.Hash `json:"blockhash"`
	LastValidBlockHeight uint64      `json:"lastValidBlockHeight"`
}

// GetLatestBlockhash returns the most recent blockhash, stamped onto
// every assembled message.
func (cl *Client) GetLatestBlockhash(
	ctx context.Context,
	commitment CommitmentType,
) (out *GetLatestBlockhashResult, err error) {
	params := []interface{}{}
	if commitment != "" {
		params = append(params, M{"commitment": commitment})
	}
	err = cl.rpcClient.CallFor(ctx, &out, "getLatestBlockhash", params...)
	return
}
