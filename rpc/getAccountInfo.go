package rpc

import (
	"context"

	solana "github.com/holaplex/hub-nfts-solana-go"
)

// GetAccountInfo fetches a single account, used by the indexer to
// resolve the owner of a transfer's destination token account.
func (cl *Client) GetAccountInfo(
	ctx context.Context,
	account solana.PublicKey,
	commitment CommitmentType,
) (out *GetAccountInfoResult, err error) {
	opts := M{"encoding": "base64"}
	if commitment != "" {
		opts["commitment"] = commitment
	}
	err = cl.rpcClient.CallFor(ctx, &out, "getAccountInfo", account, opts)
	return
}
