package assembly

import (
	"context"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

// mintAccountSpace is the SPL Token Mint account layout size in bytes.
const mintAccountSpace = 82

func mintAccountRent(ctx context.Context, client *rpc.Client) (uint64, error) {
	return client.GetMinimumBalanceForRentExemption(ctx, mintAccountSpace, rpc.CommitmentFinalized)
}

func latestBlockhash(ctx context.Context, client *rpc.Client) (solana.Hash, error) {
	result, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	return result.Value.Blockhash, nil
}
