package rpc

import (
	"context"
	"encoding/base64"

	solana "github.com/holaplex/hub-nfts-solana-go"
)

type SendTransactionOpts struct {
	SkipPreflight       bool           `json:"skipPreflight,omitempty"`
	PreflightCommitment CommitmentType `json:"preflightCommitment,omitempty"`
	Encoding            string         `json:"encoding,omitempty"`
	MaxRetries          *uint          `json:"maxRetries,omitempty"`
}

// SendTransaction submits a fully signed, serialized transaction to
// the cluster. Submission is never retried at this layer — a
// failure here becomes Failed(Submit) for the orchestrator.
func (cl *Client) SendTransaction(
	ctx context.Context,
	tx *solana.Transaction,
	opts SendTransactionOpts,
) (out solana.Signature, err error) {
	data, err := tx.MarshalBinary()
	if err != nil {
		return out, err
	}

	if opts.Encoding == "" {
		opts.Encoding = "base64"
	}

	var sig string
	err = cl.rpcClient.CallFor(ctx, &sig, "sendTransaction", base64.StdEncoding.EncodeToString(data), opts)
	if err != nil {
		return out, err
	}

	return solana.SignatureFromBase58(sig)
}
