package rpc

import "context"

// GetMinimumBalanceForRentExemption returns the minimum lamport
// balance an account of the given size needs to be rent-exempt, used
// when sizing SystemProgram::CreateAccount instructions for new
// mints.
func (cl *Client) GetMinimumBalanceForRentExemption(
	ctx context.Context,
	dataSize uint64,
	commitment CommitmentType,
) (out uint64, err error) {
	params := []interface{}{dataSize}
	if commitment != "" {
		params = append(params, M{"commitment": commitment})
	}
	err = cl.rpcClient.CallFor(ctx, &out, "getMinimumBalanceForRentExemption", params...)
	return
}
