package dasclient

import "context"

// AssetProof carries the merkle proof path for a compressed asset, as
// required by Compressed.transfer to build the Bubblegum Transfer
// instruction.
type AssetProof struct {
	Root        string   `json:"root"`
	Proof       []string `json:"proof"`
	NodeIndex   uint64   `json:"node_index"`
	Leaf        string   `json:"leaf"`
	TreeID      string   `json:"tree_id"`
}

func (c *Client) GetAssetProof(ctx context.Context, id string) (*AssetProof, error) {
	var proof AssetProof
	if err := c.call(ctx, &proof, "getAssetProof", map[string]interface{}{"id": id}); err != nil {
		return nil, err
	}
	return &proof, nil
}
