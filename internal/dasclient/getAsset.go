package dasclient

import "context"

type Creator struct {
	Address  string `json:"address"`
	Share    int    `json:"share"`
	Verified bool   `json:"verified"`
}

type Grouping struct {
	GroupKey   string `json:"group_key"`
	GroupValue string `json:"group_value"`
}

type Compression struct {
	Compressed bool   `json:"compressed"`
	AssetHash  string `json:"asset_hash"`
	DataHash   string `json:"data_hash"`
	CreatorHash string `json:"creator_hash"`
	Tree       string `json:"tree"`
	LeafID     uint64 `json:"leaf_id"`
}

type Ownership struct {
	Owner   string `json:"owner"`
	Delegate string `json:"delegate,omitempty"`
}

type Content struct {
	JSONURI string `json:"json_uri"`
}

// Asset is the subset of the DAS `getAsset` response this worker
// needs: ownership, compression proof material, and the metadata JSON
// location.
type Asset struct {
	ID          string      `json:"id"`
	Content     Content     `json:"content"`
	Grouping    []Grouping  `json:"grouping"`
	Compression Compression `json:"compression"`
	Ownership   Ownership   `json:"ownership"`
	Creators    []Creator   `json:"creators"`
	Burnt       bool        `json:"burnt"`
}

func (a *Asset) IsBurned() bool {
	return a.Burnt || a.Ownership.Owner == ""
}

func (c *Client) GetAsset(ctx context.Context, id string) (*Asset, error) {
	var asset Asset
	if err := c.call(ctx, &asset, "getAsset", map[string]interface{}{"id": id}); err != nil {
		return nil, err
	}
	return &asset, nil
}
