package dasclient

import "context"

const ImportPageSize = 1000

type SearchAssetsResult struct {
	Total int     `json:"total"`
	Limit int     `json:"limit"`
	Page  int     `json:"page"`
	Items []Asset `json:"items"`
}

// SearchAssets is used by the importer to page through a collection's
// members, grouping on ["collection", mintAddress].
func (c *Client) SearchAssets(ctx context.Context, groupKey, groupValue string, page int) (*SearchAssetsResult, error) {
	params := map[string]interface{}{
		"grouping": []string{groupKey, groupValue},
		"page":     page,
		"limit":    ImportPageSize,
	}
	var result SearchAssetsResult
	if err := c.call(ctx, &result, "searchAssets", params); err != nil {
		return nil, err
	}
	return &result, nil
}
