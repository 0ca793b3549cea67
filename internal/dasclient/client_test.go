package dasclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getAsset", req.Method)

		result, err := json.Marshal(Asset{ID: "asset-1", Ownership: Ownership{Owner: "owner-1"}})
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(rpcResponse{Result: result})
	}))
	defer srv.Close()

	client := New(srv.URL)
	asset, err := client.GetAsset(context.Background(), "asset-1")
	require.NoError(t, err)
	assert.Equal(t, "asset-1", asset.ID)
	assert.Equal(t, "owner-1", asset.Ownership.Owner)
	assert.False(t, asset.IsBurned())
}

func TestAssetIsBurnedWhenOwnerMissing(t *testing.T) {
	asset := Asset{ID: "asset-1"}
	assert.True(t, asset.IsBurned())

	burnt := Asset{ID: "asset-2", Burnt: true, Ownership: Ownership{Owner: "owner-2"}}
	assert.True(t, burnt.IsBurned())
}

func TestGetAssetProof(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := json.Marshal(AssetProof{Root: "root", Proof: []string{"a", "b"}, TreeID: "tree-1"})
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(rpcResponse{Result: result})
	}))
	defer srv.Close()

	client := New(srv.URL)
	proof, err := client.GetAssetProof(context.Background(), "asset-1")
	require.NoError(t, err)
	assert.Equal(t, "tree-1", proof.TreeID)
	assert.Equal(t, []string{"a", "b"}, proof.Proof)
}

func TestSearchAssetsPagesByGrouping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		params, ok := req.Params.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, []interface{}{"collection", "mint-1"}, params["grouping"])
		assert.Equal(t, float64(2), params["page"])

		result, err := json.Marshal(SearchAssetsResult{Total: 1, Limit: ImportPageSize, Page: 2, Items: []Asset{{ID: "asset-1"}}})
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(rpcResponse{Result: result})
	}))
	defer srv.Close()

	client := New(srv.URL)
	result, err := client.SearchAssets(context.Background(), "collection", "mint-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "asset-1", result.Items[0].ID)
}

func TestCallSurfacesRPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(rpcResponse{Error: &rpcError{Code: 404, Message: "not found"}})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.GetAsset(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
