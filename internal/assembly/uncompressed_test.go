package assembly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

// stubRPCServer answers getLatestBlockhash and
// getMinimumBalanceForRentExemption with fixed values, enough to drive
// every assembly backend's blockhash/rent lookups without a live
// cluster.
func stubRPCServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64 `json:"id"`
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		var result interface{}
		switch req.Method {
		case "getLatestBlockhash":
			result = map[string]interface{}{
				"context": map[string]interface{}{"slot": 1},
				"value": map[string]interface{}{
					"blockhash":            solana.Hash{1, 2, 3}.String(),
					"lastValidBlockHeight": 100,
				},
			}
		case "getMinimumBalanceForRentExemption":
			result = 1461600
		default:
			t.Fatalf("unexpected rpc method %q", req.Method)
		}

		raw, err := json.Marshal(result)
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": json.RawMessage(raw)})
	}))
}

func newTestUncompressed(t *testing.T) (*Uncompressed, *httptest.Server) {
	t.Helper()
	srv := stubRPCServer(t)
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return &Uncompressed{RPC: rpc.New(srv.URL), Payer: payer.PublicKey()}, srv
}

func TestUncompressedCreateBuildsSignedMintInstruction(t *testing.T) {
	u, srv := newTestUncompressed(t)
	defer srv.Close()

	mint, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	owner, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	pending, addrs, err := u.Create(context.Background(), CreateCollectionIntent{
		Mint:     mint,
		Owner:    owner.PublicKey(),
		Metadata: MetadataInput{Name: "Test", Symbol: "TST", URI: "https://example.com/1.json"},
	})
	require.NoError(t, err)
	require.NotNil(t, addrs)
	assert.Equal(t, mint.PublicKey(), addrs.Mint)
	assert.NotEmpty(t, pending.SerializedMessage)

	var sawMintSigner bool
	for _, slot := range pending.SignaturesOrSigners {
		if slot.PublicKey == mint.PublicKey() {
			sawMintSigner = true
			assert.True(t, slot.IsPreSigned(), "ephemeral mint key must be pre-signed")
		}
	}
	assert.True(t, sawMintSigner)
}

func TestUncompressedTransferDerivesBothATAs(t *testing.T) {
	u, srv := newTestUncompressed(t)
	defer srv.Close()

	mint, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	sender, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	recipient, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	pending, addrs, err := u.Transfer(context.Background(), mint.PublicKey(), sender.PublicKey(), recipient.PublicKey())
	require.NoError(t, err)
	assert.NotEmpty(t, pending.SerializedMessage)

	expectedSource, _, err := solana.FindAssociatedTokenAddress(sender.PublicKey(), mint.PublicKey())
	require.NoError(t, err)
	expectedDest, _, err := solana.FindAssociatedTokenAddress(recipient.PublicKey(), mint.PublicKey())
	require.NoError(t, err)

	assert.Equal(t, expectedSource, addrs.SourceAssociatedTokenAccount)
	assert.Equal(t, expectedDest, addrs.DestAssociatedTokenAccount)
}
