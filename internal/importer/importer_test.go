package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/holaplex/hub-nfts-solana-go/internal/core"
	"github.com/holaplex/hub-nfts-solana-go/internal/dasclient"
	"github.com/holaplex/hub-nfts-solana-go/internal/events"
)

func readJSON(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func writeRPCResult(t *testing.T, w http.ResponseWriter, result interface{}) {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": "1", "result": json.RawMessage(raw)})
}

type fakeStore struct {
	mu          sync.Mutex
	collections map[string]*core.Collection
	mints       map[string]*core.CollectionMint
	leaves      map[string]*core.CompressionLeaf
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: map[string]*core.Collection{},
		mints:       map[string]*core.CollectionMint{},
		leaves:      map[string]*core.CompressionLeaf{},
	}
}

func (s *fakeStore) GetCollection(_ context.Context, id string) (*core.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.collections[id]; ok {
		return c, nil
	}
	return nil, core.ErrRecordNotFound
}

func (s *fakeStore) UpsertCollection(_ context.Context, c *core.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[c.ID] = c
	return nil
}

func (s *fakeStore) DeleteCollection(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, id)
	return nil
}

func (s *fakeStore) GetCollectionMint(_ context.Context, id string) (*core.CollectionMint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.mints[id]; ok {
		return m, nil
	}
	return nil, core.ErrRecordNotFound
}

func (s *fakeStore) GetCollectionMintByATA(context.Context, string) (*core.CollectionMint, error) {
	return nil, core.ErrRecordNotFound
}

func (s *fakeStore) UpsertCollectionMint(_ context.Context, m *core.CollectionMint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mints[m.ID] = m
	return nil
}

func (s *fakeStore) UpdateCollectionMintOwner(context.Context, string, string, string) error {
	return nil
}

func (s *fakeStore) GetCompressionLeaf(_ context.Context, id string) (*core.CompressionLeaf, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.leaves[id]; ok {
		return l, nil
	}
	return nil, core.ErrRecordNotFound
}

func (s *fakeStore) GetCompressionLeafByAssetID(context.Context, string) (*core.CompressionLeaf, error) {
	return nil, core.ErrRecordNotFound
}

func (s *fakeStore) UpsertCompressionLeaf(_ context.Context, l *core.CompressionLeaf) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaves[l.ID] = l
	return nil
}

func (s *fakeStore) SetCompressionLeafAssetID(context.Context, string, string) error { return nil }
func (s *fakeStore) UpdateCompressionLeafOwner(context.Context, string, string) error {
	return nil
}

func (s *fakeStore) GetUpdateRevision(context.Context, string) (*core.UpdateRevision, error) {
	return nil, core.ErrRecordNotFound
}
func (s *fakeStore) UpsertUpdateRevision(context.Context, *core.UpdateRevision) error { return nil }

type fakePublisher struct {
	mu     sync.Mutex
	events []interface{}
}

func (p *fakePublisher) Publish(_ context.Context, _ string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func newTestImporter(t *testing.T, dasServer *httptest.Server, store core.Store, pub *fakePublisher) *Importer {
	t.Helper()
	logger := zap.NewNop().Sugar()
	return New(dasclient.New(dasServer.URL), store, pub, logger)
}

const (
	collectionMint  = "So11111111111111111111111111111111111111112"
	collectionOwner = "11111111111111111111111111111111"
	memberMintA     = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	memberMintB     = "burned-member-never-parsed-as-a-pubkey"
)

func dasStub(t *testing.T, members []dasclient.Asset) *httptest.Server {
	t.Helper()
	metadataServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"test"}`))
	}))
	t.Cleanup(metadataServer.Close)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string                 `json:"method"`
			Params map[string]interface{} `json:"params"`
		}
		require.NoError(t, readJSON(r, &req))

		switch req.Method {
		case "getAsset":
			asset := dasclient.Asset{
				ID:        collectionMint,
				Content:   dasclient.Content{JSONURI: metadataServer.URL},
				Ownership: dasclient.Ownership{Owner: collectionOwner},
			}
			writeRPCResult(t, w, asset)
		case "searchAssets":
			page := int(req.Params["page"].(float64))
			if page > 1 {
				writeRPCResult(t, w, dasclient.SearchAssetsResult{Total: len(members), Limit: dasclient.ImportPageSize, Page: page, Items: nil})
				return
			}
			for i := range members {
				members[i].Content = dasclient.Content{JSONURI: metadataServer.URL}
			}
			writeRPCResult(t, w, dasclient.SearchAssetsResult{Total: len(members), Limit: dasclient.ImportPageSize, Page: page, Items: members})
		default:
			t.Fatalf("unexpected das method %q", req.Method)
		}
	}))
}

func TestImporterRunInsertsCollectionAndMembers(t *testing.T) {
	members := []dasclient.Asset{
		{ID: memberMintA, Ownership: dasclient.Ownership{Owner: collectionOwner}},
		{ID: memberMintB, Ownership: dasclient.Ownership{Owner: collectionOwner}, Burnt: true},
	}
	srv := dasStub(t, members)
	defer srv.Close()

	store := newFakeStore()
	pub := &fakePublisher{}
	im := newTestImporter(t, srv, store, pub)

	key := events.Key{ID: "11111111-1111-1111-1111-111111111111", UserID: "user-1", ProjectID: "project-1"}
	err := im.Run(context.Background(), key, collectionMint)
	require.NoError(t, err)

	stored, err := store.GetCollection(context.Background(), key.ID)
	require.NoError(t, err)
	assert.Equal(t, collectionMint, stored.Mint)

	assert.Len(t, store.mints, 1, "burned member must be skipped")

	pub.mu.Lock()
	defer pub.mu.Unlock()
	var sawCollection, sawMint bool
	for _, e := range pub.events {
		switch e.(type) {
		case events.ImportedExternalCollection:
			sawCollection = true
		case events.ImportedExternalMint:
			sawMint = true
		}
	}
	assert.True(t, sawCollection)
	assert.True(t, sawMint)
}

func TestImporterRunReimportsOverExistingCollection(t *testing.T) {
	srv := dasStub(t, nil)
	defer srv.Close()

	store := newFakeStore()
	pub := &fakePublisher{}
	im := newTestImporter(t, srv, store, pub)

	key := events.Key{ID: "22222222-2222-2222-2222-222222222222"}
	require.NoError(t, store.UpsertCollection(context.Background(), &core.Collection{ID: key.ID, Mint: "stale"}))

	err := im.Run(context.Background(), key, collectionMint)
	require.NoError(t, err)

	stored, err := store.GetCollection(context.Background(), key.ID)
	require.NoError(t, err)
	assert.Equal(t, collectionMint, stored.Mint)
}
