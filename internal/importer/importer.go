// Package importer is the one-shot import flow: given an existing
// collection's mint address, it reads the Digital Asset API and
// inserts a Collection row plus one CollectionMint or CompressionLeaf
// row per non-burned member.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/internal/core"
	"github.com/holaplex/hub-nfts-solana-go/internal/dasclient"
	"github.com/holaplex/hub-nfts-solana-go/internal/events"
)

// maxConcurrentFetches bounds the per-member metadata-fetch fan-out.
const maxConcurrentFetches = 64

// Importer runs one import per call to Run, publishing
// ImportedExternalCollection/ImportedExternalMint as it goes.
type Importer struct {
	DAS     *dasclient.Client
	Store   core.Store
	Publish events.Publisher
	HTTP    *http.Client
	Logger  *zap.SugaredLogger
}

func New(das *dasclient.Client, store core.Store, publish events.Publisher, logger *zap.SugaredLogger) *Importer {
	return &Importer{DAS: das, Store: store, Publish: publish, HTTP: &http.Client{Timeout: 15 * time.Second}, Logger: logger}
}

// Run imports the collection rooted at mintAddress, keyed by key for
// the outbound events it emits.
func (im *Importer) Run(ctx context.Context, key events.Key, mintAddress string) error {
	asset, err := im.DAS.GetAsset(ctx, mintAddress)
	if err != nil {
		return fmt.Errorf("fetch collection asset: %w", err)
	}

	if existing, err := im.Store.GetCollection(ctx, key.ID); err == nil && existing != nil {
		if err := im.Store.DeleteCollection(ctx, key.ID); err != nil {
			return fmt.Errorf("delete existing collection before reimport: %w", err)
		}
	}

	if _, err := im.fetchMetadataJSON(ctx, asset.Content.JSONURI); err != nil {
		return fmt.Errorf("fetch collection metadata json: %w", err)
	}

	mint := solana.MustPublicKeyFromBase58(mintAddress)
	owner := solana.PublicKey{}
	if asset.Ownership.Owner != "" {
		owner = solana.MustPublicKeyFromBase58(asset.Ownership.Owner)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return fmt.Errorf("derive collection associated token address: %w", err)
	}
	metadataAddr, _, err := solana.FindTokenMetadataAddress(mint)
	if err != nil {
		return fmt.Errorf("derive collection metadata address: %w", err)
	}
	masterEdition, _, err := solana.FindMasterEditionAddress(mint)
	if err != nil {
		return fmt.Errorf("derive collection master edition address: %w", err)
	}

	if err := im.Store.UpsertCollection(ctx, &core.Collection{
		ID:                     key.ID,
		Mint:                   mintAddress,
		Metadata:               metadataAddr.String(),
		MasterEdition:          masterEdition.String(),
		AssociatedTokenAccount: ata.String(),
		Owner:                  asset.Ownership.Owner,
		UpdateAuthority:        asset.Ownership.Owner,
	}); err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}

	im.emit(ctx, key, events.ImportedExternalCollection{Key: key, Collection: key.ID})

	return im.importMembers(ctx, key, mintAddress)
}

func (im *Importer) importMembers(ctx context.Context, key events.Key, mintAddress string) error {
	sem := make(chan struct{}, maxConcurrentFetches)

	for page := 1; ; page++ {
		result, err := im.DAS.SearchAssets(ctx, "collection", mintAddress, page)
		if err != nil {
			return fmt.Errorf("search assets page %d: %w", page, err)
		}

		var wg sync.WaitGroup
		for _, asset := range result.Items {
			if asset.IsBurned() {
				continue
			}

			asset := asset
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				if err := im.importMember(ctx, key, asset); err != nil {
					im.Logger.Warnw("import member failed", "asset", asset.ID, "error", err)
				}
			}()
		}
		wg.Wait()

		if result.Total < dasclient.ImportPageSize {
			break
		}
	}

	return nil
}

func (im *Importer) importMember(ctx context.Context, key events.Key, asset dasclient.Asset) error {
	if _, err := im.fetchMetadataJSON(ctx, asset.Content.JSONURI); err != nil {
		return fmt.Errorf("fetch member metadata json: %w", err)
	}

	mintID := uuid.NewString()
	owner := solana.MustPublicKeyFromBase58(asset.Ownership.Owner)

	if asset.Compression.Compressed {
		leaf := &core.CompressionLeaf{
			ID:            mintID,
			CollectionID:  key.ID,
			MerkleTree:    asset.Compression.Tree,
			TreeAuthority: asset.Compression.Tree,
			TreeDelegate:  asset.Ownership.Delegate,
			LeafOwner:     asset.Ownership.Owner,
			AssetID:       asset.ID,
		}
		if err := im.Store.UpsertCompressionLeaf(ctx, leaf); err != nil {
			return fmt.Errorf("insert compression leaf: %w", err)
		}
		im.emit(ctx, key, events.ImportedExternalMint{Key: events.Key{ID: mintID, UserID: key.UserID, ProjectID: key.ProjectID}, Collection: key.ID, Mint: asset.ID})
		return nil
	}

	mint := solana.MustPublicKeyFromBase58(asset.ID)
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return fmt.Errorf("derive member associated token address: %w", err)
	}

	row := &core.CollectionMint{
		ID:                     mintID,
		CollectionID:           key.ID,
		Mint:                   asset.ID,
		Owner:                  asset.Ownership.Owner,
		AssociatedTokenAccount: ata.String(),
	}
	if err := im.Store.UpsertCollectionMint(ctx, row); err != nil {
		return fmt.Errorf("insert collection mint: %w", err)
	}

	im.emit(ctx, key, events.ImportedExternalMint{Key: events.Key{ID: mintID, UserID: key.UserID, ProjectID: key.ProjectID}, Collection: key.ID, Mint: asset.ID})
	return nil
}

func (im *Importer) emit(ctx context.Context, key events.Key, event interface{}) {
	if err := im.Publish.Publish(ctx, key.ID, event); err != nil {
		im.Logger.Errorw("publish import event failed", "id", key.ID, "error", err)
	}
}

// fetchMetadataJSON retries a content-addressed metadata fetch with
// exponential backoff, min 200ms, up to 10 attempts with jitter.
func (im *Importer) fetchMetadataJSON(ctx context.Context, uri string) (map[string]interface{}, error) {
	op := func() (map[string]interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		resp, err := im.HTTP.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(fmt.Errorf("metadata fetch %s: status %d", uri, resp.StatusCode))
		}
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("metadata fetch %s: status %d", uri, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var out map[string]interface{}
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("decode metadata json: %w", err))
		}
		return out, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond

	return backoff.Retry(ctx, op, backoff.WithBackOff(b), backoff.WithMaxTries(10))
}
