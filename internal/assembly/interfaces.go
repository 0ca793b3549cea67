package assembly

import (
	"context"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/programs/tokenmetadata"
)

// MetadataInput is the caller-supplied payload for a metadata
// account's on-chain data, shared by every backend that writes
// Metaplex Token Metadata.
type MetadataInput struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             []tokenmetadata.Creator
}

func (m MetadataInput) dataV2(collection *tokenmetadata.Collection) tokenmetadata.DataV2 {
	var creators *[]tokenmetadata.Creator
	if len(m.Creators) > 0 {
		c := m.Creators
		creators = &c
	}
	return tokenmetadata.DataV2{
		Name:                 m.Name,
		Symbol:               m.Symbol,
		URI:                  m.URI,
		SellerFeeBasisPoints: m.SellerFeeBasisPoints,
		Creators:             creators,
		Collection:           collection,
	}
}

// hasVerifiedOwnerCreator reports whether owner appears in creators
// marked Verified, the trigger for appending owner as an extra signer
// on a compressed MintToCollectionV1: Bubblegum's CPI into Token
// Metadata requires the verified creator's own signature.
func (m MetadataInput) hasVerifiedOwnerCreator(owner solana.PublicKey) bool {
	for _, c := range m.Creators {
		if c.Verified && c.Address == owner {
			return true
		}
	}
	return false
}

// CollectionBackend creates the parent NFT — a sized collection NFT —
// a family of mints hangs off of.
type CollectionBackend[Intent any, AddressBag any] interface {
	Create(ctx context.Context, intent Intent) (*PendingTransaction, AddressBag, error)
}

// MintBackend mints a single child NFT, compressed or not, into an
// existing collection (or as a numbered print edition).
type MintBackend[Intent any, AddressBag any] interface {
	Mint(ctx context.Context, intent Intent) (*PendingTransaction, AddressBag, error)
}

// TransferBackend reassigns ownership of an existing mint.
type TransferBackend[MintRecord any, AddressBag any] interface {
	Transfer(ctx context.Context, record MintRecord) (*PendingTransaction, AddressBag, error)
}
