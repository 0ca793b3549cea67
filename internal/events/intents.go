package events

import (
	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/internal/assembly"
)

// Key is the upstream correlation triple every intent and every
// outbound event carries: {id, user_id, project_id}, id being a UUID
// string.
type Key struct {
	ID        string
	UserID    string
	ProjectID string
}

// Intent is one inbound message: a correlation key, a kind selecting
// the dispatch row, and a kind-specific payload.
type Intent struct {
	Key     Key
	Kind    Kind
	Payload interface{}
}

// CreatePayload backs CreateCollection/CreateEditionDrop/CreateOpenDrop
// and their Retry variants — all go through Uncompressed.Create.
type CreatePayload = assembly.CreateCollectionIntent

// MintPayload backs MintToCollection/MintOpenDrop and their Retry
// variants. Compressed selects Compressed.Mint; RetryMintToCollection
// and RetryMintOpenDrop force Uncompressed.Mint regardless of
// Compressed (the source's retry path never supports compressed
// mints).
type MintPayload struct {
	CollectionID            string
	Compressed              bool
	Mint                    solana.PrivateKey
	MerkleTree              solana.PublicKey
	Owner                   solana.PublicKey
	Recipient               solana.PublicKey
	CollectionMint          solana.PublicKey
	CollectionMetadata      solana.PublicKey
	CollectionMasterEdition solana.PublicKey
	Metadata                assembly.MetadataInput
}

// EditionPayload backs MintEditionDrop/RetryMintEditionDrop, routed to
// Edition.Mint. CollectionID is the owning master edition's Collection
// row id, stamped onto the CollectionMint row this operation persists.
type EditionPayload struct {
	CollectionID  string
	NewMint       solana.PrivateKey
	MasterMint    solana.PublicKey
	EditionNumber uint64
	Owner         solana.PublicKey
	Recipient     solana.PublicKey
}

func (p EditionPayload) mintIntent() assembly.MintEditionIntent {
	return assembly.MintEditionIntent{
		NewMint:       p.NewMint,
		MasterMint:    p.MasterMint,
		EditionNumber: p.EditionNumber,
		Owner:         p.Owner,
		Recipient:     p.Recipient,
	}
}

// UpdatePayload backs UpdateCollection/UpdateEditionDrop/UpdateOpenDrop,
// routed to Uncompressed.Update.
type UpdatePayload struct {
	Metadata        solana.PublicKey
	UpdateAuthority solana.PublicKey
	Data            assembly.MetadataInput
}

// UpdateCollectionMintPayload backs UpdateCollectionMint, routed to
// Uncompressed.UpdateMint. CollectionMintID is the owning
// CollectionMint row's id, stamped onto the UpdateRevision this
// operation persists for later retry.
type UpdateCollectionMintPayload struct {
	CollectionMintID string
	Metadata         solana.PublicKey
	UpdateAuthority  solana.PublicKey
	CollectionMint   solana.PublicKey
	Data             assembly.MetadataInput
}

// RetryUpdateCollectionMintPayload backs RetryUpdateCollectionMint,
// routed to Uncompressed.RetryUpdateMint: it reuses the stored
// UpdateRevision's serialized message rather than recomposing
// instructions.
type RetryUpdateCollectionMintPayload struct {
	UpdateRevisionID string
}

// SwitchPayload backs SwitchMintCollection, routed to
// Uncompressed.Switch.
type SwitchPayload struct {
	Metadata                   solana.PublicKey
	UpdateAuthority            solana.PublicKey
	OldCollectionMint          solana.PublicKey
	OldCollectionMetadata      solana.PublicKey
	OldCollectionMasterEdition solana.PublicKey
	NewCollectionMint          solana.PublicKey
	NewCollectionMetadata      solana.PublicKey
	NewCollectionMasterEdition solana.PublicKey
}

// TransferPayload backs TransferAsset. CollectionMintID and
// CompressionLeafID are mutually exclusive: the processor takes
// Compressed.Transfer whenever CompressionLeafID is non-empty and
// Uncompressed.Transfer otherwise, without reading either row from the
// store. AssetID is only needed (and only known) on the compressed path.
type TransferPayload struct {
	CollectionMintID  string
	CompressionLeafID string
	AssetID           string
	MerkleTree        solana.PublicKey
	Mint              solana.PublicKey
	Sender            solana.PublicKey
	Recipient         solana.PublicKey
}
