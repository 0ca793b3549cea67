// Package core holds the persisted entities and the storage facade
// used by the event processor and indexer to read and write them
// without re-deriving PDAs.
package core

import "time"

// Collection is the identity row for a parent NFT (master edition or
// sized/certified collection).
type Collection struct {
	ID                     string `gorm:"type:uuid;primaryKey"`
	Mint                   string `gorm:"size:44;not null"`
	Metadata               string `gorm:"size:44;not null"`
	MasterEdition          string `gorm:"size:44;not null"`
	AssociatedTokenAccount string `gorm:"size:44;not null"`
	Owner                  string `gorm:"size:44;not null"`
	UpdateAuthority        string `gorm:"size:44;not null"`
	CreatedAt              time.Time
}

func (Collection) TableName() string { return "collections" }

// CollectionMint is a minted, uncompressed child NFT.
type CollectionMint struct {
	ID                     string `gorm:"type:uuid;primaryKey"`
	CollectionID           string `gorm:"type:uuid;index;not null"`
	Mint                   string `gorm:"size:44;not null"`
	Owner                  string `gorm:"size:44;not null"`
	AssociatedTokenAccount string `gorm:"size:44;not null"`
	CreatedAt              time.Time
}

func (CollectionMint) TableName() string { return "collection_mints" }

// CompressionLeaf is a compressed-NFT leaf. AssetID stays empty until
// the mint's on-chain submission yields a leaf nonce.
type CompressionLeaf struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	CollectionID  string `gorm:"type:uuid;index;not null"`
	MerkleTree    string `gorm:"size:44;not null"`
	TreeAuthority string `gorm:"size:44;not null"`
	TreeDelegate  string `gorm:"size:44;not null"`
	LeafOwner     string `gorm:"size:44;not null"`
	AssetID       string `gorm:"size:44"`
	CreatedAt     time.Time
}

func (CompressionLeaf) TableName() string { return "compression_leafs" }

func (c *CompressionLeaf) HasAssetID() bool { return c.AssetID != "" }

// UpdateRevision preserves a deferred update-mint transaction for
// retry, with a blockhash-refresh-in-place lifecycle.
type UpdateRevision struct {
	ID                string `gorm:"type:uuid;primaryKey"`
	MintID            string `gorm:"type:uuid;index;not null"`
	SerializedMessage []byte `gorm:"type:bytea;not null"`
	Payer             string `gorm:"size:44;not null"`
	Metadata          string `gorm:"size:44;not null"`
	UpdateAuthority   string `gorm:"size:44;not null"`
	CreatedAt         time.Time
}

func (UpdateRevision) TableName() string { return "update_revisions" }
