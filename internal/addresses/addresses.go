// Package addresses holds the strongly typed address bags each
// assembly backend returns, so the event processor never re-derives a
// PDA it already has.
package addresses

import solana "github.com/holaplex/hub-nfts-solana-go"

// MasterEditionAddresses is returned by Uncompressed.create.
type MasterEditionAddresses struct {
	Mint                   solana.PublicKey
	Metadata               solana.PublicKey
	MasterEdition          solana.PublicKey
	AssociatedTokenAccount solana.PublicKey
}

// MintEditionAddresses is returned by Edition.mint.
type MintEditionAddresses struct {
	Mint                   solana.PublicKey
	Metadata               solana.PublicKey
	Edition                solana.PublicKey
	AssociatedTokenAccount solana.PublicKey
}

// MintMetaplexAddresses is returned by Uncompressed.mint.
type MintMetaplexAddresses struct {
	Mint                   solana.PublicKey
	Metadata               solana.PublicKey
	AssociatedTokenAccount solana.PublicKey
}

// MintCompressedMintV1Addresses is returned by Compressed.mint.
type MintCompressedMintV1Addresses struct {
	MerkleTree    solana.PublicKey
	TreeAuthority solana.PublicKey
	LeafOwner     solana.PublicKey
}

// TransferAssetAddresses is returned by Uncompressed.transfer.
type TransferAssetAddresses struct {
	Mint                         solana.PublicKey
	SourceAssociatedTokenAccount solana.PublicKey
	DestAssociatedTokenAccount   solana.PublicKey
}

// TransferCompressedMintV1Addresses is returned by Compressed.transfer.
type TransferCompressedMintV1Addresses struct {
	MerkleTree solana.PublicKey
	AssetID    solana.PublicKey
}

// UpdateMasterEditionAddresses is returned by Uncompressed.update.
type UpdateMasterEditionAddresses struct {
	Metadata solana.PublicKey
}

// UpdateCollectionMintAddresses is returned by Uncompressed.update_mint.
type UpdateCollectionMintAddresses struct {
	Metadata   solana.PublicKey
	Collection solana.PublicKey
}

// SwitchCollectionAddresses is returned by Uncompressed.switch.
type SwitchCollectionAddresses struct {
	Metadata      solana.PublicKey
	OldCollection solana.PublicKey
	NewCollection solana.PublicKey
}
