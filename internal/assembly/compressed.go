package assembly

import (
	"context"
	"encoding/hex"
	"fmt"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/internal/addresses"
	"github.com/holaplex/hub-nfts-solana-go/internal/dasclient"
	"github.com/holaplex/hub-nfts-solana-go/programs/bubblegum"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

// Compressed assembles transactions against the Bubblegum
// concurrent-merkle-tree program: every mint is a single instruction,
// and the NFT's metadata lives only as a hash inside the tree leaf.
// Payer is the treasury wallet that fee-pays every instruction this
// backend composes.
type Compressed struct {
	RPC   *rpc.Client
	DAS   *dasclient.Client
	Payer solana.PublicKey
}

// CompressedMintIntent mints a new compressed leaf, pre-verified as a
// member of collectionMint in the same instruction.
type CompressedMintIntent struct {
	MerkleTree              solana.PublicKey
	Owner                   solana.PublicKey
	Recipient               solana.PublicKey
	CollectionMint          solana.PublicKey
	CollectionMetadata      solana.PublicKey
	CollectionMasterEdition solana.PublicKey
	Metadata                MetadataInput
}

// Mint composes a single Bubblegum MintToCollectionV1 instruction. If
// any caller-supplied creator is both verified and equal to owner,
// owner is appended as an extra signer account — Bubblegum's CPI into
// Token Metadata requires the creator's own signature to verify
// itself, something the implicit owner-authority signer above does
// not cover.
func (c *Compressed) Mint(ctx context.Context, intent CompressedMintIntent) (*PendingTransaction, *addresses.MintCompressedMintV1Addresses, error) {
	treeAuthority, _, err := solana.FindBubblegumTreeAuthorityAddress(intent.MerkleTree)
	if err != nil {
		return nil, nil, fmt.Errorf("derive tree authority address: %w", err)
	}
	editionAccount, _, err := solana.FindMasterEditionAddress(intent.CollectionMint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive collection edition address: %w", err)
	}
	bubblegumSigner, _, err := solana.FindProgramAddress([][]byte{[]byte("collection_cpi")}, bubblegum.ProgramID)
	if err != nil {
		return nil, nil, fmt.Errorf("derive bubblegum cpi signer: %w", err)
	}

	blockhash, err := latestBlockhash(ctx, c.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	creators := make([]bubblegum.Creator, 0, len(intent.Metadata.Creators))
	for _, creator := range intent.Metadata.Creators {
		creators = append(creators, bubblegum.Creator{
			Address:  creator.Address,
			Verified: creator.Verified,
			Share:    creator.Share,
		})
	}

	metadataArgs := bubblegum.MetadataArgs{
		Name:                 intent.Metadata.Name,
		Symbol:               intent.Metadata.Symbol,
		URI:                  intent.Metadata.URI,
		SellerFeeBasisPoints: intent.Metadata.SellerFeeBasisPoints,
		IsMutable:            true,
		Creators:             creators,
		Collection:           &bubblegum.Collection{Verified: false, Key: intent.CollectionMint},
	}

	mint := bubblegum.NewMintToCollectionV1Instruction(
		metadataArgs,
		treeAuthority, intent.Recipient, intent.Recipient, intent.MerkleTree, c.Payer, intent.Owner,
		intent.Owner, bubblegum.ProgramID, intent.CollectionMint, intent.CollectionMetadata,
		editionAccount, bubblegumSigner,
	)

	if intent.Metadata.hasVerifiedOwnerCreator(intent.Owner) {
		mint.AccountMetaSlice = append(mint.AccountMetaSlice, solana.Meta(intent.Owner).SIGNER())
	}

	instruction, err := mint.ValidateAndBuild()
	if err != nil {
		return nil, nil, fmt.Errorf("build mint instruction: %w", err)
	}

	pending, err := finalizeMessage([]solana.Instruction{instruction}, c.Payer, blockhash, nil)
	if err != nil {
		return nil, nil, err
	}

	return pending, &addresses.MintCompressedMintV1Addresses{
		MerkleTree:    intent.MerkleTree,
		TreeAuthority: treeAuthority,
		LeafOwner:     intent.Recipient,
	}, nil
}

// Transfer reassigns ownership of a compressed leaf. The merkle proof
// and hash material are fetched from the Digital Asset API at
// assembly time, never stored locally, since proofs become stale the
// instant any other leaf in the tree changes.
func (c *Compressed) Transfer(ctx context.Context, assetID string, merkleTree, sender, recipient solana.PublicKey) (*PendingTransaction, *addresses.TransferCompressedMintV1Addresses, error) {
	asset, err := c.DAS.GetAsset(ctx, assetID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch asset: %w", err)
	}
	proof, err := c.DAS.GetAssetProof(ctx, assetID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch asset proof: %w", err)
	}

	root, err := decodeHash(proof.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("decode proof root: %w", err)
	}
	dataHash, err := decodeHash(asset.Compression.DataHash)
	if err != nil {
		return nil, nil, fmt.Errorf("decode data hash: %w", err)
	}
	creatorHash, err := decodeHash(asset.Compression.CreatorHash)
	if err != nil {
		return nil, nil, fmt.Errorf("decode creator hash: %w", err)
	}

	proofPath := make([]solana.PublicKey, 0, len(proof.Proof))
	for _, node := range proof.Proof {
		proofPath = append(proofPath, solana.MustPublicKeyFromBase58(node))
	}

	treeAuthority, _, err := solana.FindBubblegumTreeAuthorityAddress(merkleTree)
	if err != nil {
		return nil, nil, fmt.Errorf("derive tree authority address: %w", err)
	}

	blockhash, err := latestBlockhash(ctx, c.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	transfer := bubblegum.NewTransferInstruction(
		root, dataHash, creatorHash,
		asset.Compression.LeafID, uint32(asset.Compression.LeafID),
		treeAuthority, sender, sender, recipient, merkleTree,
		true, proofPath,
	)

	instruction, err := transfer.ValidateAndBuild()
	if err != nil {
		return nil, nil, fmt.Errorf("build transfer instruction: %w", err)
	}

	pending, err := finalizeMessage([]solana.Instruction{instruction}, c.Payer, blockhash, nil)
	if err != nil {
		return nil, nil, err
	}

	assetIDKey := solana.MustPublicKeyFromBase58(assetID)
	return pending, &addresses.TransferCompressedMintV1Addresses{
		MerkleTree: merkleTree,
		AssetID:    assetIDKey,
	}, nil
}

func decodeHash(s string) (out [32]byte, err error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		// Many DAS implementations return these fields base58-encoded
		// rather than hex; fall back before failing the assembly.
		pk, err2 := solana.PublicKeyFromBase58(s)
		if err2 != nil {
			return out, err
		}
		copy(out[:], pk[:])
		return out, nil
	}
	copy(out[:], b)
	return out, nil
}
