package assembly

import (
	"context"
	"fmt"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/internal/addresses"
	"github.com/holaplex/hub-nfts-solana-go/programs/associatedtokenaccount"
	"github.com/holaplex/hub-nfts-solana-go/programs/system"
	"github.com/holaplex/hub-nfts-solana-go/programs/token"
	"github.com/holaplex/hub-nfts-solana-go/programs/tokenmetadata"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

// Uncompressed assembles transactions against vanilla SPL Token +
// Metaplex Token Metadata accounts: one mint, one metadata account,
// one master edition per NFT. Payer is the treasury wallet that fee-pays
// and funds rent for every instruction this backend composes.
type Uncompressed struct {
	RPC   *rpc.Client
	Payer solana.PublicKey
}

// CreateCollectionIntent mints a new sized collection NFT.
type CreateCollectionIntent struct {
	Mint     solana.PrivateKey
	Owner    solana.PublicKey
	Metadata MetadataInput
}

// Create mints a new sized collection NFT: CreateAccount,
// InitializeMint, ATA::Create, MintTo, CreateMetadataAccountV3 with
// collection_details = Sized{size: 0}, CreateMasterEditionV3.
func (u *Uncompressed) Create(ctx context.Context, intent CreateCollectionIntent) (*PendingTransaction, *addresses.MasterEditionAddresses, error) {
	mint := intent.Mint.PublicKey()

	metadataAddr, _, err := solana.FindTokenMetadataAddress(mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive metadata address: %w", err)
	}
	masterEdition, _, err := solana.FindMasterEditionAddress(mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive master edition address: %w", err)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(intent.Owner, mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive associated token address: %w", err)
	}

	rent, err := mintAccountRent(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch mint rent exemption: %w", err)
	}
	blockhash, err := latestBlockhash(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	createAccount := system.NewCreateAccountInstruction(
		rent, mintAccountSpace, token.ProgramID, u.Payer, mint,
	).Build()

	initializeMint := token.NewInitializeMintInstructionBuilder().
		SetDecimals(0).
		SetMintAuthority(intent.Owner).
		SetFreezeAuthority(intent.Owner).
		SetMintAccount(mint).
		SetRentSysvarAccount(solana.SysVarRentPubkey).
		Build()

	createATA := associatedtokenaccount.NewCreateInstruction(u.Payer, ata, intent.Owner, mint).Build()

	mintTo := token.NewMintToInstruction(mint, ata, intent.Owner).Build()

	createMetadata := tokenmetadata.NewCreateMetadataAccountV3InstructionBuilder().
		SetData(intent.Metadata.dataV2(nil)).
		SetIsMutable(true).
		SetCollectionDetails(&tokenmetadata.CollectionDetails{Size: 0}).
		SetMetadataAccount(metadataAddr).
		SetMintAccount(mint).
		SetMintAuthorityAccount(intent.Owner).
		SetPayerAccount(u.Payer).
		SetUpdateAuthorityAccount(intent.Owner).
		SetSystemProgramAccount(solana.SystemProgramID).
		Build()

	createMasterEdition := tokenmetadata.NewCreateMasterEditionV3Instruction(
		masterEdition, mint, intent.Owner, intent.Owner, u.Payer, metadataAddr,
	).Build()

	pending, err := finalizeMessage(
		[]solana.Instruction{createAccount, initializeMint, createATA, mintTo, createMetadata, createMasterEdition},
		u.Payer,
		blockhash,
		[]*solana.PrivateKey{&intent.Mint},
	)
	if err != nil {
		return nil, nil, err
	}

	return pending, &addresses.MasterEditionAddresses{
		Mint:                   mint,
		Metadata:               metadataAddr,
		MasterEdition:          masterEdition,
		AssociatedTokenAccount: ata,
	}, nil
}

// MintIntent mints a new uncompressed child NFT into an existing
// collection, to recipient's associated token account.
type MintIntent struct {
	Mint                    solana.PrivateKey
	Owner                   solana.PublicKey
	Recipient               solana.PublicKey
	CollectionMint          solana.PublicKey
	CollectionMetadata      solana.PublicKey
	CollectionMasterEdition solana.PublicKey
	Metadata                MetadataInput
}

// Mint mints a new NFT unverified into collection, then verifies it in
// a follow-up instruction: CreateAccount, InitializeMint, ATA::Create
// (recipient), MintTo, CreateMetadataAccountV3(collection =
// Unverified{collection}), CreateMasterEditionV3,
// VerifySizedCollectionItem.
func (u *Uncompressed) Mint(ctx context.Context, intent MintIntent) (*PendingTransaction, *addresses.MintMetaplexAddresses, error) {
	mint := intent.Mint.PublicKey()

	metadataAddr, _, err := solana.FindTokenMetadataAddress(mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive metadata address: %w", err)
	}
	masterEdition, _, err := solana.FindMasterEditionAddress(mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive master edition address: %w", err)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(intent.Recipient, mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive associated token address: %w", err)
	}

	rent, err := mintAccountRent(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch mint rent exemption: %w", err)
	}
	blockhash, err := latestBlockhash(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	createAccount := system.NewCreateAccountInstruction(
		rent, mintAccountSpace, token.ProgramID, u.Payer, mint,
	).Build()

	initializeMint := token.NewInitializeMintInstructionBuilder().
		SetDecimals(0).
		SetMintAuthority(intent.Owner).
		SetFreezeAuthority(intent.Owner).
		SetMintAccount(mint).
		SetRentSysvarAccount(solana.SysVarRentPubkey).
		Build()

	createATA := associatedtokenaccount.NewCreateInstruction(u.Payer, ata, intent.Recipient, mint).Build()

	mintTo := token.NewMintToInstruction(mint, ata, intent.Owner).Build()

	collection := &tokenmetadata.Collection{Verified: false, Key: intent.CollectionMint}
	createMetadata := tokenmetadata.NewCreateMetadataAccountV3InstructionBuilder().
		SetData(intent.Metadata.dataV2(collection)).
		SetIsMutable(true).
		SetMetadataAccount(metadataAddr).
		SetMintAccount(mint).
		SetMintAuthorityAccount(intent.Owner).
		SetPayerAccount(u.Payer).
		SetUpdateAuthorityAccount(intent.Owner).
		SetSystemProgramAccount(solana.SystemProgramID).
		Build()

	createMasterEdition := tokenmetadata.NewCreateMasterEditionV3Instruction(
		masterEdition, mint, intent.Owner, intent.Owner, u.Payer, metadataAddr,
	).Build()

	verify := tokenmetadata.NewVerifySizedCollectionItemInstruction(
		metadataAddr, intent.Owner, u.Payer, intent.CollectionMint,
		intent.CollectionMetadata, intent.CollectionMasterEdition,
	).Build()

	pending, err := finalizeMessage(
		[]solana.Instruction{createAccount, initializeMint, createATA, mintTo, createMetadata, createMasterEdition, verify},
		u.Payer,
		blockhash,
		[]*solana.PrivateKey{&intent.Mint},
	)
	if err != nil {
		return nil, nil, err
	}

	return pending, &addresses.MintMetaplexAddresses{
		Mint:                   mint,
		Metadata:               metadataAddr,
		AssociatedTokenAccount: ata,
	}, nil
}

// Update rewrites a metadata account's data payload, leaving
// collection membership and authority untouched.
func (u *Uncompressed) Update(ctx context.Context, metadata, updateAuthority solana.PublicKey, data MetadataInput) (*PendingTransaction, *addresses.UpdateMasterEditionAddresses, error) {
	blockhash, err := latestBlockhash(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	update := tokenmetadata.NewUpdateMetadataAccountsV2Instruction(
		data.dataV2(nil), metadata, updateAuthority,
	).Build()

	pending, err := finalizeMessage([]solana.Instruction{update}, u.Payer, blockhash, nil)
	if err != nil {
		return nil, nil, err
	}
	return pending, &addresses.UpdateMasterEditionAddresses{Metadata: metadata}, nil
}

// UpdateMint rewrites a metadata account's data payload and marks it
// as a verified member of a collection with primary_sale_happened set.
func (u *Uncompressed) UpdateMint(ctx context.Context, metadata, updateAuthority, collectionMint solana.PublicKey, data MetadataInput) (*PendingTransaction, *addresses.UpdateCollectionMintAddresses, error) {
	blockhash, err := latestBlockhash(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	collection := &tokenmetadata.Collection{Verified: true, Key: collectionMint}
	primarySaleHappened := true

	updateBuilder := tokenmetadata.NewUpdateMetadataAccountsV2InstructionBuilder().
		SetData(data.dataV2(collection)).
		SetMetadataAccount(metadata).
		SetUpdateAuthorityAccount(updateAuthority)
	updateBuilder.PrimarySaleHappened = &primarySaleHappened
	update := updateBuilder.Build()

	pending, err := finalizeMessage([]solana.Instruction{update}, u.Payer, blockhash, nil)
	if err != nil {
		return nil, nil, err
	}
	return pending, &addresses.UpdateCollectionMintAddresses{Metadata: metadata, Collection: collectionMint}, nil
}

// RetryUpdateMint reuses a previously assembled, stored message,
// refreshing only the blockhash: the collection verification and data
// payload were already committed, only submission failed or the
// blockhash expired.
func (u *Uncompressed) RetryUpdateMint(ctx context.Context, stored *PendingTransaction) (*PendingTransaction, error) {
	message, err := solana.UnmarshalMessage(stored.SerializedMessage)
	if err != nil {
		return nil, fmt.Errorf("decode stored message: %w", err)
	}

	blockhash, err := latestBlockhash(ctx, u.RPC)
	if err != nil {
		return nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}
	message.RecentBlockhash = blockhash

	serialized, err := message.MarshalBinary()
	if err != nil {
		return nil, err
	}

	slots := make([]SignerSlot, len(message.Signers()))
	for i, signer := range message.Signers() {
		slots[i] = SignerSlot{PublicKey: signer}
	}

	return &PendingTransaction{SerializedMessage: serialized, SignaturesOrSigners: slots}, nil
}

// Switch moves a minted NFT from one collection to another:
// UnverifySizedCollectionItem(old), SetAndVerifySizedCollectionItem(new).
func (u *Uncompressed) Switch(
	ctx context.Context,
	metadata, updateAuthority solana.PublicKey,
	oldCollectionMint, oldCollectionMetadata, oldCollectionMasterEdition solana.PublicKey,
	newCollectionMint, newCollectionMetadata, newCollectionMasterEdition solana.PublicKey,
) (*PendingTransaction, *addresses.SwitchCollectionAddresses, error) {
	blockhash, err := latestBlockhash(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	unverify := tokenmetadata.NewUnverifySizedCollectionItemInstruction(
		metadata, updateAuthority, u.Payer, oldCollectionMint, oldCollectionMetadata, oldCollectionMasterEdition,
	).Build()

	setAndVerify := tokenmetadata.NewSetAndVerifySizedCollectionItemInstruction(
		metadata, updateAuthority, u.Payer, newCollectionMint, newCollectionMetadata, newCollectionMasterEdition,
	).Build()

	pending, err := finalizeMessage([]solana.Instruction{unverify, setAndVerify}, u.Payer, blockhash, nil)
	if err != nil {
		return nil, nil, err
	}
	return pending, &addresses.SwitchCollectionAddresses{
		Metadata:      metadata,
		OldCollection: oldCollectionMint,
		NewCollection: newCollectionMint,
	}, nil
}

// Transfer moves an uncompressed NFT to a new owner: creates the
// recipient's ATA if absent, moves the single token, then closes the
// now-empty source ATA back to the payer.
func (u *Uncompressed) Transfer(ctx context.Context, mint, sender, recipient solana.PublicKey) (*PendingTransaction, *addresses.TransferAssetAddresses, error) {
	sourceATA, _, err := solana.FindAssociatedTokenAddress(sender, mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive source associated token address: %w", err)
	}
	destATA, _, err := solana.FindAssociatedTokenAddress(recipient, mint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive destination associated token address: %w", err)
	}

	blockhash, err := latestBlockhash(ctx, u.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	createATA := associatedtokenaccount.NewCreateInstruction(u.Payer, destATA, recipient, mint).Build()
	transfer := token.NewTransferInstruction(sourceATA, destATA, sender).Build()
	closeAccount := token.NewCloseAccountInstruction(sourceATA, u.Payer, sender).Build()

	pending, err := finalizeMessage([]solana.Instruction{createATA, transfer, closeAccount}, u.Payer, blockhash, nil)
	if err != nil {
		return nil, nil, err
	}
	return pending, &addresses.TransferAssetAddresses{
		Mint:                         mint,
		SourceAssociatedTokenAccount: sourceATA,
		DestAssociatedTokenAccount:   destATA,
	}, nil
}
