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

// Edition mints numbered print editions from an existing master
// edition. Payer is the treasury wallet that fee-pays every
// instruction this backend composes.
type Edition struct {
	RPC   *rpc.Client
	Payer solana.PublicKey
}

// MintEditionIntent mints the next numbered copy of an existing master
// edition NFT into recipient's wallet.
type MintEditionIntent struct {
	NewMint       solana.PrivateKey
	MasterMint    solana.PublicKey
	EditionNumber uint64
	Owner         solana.PublicKey
	Recipient     solana.PublicKey
}

// Mint creates a new zero-decimal mint, mints a single unit to
// recipient, then calls MintNewEditionFromMasterEditionViaToken to
// stamp it as the numbered print edition of the master.
func (e *Edition) Mint(ctx context.Context, intent MintEditionIntent) (*PendingTransaction, *addresses.MintEditionAddresses, error) {
	newMint := intent.NewMint.PublicKey()

	newMetadata, _, err := solana.FindTokenMetadataAddress(newMint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive new metadata address: %w", err)
	}
	newEdition, _, err := solana.FindMasterEditionAddress(newMint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive new edition address: %w", err)
	}
	masterMetadata, _, err := solana.FindTokenMetadataAddress(intent.MasterMint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive master metadata address: %w", err)
	}
	masterEdition, _, err := solana.FindMasterEditionAddress(intent.MasterMint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive master edition address: %w", err)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(intent.Recipient, newMint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive associated token address: %w", err)
	}
	masterTokenAccount, _, err := solana.FindAssociatedTokenAddress(intent.Owner, intent.MasterMint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive master token account: %w", err)
	}

	rent, err := mintAccountRent(ctx, e.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch mint rent exemption: %w", err)
	}
	blockhash, err := latestBlockhash(ctx, e.RPC)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch latest blockhash: %w", err)
	}

	createAccount := system.NewCreateAccountInstruction(
		rent, mintAccountSpace, token.ProgramID, e.Payer, newMint,
	).Build()

	initializeMint := token.NewInitializeMintInstructionBuilder().
		SetDecimals(0).
		SetMintAuthority(intent.Owner).
		SetFreezeAuthority(intent.Owner).
		SetMintAccount(newMint).
		SetRentSysvarAccount(solana.SysVarRentPubkey).
		Build()

	createATA := associatedtokenaccount.NewCreateInstruction(e.Payer, ata, intent.Recipient, newMint).Build()

	mintTo := token.NewMintToInstruction(newMint, ata, intent.Owner).Build()

	printEdition := tokenmetadata.NewMintNewEditionFromMasterEditionViaTokenInstruction(
		intent.EditionNumber,
		newMetadata, newEdition, masterEdition, newMint, intent.Owner,
		e.Payer, intent.Owner, masterTokenAccount, intent.Owner, masterMetadata,
	).Build()

	pending, err := finalizeMessage(
		[]solana.Instruction{createAccount, initializeMint, createATA, mintTo, printEdition},
		e.Payer,
		blockhash,
		[]*solana.PrivateKey{&intent.NewMint},
	)
	if err != nil {
		return nil, nil, err
	}

	return pending, &addresses.MintEditionAddresses{
		Mint:                   newMint,
		Metadata:               newMetadata,
		Edition:                newEdition,
		AssociatedTokenAccount: ata,
	}, nil
}
