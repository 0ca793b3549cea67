package tokenmetadata

import (
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

type noParams struct{}

func (noParams) MarshalWithEncoder(*ag_binary.Encoder) error { return nil }

// Shared account layout for VerifySizedCollectionItem and
// UnverifySizedCollectionItem:
//
// [0] = [WRITE] metadata
// [1] = [SIGNER] collectionAuthority
// [2] = [WRITE, SIGNER] payer
// [3] = [] collectionMint
// [4] = [WRITE] collectionMetadata
// [5] = [] collectionMasterEdition
func newCollectionItemAccounts() solana.AccountMetaSlice {
	return make(solana.AccountMetaSlice, 6)
}

// VerifySizedCollectionItem marks an NFT's metadata as a verified
// member of a sized collection.
type VerifySizedCollectionItem struct {
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewVerifySizedCollectionItemInstructionBuilder() *VerifySizedCollectionItem {
	return &VerifySizedCollectionItem{AccountMetaSlice: newCollectionItemAccounts()}
}

func (inst *VerifySizedCollectionItem) SetMetadataAccount(v solana.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[0] = solana.Meta(v).WRITE()
	return inst
}
func (inst *VerifySizedCollectionItem) SetCollectionAuthorityAccount(v solana.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[1] = solana.Meta(v).SIGNER()
	return inst
}
func (inst *VerifySizedCollectionItem) SetPayerAccount(v solana.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[2] = solana.Meta(v).WRITE().SIGNER()
	return inst
}
func (inst *VerifySizedCollectionItem) SetCollectionMintAccount(v solana.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[3] = solana.Meta(v)
	return inst
}
func (inst *VerifySizedCollectionItem) SetCollectionMetadataAccount(v solana.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[4] = solana.Meta(v).WRITE()
	return inst
}
func (inst *VerifySizedCollectionItem) SetCollectionMasterEditionAccount(v solana.PublicKey) *VerifySizedCollectionItem {
	inst.AccountMetaSlice[5] = solana.Meta(v)
	return inst
}

func (inst VerifySizedCollectionItem) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_VerifySizedCollectionItem,
		body:          noParams{},
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst VerifySizedCollectionItem) ValidateAndBuild() (*Instruction, error) {
	for i, name := range []string{"Metadata", "CollectionAuthority", "Payer", "CollectionMint", "CollectionMetadata", "CollectionMasterEdition"} {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

func (inst *VerifySizedCollectionItem) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("VerifySizedCollectionItem")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("metadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("collectionAuthority", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("payer", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("collectionMint", inst.AccountMetaSlice[3]))
						accountsBranch.Child(ag_format.Meta("collectionMetadata", inst.AccountMetaSlice[4]))
						accountsBranch.Child(ag_format.Meta("collectionMasterEdition", inst.AccountMetaSlice[5]))
					})
				})
		})
}

func NewVerifySizedCollectionItemInstruction(
	metadata, collectionAuthority, payer, collectionMint, collectionMetadata, collectionMasterEdition solana.PublicKey,
) *VerifySizedCollectionItem {
	return NewVerifySizedCollectionItemInstructionBuilder().
		SetMetadataAccount(metadata).
		SetCollectionAuthorityAccount(collectionAuthority).
		SetPayerAccount(payer).
		SetCollectionMintAccount(collectionMint).
		SetCollectionMetadataAccount(collectionMetadata).
		SetCollectionMasterEditionAccount(collectionMasterEdition)
}
