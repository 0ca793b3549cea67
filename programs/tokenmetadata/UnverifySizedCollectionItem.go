package tokenmetadata

import (
	"fmt"

	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

// UnverifySizedCollectionItem removes verified collection membership,
// used when switching an NFT to a different collection.
type UnverifySizedCollectionItem struct {
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewUnverifySizedCollectionItemInstructionBuilder() *UnverifySizedCollectionItem {
	return &UnverifySizedCollectionItem{AccountMetaSlice: newCollectionItemAccounts()}
}

func (inst *UnverifySizedCollectionItem) SetMetadataAccount(v solana.PublicKey) *UnverifySizedCollectionItem {
	inst.AccountMetaSlice[0] = solana.Meta(v).WRITE()
	return inst
}
func (inst *UnverifySizedCollectionItem) SetCollectionAuthorityAccount(v solana.PublicKey) *UnverifySizedCollectionItem {
	inst.AccountMetaSlice[1] = solana.Meta(v).SIGNER()
	return inst
}
func (inst *UnverifySizedCollectionItem) SetPayerAccount(v solana.PublicKey) *UnverifySizedCollectionItem {
	inst.AccountMetaSlice[2] = solana.Meta(v).WRITE().SIGNER()
	return inst
}
func (inst *UnverifySizedCollectionItem) SetCollectionMintAccount(v solana.PublicKey) *UnverifySizedCollectionItem {
	inst.AccountMetaSlice[3] = solana.Meta(v)
	return inst
}
func (inst *UnverifySizedCollectionItem) SetCollectionMetadataAccount(v solana.PublicKey) *UnverifySizedCollectionItem {
	inst.AccountMetaSlice[4] = solana.Meta(v).WRITE()
	return inst
}
func (inst *UnverifySizedCollectionItem) SetCollectionMasterEditionAccount(v solana.PublicKey) *UnverifySizedCollectionItem {
	inst.AccountMetaSlice[5] = solana.Meta(v)
	return inst
}

func (inst UnverifySizedCollectionItem) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_UnverifySizedCollectionItem,
		body:          noParams{},
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst UnverifySizedCollectionItem) ValidateAndBuild() (*Instruction, error) {
	for i, name := range []string{"Metadata", "CollectionAuthority", "Payer", "CollectionMint", "CollectionMetadata", "CollectionMasterEdition"} {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

func (inst *UnverifySizedCollectionItem) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("UnverifySizedCollectionItem")).
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

func NewUnverifySizedCollectionItemInstruction(
	metadata, collectionAuthority, payer, collectionMint, collectionMetadata, collectionMasterEdition solana.PublicKey,
) *UnverifySizedCollectionItem {
	return NewUnverifySizedCollectionItemInstructionBuilder().
		SetMetadataAccount(metadata).
		SetCollectionAuthorityAccount(collectionAuthority).
		SetPayerAccount(payer).
		SetCollectionMintAccount(collectionMint).
		SetCollectionMetadataAccount(collectionMetadata).
		SetCollectionMasterEditionAccount(collectionMasterEdition)
}
