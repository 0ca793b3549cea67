package tokenmetadata

import (
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

// SetAndVerifySizedCollectionItem atomically re-points an NFT's
// metadata at a new collection and verifies membership in one
// instruction, used by the SwitchCollection backend to avoid a
// window where the mint has no verified collection.
type SetAndVerifySizedCollectionItem struct {
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewSetAndVerifySizedCollectionItemInstructionBuilder() *SetAndVerifySizedCollectionItem {
	return &SetAndVerifySizedCollectionItem{AccountMetaSlice: newCollectionItemAccounts()}
}

func (inst *SetAndVerifySizedCollectionItem) SetMetadataAccount(v solana.PublicKey) *SetAndVerifySizedCollectionItem {
	inst.AccountMetaSlice[0] = solana.Meta(v).WRITE()
	return inst
}
func (inst *SetAndVerifySizedCollectionItem) SetCollectionAuthorityAccount(v solana.PublicKey) *SetAndVerifySizedCollectionItem {
	inst.AccountMetaSlice[1] = solana.Meta(v).SIGNER()
	return inst
}
func (inst *SetAndVerifySizedCollectionItem) SetPayerAccount(v solana.PublicKey) *SetAndVerifySizedCollectionItem {
	inst.AccountMetaSlice[2] = solana.Meta(v).WRITE().SIGNER()
	return inst
}
func (inst *SetAndVerifySizedCollectionItem) SetCollectionMintAccount(v solana.PublicKey) *SetAndVerifySizedCollectionItem {
	inst.AccountMetaSlice[3] = solana.Meta(v)
	return inst
}
func (inst *SetAndVerifySizedCollectionItem) SetCollectionMetadataAccount(v solana.PublicKey) *SetAndVerifySizedCollectionItem {
	inst.AccountMetaSlice[4] = solana.Meta(v).WRITE()
	return inst
}
func (inst *SetAndVerifySizedCollectionItem) SetCollectionMasterEditionAccount(v solana.PublicKey) *SetAndVerifySizedCollectionItem {
	inst.AccountMetaSlice[5] = solana.Meta(v)
	return inst
}

func (inst SetAndVerifySizedCollectionItem) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	return nil
}

func (inst SetAndVerifySizedCollectionItem) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_SetAndVerifySizedCollectionItem,
		body:          inst,
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst SetAndVerifySizedCollectionItem) ValidateAndBuild() (*Instruction, error) {
	for i, name := range []string{"Metadata", "CollectionAuthority", "Payer", "CollectionMint", "CollectionMetadata", "CollectionMasterEdition"} {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

func (inst *SetAndVerifySizedCollectionItem) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("SetAndVerifySizedCollectionItem")).
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

func NewSetAndVerifySizedCollectionItemInstruction(
	metadata, collectionAuthority, payer, collectionMint, collectionMetadata, collectionMasterEdition solana.PublicKey,
) *SetAndVerifySizedCollectionItem {
	return NewSetAndVerifySizedCollectionItemInstructionBuilder().
		SetMetadataAccount(metadata).
		SetCollectionAuthorityAccount(collectionAuthority).
		SetPayerAccount(payer).
		SetCollectionMintAccount(collectionMint).
		SetCollectionMetadataAccount(collectionMetadata).
		SetCollectionMasterEditionAccount(collectionMasterEdition)
}
