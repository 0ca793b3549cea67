package bubblegum

import (
	"fmt"

	solana "github.com/holaplex/hub-nfts-solana-go"
)

// MintToCollectionV1 mints a new compressed NFT leaf into a merkle
// tree, pre-verified as a member of the given collection in the same
// instruction.
//
// [0]  = [WRITE] treeAuthority
// [1]  = [] leafOwner
// [2]  = [] leafDelegate
// [3]  = [WRITE] merkleTree
// [4]  = [WRITE, SIGNER] payer
// [5]  = [SIGNER] treeDelegate
// [6]  = [WRITE] collectionAuthority
// [7]  = [] collectionAuthorityRecordPda
// [8]  = [] collectionMint
// [9]  = [WRITE] collectionMetadata
// [10] = [] editionAccount
// [11] = [] bubblegumSigner
// [12] = [] logWrapper (spl-noop)
// [13] = [] compressionProgram
// [14] = [] tokenMetadataProgram
// [15] = [] systemProgram
type MintToCollectionV1 struct {
	Metadata MetadataArgs

	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewMintToCollectionV1InstructionBuilder() *MintToCollectionV1 {
	return &MintToCollectionV1{
		AccountMetaSlice: make(solana.AccountMetaSlice, 16),
	}
}

func (inst *MintToCollectionV1) SetMetadata(metadata MetadataArgs) *MintToCollectionV1 {
	inst.Metadata = metadata
	return inst
}

func (inst *MintToCollectionV1) SetTreeAuthorityAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[0] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintToCollectionV1) SetLeafOwnerAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[1] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetLeafDelegateAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[2] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetMerkleTreeAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[3] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintToCollectionV1) SetPayerAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[4] = solana.Meta(v).WRITE().SIGNER()
	return inst
}
func (inst *MintToCollectionV1) SetTreeDelegateAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[5] = solana.Meta(v).SIGNER()
	return inst
}
func (inst *MintToCollectionV1) SetCollectionAuthorityAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[6] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintToCollectionV1) SetCollectionAuthorityRecordPDAAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[7] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetCollectionMintAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[8] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetCollectionMetadataAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[9] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintToCollectionV1) SetEditionAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[10] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetBubblegumSignerAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[11] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetLogWrapperAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[12] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetCompressionProgramAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[13] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetTokenMetadataProgramAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[14] = solana.Meta(v)
	return inst
}
func (inst *MintToCollectionV1) SetSystemProgramAccount(v solana.PublicKey) *MintToCollectionV1 {
	inst.AccountMetaSlice[15] = solana.Meta(v)
	return inst
}

func (inst MintToCollectionV1) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_MintToCollectionV1,
		body:          inst.Metadata,
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst MintToCollectionV1) ValidateAndBuild() (*Instruction, error) {
	names := []string{
		"TreeAuthority", "LeafOwner", "LeafDelegate", "MerkleTree", "Payer", "TreeDelegate",
		"CollectionAuthority", "CollectionAuthorityRecordPDA", "CollectionMint", "CollectionMetadata",
		"Edition", "BubblegumSigner", "LogWrapper", "CompressionProgram", "TokenMetadataProgram", "SystemProgram",
	}
	for i, name := range names {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

// NewMintToCollectionV1Instruction declares a mint wired to the
// well-known native/support programs, leaving only tree- and
// collection-specific accounts to the caller.
func NewMintToCollectionV1Instruction(
	metadata MetadataArgs,
	treeAuthority, leafOwner, leafDelegate, merkleTree, payer, treeDelegate,
	collectionAuthority, collectionAuthorityRecordPDA, collectionMint, collectionMetadata,
	edition, bubblegumSigner solana.PublicKey,
) *MintToCollectionV1 {
	return NewMintToCollectionV1InstructionBuilder().
		SetMetadata(metadata).
		SetTreeAuthorityAccount(treeAuthority).
		SetLeafOwnerAccount(leafOwner).
		SetLeafDelegateAccount(leafDelegate).
		SetMerkleTreeAccount(merkleTree).
		SetPayerAccount(payer).
		SetTreeDelegateAccount(treeDelegate).
		SetCollectionAuthorityAccount(collectionAuthority).
		SetCollectionAuthorityRecordPDAAccount(collectionAuthorityRecordPDA).
		SetCollectionMintAccount(collectionMint).
		SetCollectionMetadataAccount(collectionMetadata).
		SetEditionAccount(edition).
		SetBubblegumSignerAccount(bubblegumSigner).
		SetLogWrapperAccount(solana.SPLNoopProgramID).
		SetCompressionProgramAccount(solana.SPLAccountCompressionProgramID).
		SetTokenMetadataProgramAccount(solana.TokenMetadataProgramID).
		SetSystemProgramAccount(solana.SystemProgramID)
}
