package tokenmetadata

import (
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

// MintNewEditionFromMasterEditionViaToken mints a numbered print
// edition from a master edition, used by the edition-backed mint
// backend for drops that mint multiple numbered copies.
type MintNewEditionFromMasterEditionViaToken struct {
	Edition *uint64

	// [0]  = [WRITE] newMetadata
	// [1]  = [WRITE] newEdition
	// [2]  = [WRITE] masterEdition
	// [3]  = [WRITE] newMint
	// [4]  = [SIGNER] newMintAuthority
	// [5]  = [WRITE, SIGNER] payer
	// [6]  = [SIGNER] tokenAccountOwner
	// [7]  = [] tokenAccount
	// [8]  = [SIGNER] newMetadataUpdateAuthority
	// [9]  = [] masterMetadata
	// [10] = [] tokenProgram
	// [11] = [] systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewMintNewEditionFromMasterEditionViaTokenInstructionBuilder() *MintNewEditionFromMasterEditionViaToken {
	return &MintNewEditionFromMasterEditionViaToken{
		AccountMetaSlice: make(solana.AccountMetaSlice, 12),
	}
}

func (inst *MintNewEditionFromMasterEditionViaToken) SetEdition(edition uint64) *MintNewEditionFromMasterEditionViaToken {
	inst.Edition = &edition
	return inst
}

func (inst *MintNewEditionFromMasterEditionViaToken) SetNewMetadataAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[0] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetNewEditionAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[1] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetMasterEditionAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[2] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetNewMintAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[3] = solana.Meta(v).WRITE()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetNewMintAuthorityAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[4] = solana.Meta(v).SIGNER()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetPayerAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[5] = solana.Meta(v).WRITE().SIGNER()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetTokenAccountOwnerAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[6] = solana.Meta(v).SIGNER()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetTokenAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[7] = solana.Meta(v)
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetNewMetadataUpdateAuthorityAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[8] = solana.Meta(v).SIGNER()
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetMasterMetadataAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[9] = solana.Meta(v)
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetTokenProgramAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[10] = solana.Meta(v)
	return inst
}
func (inst *MintNewEditionFromMasterEditionViaToken) SetSystemProgramAccount(v solana.PublicKey) *MintNewEditionFromMasterEditionViaToken {
	inst.AccountMetaSlice[11] = solana.Meta(v)
	return inst
}

func (inst MintNewEditionFromMasterEditionViaToken) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	return encoder.Encode(inst.Edition)
}

func (inst MintNewEditionFromMasterEditionViaToken) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_MintNewEditionFromMasterEditionViaToken,
		body:          inst,
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst MintNewEditionFromMasterEditionViaToken) ValidateAndBuild() (*Instruction, error) {
	if inst.Edition == nil {
		return nil, fmt.Errorf("Edition parameter is not set")
	}
	names := []string{
		"NewMetadata", "NewEdition", "MasterEdition", "NewMint", "NewMintAuthority",
		"Payer", "TokenAccountOwner", "TokenAccount", "NewMetadataUpdateAuthority",
		"MasterMetadata", "TokenProgram", "SystemProgram",
	}
	for i, name := range names {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

func (inst *MintNewEditionFromMasterEditionViaToken) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("MintNewEditionFromMasterEditionViaToken")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("Edition", *inst.Edition))
					})
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("newMetadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("newEdition", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("masterEdition", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("newMint", inst.AccountMetaSlice[3]))
					})
				})
		})
}

// NewMintNewEditionFromMasterEditionViaTokenInstruction declares a
// print-edition mint using the wired-in native program IDs.
func NewMintNewEditionFromMasterEditionViaTokenInstruction(
	edition uint64,
	newMetadata, newEdition, masterEdition, newMint, newMintAuthority,
	payer, tokenAccountOwner, tokenAccount, newMetadataUpdateAuthority, masterMetadata solana.PublicKey,
) *MintNewEditionFromMasterEditionViaToken {
	return NewMintNewEditionFromMasterEditionViaTokenInstructionBuilder().
		SetEdition(edition).
		SetNewMetadataAccount(newMetadata).
		SetNewEditionAccount(newEdition).
		SetMasterEditionAccount(masterEdition).
		SetNewMintAccount(newMint).
		SetNewMintAuthorityAccount(newMintAuthority).
		SetPayerAccount(payer).
		SetTokenAccountOwnerAccount(tokenAccountOwner).
		SetTokenAccount(tokenAccount).
		SetNewMetadataUpdateAuthorityAccount(newMetadataUpdateAuthority).
		SetMasterMetadataAccount(masterMetadata).
		SetTokenProgramAccount(solana.TokenProgramID).
		SetSystemProgramAccount(solana.SystemProgramID)
}
