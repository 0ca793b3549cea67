package tokenmetadata

import (
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

// CreateMasterEditionV3 turns a mint's metadata account into a master
// edition with a fixed max supply of zero (unique, non-printable),
// the only configuration this worker ever creates.
type CreateMasterEditionV3 struct {
	MaxSupply *uint64

	// [0] = [WRITE] edition
	// [1] = [WRITE] mint
	// [2] = [SIGNER] updateAuthority
	// [3] = [SIGNER] mintAuthority
	// [4] = [WRITE, SIGNER] payer
	// [5] = [WRITE] metadata
	// [6] = [] tokenProgram
	// [7] = [] systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewCreateMasterEditionV3InstructionBuilder() *CreateMasterEditionV3 {
	return &CreateMasterEditionV3{
		AccountMetaSlice: make(solana.AccountMetaSlice, 8),
	}
}

func (inst *CreateMasterEditionV3) SetMaxSupply(maxSupply uint64) *CreateMasterEditionV3 {
	inst.MaxSupply = &maxSupply
	return inst
}

func (inst *CreateMasterEditionV3) SetEditionAccount(edition solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[0] = solana.Meta(edition).WRITE()
	return inst
}

func (inst *CreateMasterEditionV3) SetMintAccount(mint solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[1] = solana.Meta(mint).WRITE()
	return inst
}

func (inst *CreateMasterEditionV3) SetUpdateAuthorityAccount(authority solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[2] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *CreateMasterEditionV3) SetMintAuthorityAccount(authority solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[3] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *CreateMasterEditionV3) SetPayerAccount(payer solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[4] = solana.Meta(payer).WRITE().SIGNER()
	return inst
}

func (inst *CreateMasterEditionV3) SetMetadataAccount(metadata solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[5] = solana.Meta(metadata).WRITE()
	return inst
}

func (inst *CreateMasterEditionV3) SetTokenProgramAccount(tokenProgram solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[6] = solana.Meta(tokenProgram)
	return inst
}

func (inst *CreateMasterEditionV3) SetSystemProgramAccount(systemProgram solana.PublicKey) *CreateMasterEditionV3 {
	inst.AccountMetaSlice[7] = solana.Meta(systemProgram)
	return inst
}

func (inst CreateMasterEditionV3) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if inst.MaxSupply != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		return encoder.Encode(inst.MaxSupply)
	}
	return encoder.WriteBool(false)
}

func (inst CreateMasterEditionV3) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_CreateMasterEditionV3,
		body:          inst,
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst CreateMasterEditionV3) ValidateAndBuild() (*Instruction, error) {
	for i, name := range []string{"Edition", "Mint", "UpdateAuthority", "MintAuthority", "Payer", "Metadata", "TokenProgram", "SystemProgram"} {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

func (inst *CreateMasterEditionV3) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("CreateMasterEditionV3")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("edition", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("mint", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("updateAuthority", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("mintAuthority", inst.AccountMetaSlice[3]))
						accountsBranch.Child(ag_format.Meta("payer", inst.AccountMetaSlice[4]))
						accountsBranch.Child(ag_format.Meta("metadata", inst.AccountMetaSlice[5]))
					})
				})
		})
}

// NewCreateMasterEditionV3Instruction declares a master edition with
// a fixed zero max supply (unique NFT, no print editions).
func NewCreateMasterEditionV3Instruction(
	edition solana.PublicKey,
	mint solana.PublicKey,
	updateAuthority solana.PublicKey,
	mintAuthority solana.PublicKey,
	payer solana.PublicKey,
	metadata solana.PublicKey,
) *CreateMasterEditionV3 {
	return NewCreateMasterEditionV3InstructionBuilder().
		SetMaxSupply(0).
		SetEditionAccount(edition).
		SetMintAccount(mint).
		SetUpdateAuthorityAccount(updateAuthority).
		SetMintAuthorityAccount(mintAuthority).
		SetPayerAccount(payer).
		SetMetadataAccount(metadata).
		SetTokenProgramAccount(solana.TokenProgramID).
		SetSystemProgramAccount(solana.SystemProgramID)
}
