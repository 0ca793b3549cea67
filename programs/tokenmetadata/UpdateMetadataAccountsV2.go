package tokenmetadata

import (
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

// UpdateMetadataAccountsV2 rewrites a metadata account's data and/or
// update authority, used by the uncompressed Update and UpdateMint
// flows.
type UpdateMetadataAccountsV2 struct {
	Data                *DataV2
	NewUpdateAuthority  *solana.PublicKey
	PrimarySaleHappened *bool
	IsMutable           *bool

	// [0] = [WRITE] metadata
	// [1] = [SIGNER] updateAuthority
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewUpdateMetadataAccountsV2InstructionBuilder() *UpdateMetadataAccountsV2 {
	return &UpdateMetadataAccountsV2{
		AccountMetaSlice: make(solana.AccountMetaSlice, 2),
	}
}

func (inst *UpdateMetadataAccountsV2) SetData(data DataV2) *UpdateMetadataAccountsV2 {
	inst.Data = &data
	return inst
}

func (inst *UpdateMetadataAccountsV2) SetNewUpdateAuthority(authority solana.PublicKey) *UpdateMetadataAccountsV2 {
	inst.NewUpdateAuthority = &authority
	return inst
}

func (inst *UpdateMetadataAccountsV2) SetMetadataAccount(metadata solana.PublicKey) *UpdateMetadataAccountsV2 {
	inst.AccountMetaSlice[0] = solana.Meta(metadata).WRITE()
	return inst
}

func (inst *UpdateMetadataAccountsV2) SetUpdateAuthorityAccount(authority solana.PublicKey) *UpdateMetadataAccountsV2 {
	inst.AccountMetaSlice[1] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst UpdateMetadataAccountsV2) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if inst.NewUpdateAuthority != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		if err = encoder.Encode(inst.NewUpdateAuthority); err != nil {
			return err
		}
	} else if err = encoder.WriteBool(false); err != nil {
		return err
	}
	if inst.Data != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		if err = inst.Data.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	} else if err = encoder.WriteBool(false); err != nil {
		return err
	}
	if inst.PrimarySaleHappened != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		if err = encoder.WriteBool(*inst.PrimarySaleHappened); err != nil {
			return err
		}
	} else if err = encoder.WriteBool(false); err != nil {
		return err
	}
	if inst.IsMutable != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		return encoder.WriteBool(*inst.IsMutable)
	}
	return encoder.WriteBool(false)
}

func (inst UpdateMetadataAccountsV2) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_UpdateMetadataAccountV2,
		body:          inst,
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst UpdateMetadataAccountsV2) ValidateAndBuild() (*Instruction, error) {
	if inst.AccountMetaSlice[0] == nil {
		return nil, fmt.Errorf("accounts.Metadata is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return nil, fmt.Errorf("accounts.UpdateAuthority is not set")
	}
	return inst.Build(), nil
}

func (inst *UpdateMetadataAccountsV2) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("UpdateMetadataAccountsV2")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("metadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("updateAuthority", inst.AccountMetaSlice[1]))
					})
				})
		})
}

// NewUpdateMetadataAccountsV2Instruction declares an update replacing
// just the data payload, leaving authority/mutability untouched.
func NewUpdateMetadataAccountsV2Instruction(
	data DataV2,
	metadata solana.PublicKey,
	updateAuthority solana.PublicKey,
) *UpdateMetadataAccountsV2 {
	return NewUpdateMetadataAccountsV2InstructionBuilder().
		SetData(data).
		SetMetadataAccount(metadata).
		SetUpdateAuthorityAccount(updateAuthority)
}
