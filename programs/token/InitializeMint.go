package token

import (
	"encoding/binary"
	"errors"
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	ag_treeout "github.com/gagliardetto/treeout"
	ag_solanago "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

// InitializeMint initializes a new mint account, sizing it for a
// zero-decimal NFT mint in this worker's usage.
type InitializeMint struct {
	Decimals        *uint8
	MintAuthority   *ag_solanago.PublicKey
	FreezeAuthority *ag_solanago.PublicKey

	// [0] = [WRITE] mint
	// [1] = [] rent sysvar
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewInitializeMintInstructionBuilder() *InitializeMint {
	return &InitializeMint{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 2),
	}
}

func (inst *InitializeMint) SetDecimals(decimals uint8) *InitializeMint {
	inst.Decimals = &decimals
	return inst
}

func (inst *InitializeMint) SetMintAuthority(authority ag_solanago.PublicKey) *InitializeMint {
	inst.MintAuthority = &authority
	return inst
}

func (inst *InitializeMint) SetFreezeAuthority(authority ag_solanago.PublicKey) *InitializeMint {
	inst.FreezeAuthority = &authority
	return inst
}

func (inst *InitializeMint) SetMintAccount(mint ag_solanago.PublicKey) *InitializeMint {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(mint).WRITE()
	return inst
}

func (inst *InitializeMint) SetRentSysvarAccount(rent ag_solanago.PublicKey) *InitializeMint {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(rent)
	return inst
}

func (inst InitializeMint) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: ag_binary.TypeIDFromUint32(Instruction_InitializeMint, binary.LittleEndian),
	}}
}

func (inst InitializeMint) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *InitializeMint) Validate() error {
	if inst.Decimals == nil {
		return errors.New("Decimals parameter is not set")
	}
	if inst.MintAuthority == nil {
		return errors.New("MintAuthority parameter is not set")
	}
	if inst.AccountMetaSlice[0] == nil {
		return fmt.Errorf("accounts.Mint is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return fmt.Errorf("accounts.RentSysvar is not set")
	}
	return nil
}

func (inst *InitializeMint) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("InitializeMint")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("Decimals", *inst.Decimals))
						paramsBranch.Child(ag_format.Param("MintAuthority", *inst.MintAuthority))
					})
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("mint", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("rentSysvar", inst.AccountMetaSlice[1]))
					})
				})
		})
}

func (obj InitializeMint) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.Encode(obj.Decimals); err != nil {
		return err
	}
	if err = encoder.Encode(obj.MintAuthority); err != nil {
		return err
	}
	if obj.FreezeAuthority != nil {
		if err = encoder.WriteUint8(1); err != nil {
			return err
		}
		if err = encoder.Encode(obj.FreezeAuthority); err != nil {
			return err
		}
	} else {
		if err = encoder.WriteUint8(0); err != nil {
			return err
		}
	}
	return nil
}

// NewInitializeMintInstruction declares a new InitializeMint
// instruction with a zero-decimal mint and no freeze authority, the
// shape this worker always mints.
func NewInitializeMintInstruction(
	mintAuthority ag_solanago.PublicKey,
	mint ag_solanago.PublicKey,
	rentSysvar ag_solanago.PublicKey,
) *InitializeMint {
	return NewInitializeMintInstructionBuilder().
		SetDecimals(0).
		SetMintAuthority(mintAuthority).
		SetMintAccount(mint).
		SetRentSysvarAccount(rentSysvar)
}
