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

// MintTo mints new tokens to an account, used to mint the single unit
// of an uncompressed NFT to the owner's associated token account.
type MintTo struct {
	Amount *uint64

	// [0] = [WRITE] mint
	// [1] = [WRITE] destination
	// [2] = [SIGNER] mintAuthority
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewMintToInstructionBuilder() *MintTo {
	return &MintTo{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 3),
	}
}

func (inst *MintTo) SetAmount(amount uint64) *MintTo {
	inst.Amount = &amount
	return inst
}

func (inst *MintTo) SetMintAccount(mint ag_solanago.PublicKey) *MintTo {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(mint).WRITE()
	return inst
}

func (inst *MintTo) SetDestinationAccount(destination ag_solanago.PublicKey) *MintTo {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(destination).WRITE()
	return inst
}

func (inst *MintTo) SetMintAuthorityAccount(authority ag_solanago.PublicKey) *MintTo {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(authority).SIGNER()
	return inst
}

func (inst MintTo) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: ag_binary.TypeIDFromUint32(Instruction_MintTo, binary.LittleEndian),
	}}
}

func (inst MintTo) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *MintTo) Validate() error {
	if inst.Amount == nil {
		return errors.New("Amount parameter is not set")
	}
	if inst.AccountMetaSlice[0] == nil {
		return fmt.Errorf("accounts.Mint is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return fmt.Errorf("accounts.Destination is not set")
	}
	if inst.AccountMetaSlice[2] == nil {
		return fmt.Errorf("accounts.MintAuthority is not set")
	}
	return nil
}

func (inst *MintTo) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("MintTo")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("Amount", *inst.Amount))
					})
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("mint", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("destination", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("mintAuthority", inst.AccountMetaSlice[2]))
					})
				})
		})
}

func (obj MintTo) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	return encoder.Encode(obj.Amount)
}

// NewMintToInstruction declares a new MintTo instruction minting a
// single unit, the only quantity this worker ever mints.
func NewMintToInstruction(
	mint ag_solanago.PublicKey,
	destination ag_solanago.PublicKey,
	mintAuthority ag_solanago.PublicKey,
) *MintTo {
	return NewMintToInstructionBuilder().
		SetAmount(1).
		SetMintAccount(mint).
		SetDestinationAccount(destination).
		SetMintAuthorityAccount(mintAuthority)
}
