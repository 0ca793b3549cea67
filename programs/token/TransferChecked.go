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

// TransferChecked moves tokens between two accounts of the same mint,
// verifying the mint and decimals match what the caller expects.
type TransferChecked struct {
	Amount   *uint64
	Decimals *uint8

	// [0] = [WRITE] source
	// [1] = mint
	// [2] = [WRITE] destination
	// [3] = [SIGNER] owner
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewTransferCheckedInstructionBuilder() *TransferChecked {
	return &TransferChecked{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 4),
	}
}

func (inst *TransferChecked) SetAmount(amount uint64) *TransferChecked {
	inst.Amount = &amount
	return inst
}

func (inst *TransferChecked) SetDecimals(decimals uint8) *TransferChecked {
	inst.Decimals = &decimals
	return inst
}

func (inst *TransferChecked) SetSourceAccount(source ag_solanago.PublicKey) *TransferChecked {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(source).WRITE()
	return inst
}

func (inst *TransferChecked) SetMintAccount(mint ag_solanago.PublicKey) *TransferChecked {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(mint)
	return inst
}

func (inst *TransferChecked) SetDestinationAccount(destination ag_solanago.PublicKey) *TransferChecked {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(destination).WRITE()
	return inst
}

func (inst *TransferChecked) SetOwnerAccount(owner ag_solanago.PublicKey) *TransferChecked {
	inst.AccountMetaSlice[3] = ag_solanago.Meta(owner).SIGNER()
	return inst
}

func (inst TransferChecked) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: ag_binary.TypeIDFromUint32(Instruction_TransferChecked, binary.LittleEndian),
	}}
}

func (inst TransferChecked) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *TransferChecked) Validate() error {
	if inst.Amount == nil {
		return errors.New("Amount parameter is not set")
	}
	if inst.Decimals == nil {
		return errors.New("Decimals parameter is not set")
	}
	if inst.AccountMetaSlice[0] == nil {
		return fmt.Errorf("accounts.Source is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return fmt.Errorf("accounts.Mint is not set")
	}
	if inst.AccountMetaSlice[2] == nil {
		return fmt.Errorf("accounts.Destination is not set")
	}
	if inst.AccountMetaSlice[3] == nil {
		return fmt.Errorf("accounts.Owner is not set")
	}
	return nil
}

func (inst *TransferChecked) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("TransferChecked")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("Amount", *inst.Amount))
						paramsBranch.Child(ag_format.Param("Decimals", *inst.Decimals))
					})
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("source", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("mint", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("destination", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("owner", inst.AccountMetaSlice[3]))
					})
				})
		})
}

func (obj TransferChecked) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.Encode(obj.Amount); err != nil {
		return err
	}
	return encoder.Encode(obj.Decimals)
}
