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

// Transfer moves tokens between two accounts of the same mint,
// used to move an uncompressed NFT to a new owner.
type Transfer struct {
	Amount *uint64

	// [0] = [WRITE] source
	// [1] = [WRITE] destination
	// [2] = [SIGNER] owner
	ag_solanago.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewTransferInstructionBuilder() *Transfer {
	return &Transfer{
		AccountMetaSlice: make(ag_solanago.AccountMetaSlice, 3),
	}
}

func (inst *Transfer) SetAmount(amount uint64) *Transfer {
	inst.Amount = &amount
	return inst
}

func (inst *Transfer) SetSourceAccount(source ag_solanago.PublicKey) *Transfer {
	inst.AccountMetaSlice[0] = ag_solanago.Meta(source).WRITE()
	return inst
}

func (inst *Transfer) SetDestinationAccount(destination ag_solanago.PublicKey) *Transfer {
	inst.AccountMetaSlice[1] = ag_solanago.Meta(destination).WRITE()
	return inst
}

func (inst *Transfer) SetOwnerAccount(owner ag_solanago.PublicKey) *Transfer {
	inst.AccountMetaSlice[2] = ag_solanago.Meta(owner).SIGNER()
	return inst
}

func (inst Transfer) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: ag_binary.TypeIDFromUint32(Instruction_Transfer, binary.LittleEndian),
	}}
}

func (inst Transfer) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *Transfer) Validate() error {
	if inst.Amount == nil {
		return errors.New("Amount parameter is not set")
	}
	if inst.AccountMetaSlice[0] == nil {
		return fmt.Errorf("accounts.Source is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return fmt.Errorf("accounts.Destination is not set")
	}
	if inst.AccountMetaSlice[2] == nil {
		return fmt.Errorf("accounts.Owner is not set")
	}
	return nil
}

func (inst *Transfer) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("Transfer")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("Amount", *inst.Amount))
					})
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("source", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("destination", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("owner", inst.AccountMetaSlice[2]))
					})
				})
		})
}

func (obj Transfer) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	return encoder.Encode(obj.Amount)
}

// NewTransferInstruction declares a new Transfer instruction moving a
// single unit between token accounts.
func NewTransferInstruction(
	source ag_solanago.PublicKey,
	destination ag_solanago.PublicKey,
	owner ag_solanago.PublicKey,
) *Transfer {
	return NewTransferInstructionBuilder().
		SetAmount(1).
		SetSourceAccount(source).
		SetDestinationAccount(destination).
		SetOwnerAccount(owner)
}
