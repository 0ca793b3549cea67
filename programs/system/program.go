// Package system wraps the native System program instructions this
// worker needs to size and fund new mint accounts before handing them
// to the Token program.
package system

import (
	"bytes"
	"encoding/binary"
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	solana "github.com/holaplex/hub-nfts-solana-go"
)

const ProgramName = "System"

var ProgramID = solana.SystemProgramID

const (
	Instruction_CreateAccount uint32 = iota
	Instruction_Assign
	Instruction_Transfer
)

type Instruction struct {
	ag_binary.BaseVariant
}

func (inst *Instruction) ProgramID() solana.PublicKey {
	return ProgramID
}

func (inst *Instruction) Accounts() []*solana.AccountMeta {
	return inst.Impl.(solana.AccountsGettable).GetAccounts()
}

func (inst *Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := ag_binary.NewBinEncoder(buf).Encode(inst); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

func (inst *Instruction) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	if err := encoder.WriteUint32(inst.TypeID.Uint32(), binary.LittleEndian); err != nil {
		return fmt.Errorf("unable to write variant type: %w", err)
	}
	return encoder.Encode(inst.Impl)
}

// CreateAccount allocates a new account owned by the given program,
// funded with the provided lamports and sized to the target program's
// account layout (here, the SPL Token mint layout).
type CreateAccount struct {
	Lamports   *uint64
	Space      *uint64
	Owner      *solana.PublicKey

	// [0] = [WRITE, SIGNER] payer
	// [1] = [WRITE, SIGNER] newAccount
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewCreateAccountInstructionBuilder() *CreateAccount {
	return &CreateAccount{
		AccountMetaSlice: make(solana.AccountMetaSlice, 2),
	}
}

func (inst *CreateAccount) SetLamports(lamports uint64) *CreateAccount {
	inst.Lamports = &lamports
	return inst
}

func (inst *CreateAccount) SetSpace(space uint64) *CreateAccount {
	inst.Space = &space
	return inst
}

func (inst *CreateAccount) SetOwner(owner solana.PublicKey) *CreateAccount {
	inst.Owner = &owner
	return inst
}

func (inst *CreateAccount) SetPayerAccount(payer solana.PublicKey) *CreateAccount {
	inst.AccountMetaSlice[0] = solana.Meta(payer).WRITE().SIGNER()
	return inst
}

func (inst *CreateAccount) SetNewAccount(newAccount solana.PublicKey) *CreateAccount {
	inst.AccountMetaSlice[1] = solana.Meta(newAccount).WRITE().SIGNER()
	return inst
}

func (inst CreateAccount) Build() *Instruction {
	return &Instruction{BaseVariant: ag_binary.BaseVariant{
		Impl:   inst,
		TypeID: ag_binary.TypeIDFromUint32(Instruction_CreateAccount, binary.LittleEndian),
	}}
}

func (inst CreateAccount) ValidateAndBuild() (*Instruction, error) {
	if inst.Lamports == nil {
		return nil, fmt.Errorf("Lamports parameter is not set")
	}
	if inst.Space == nil {
		return nil, fmt.Errorf("Space parameter is not set")
	}
	if inst.Owner == nil {
		return nil, fmt.Errorf("Owner parameter is not set")
	}
	if inst.AccountMetaSlice[0] == nil {
		return nil, fmt.Errorf("accounts.Payer is not set")
	}
	if inst.AccountMetaSlice[1] == nil {
		return nil, fmt.Errorf("accounts.NewAccount is not set")
	}
	return inst.Build(), nil
}

func (obj CreateAccount) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.Encode(obj.Lamports); err != nil {
		return err
	}
	if err = encoder.Encode(obj.Space); err != nil {
		return err
	}
	return encoder.Encode(obj.Owner)
}

// NewCreateAccountInstruction declares a CreateAccount instruction
// sized and funded for an SPL Token mint account.
func NewCreateAccountInstruction(
	lamports uint64,
	space uint64,
	owner solana.PublicKey,
	payer solana.PublicKey,
	newAccount solana.PublicKey,
) *CreateAccount {
	return NewCreateAccountInstructionBuilder().
		SetLamports(lamports).
		SetSpace(space).
		SetOwner(owner).
		SetPayerAccount(payer).
		SetNewAccount(newAccount)
}
