// Package associatedtokenaccount wraps the SPL Associated Token
// Account program's Create instruction, used to derive and fund the
// owner's token account for a freshly minted NFT.
package associatedtokenaccount

import (
	"fmt"

	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

const ProgramName = "AssociatedTokenAccount"

var ProgramID = solana.SPLAssociatedTokenAccountProgramID

// Create creates the associated token account for a given wallet and
// mint, idempotent: if the account already exists the instruction is
// a no-op on-chain.
type Create struct {
	// [0] = [WRITE, SIGNER] payer
	// [1] = [WRITE] associatedTokenAccount
	// [2] = [] wallet
	// [3] = [] mint
	// [4] = [] systemProgram
	// [5] = [] tokenProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewCreateInstructionBuilder() *Create {
	return &Create{
		AccountMetaSlice: make(solana.AccountMetaSlice, 6),
	}
}

func (inst *Create) SetPayerAccount(payer solana.PublicKey) *Create {
	inst.AccountMetaSlice[0] = solana.Meta(payer).WRITE().SIGNER()
	return inst
}

func (inst *Create) SetAssociatedTokenAccount(account solana.PublicKey) *Create {
	inst.AccountMetaSlice[1] = solana.Meta(account).WRITE()
	return inst
}

func (inst *Create) SetWalletAccount(wallet solana.PublicKey) *Create {
	inst.AccountMetaSlice[2] = solana.Meta(wallet)
	return inst
}

func (inst *Create) SetMintAccount(mint solana.PublicKey) *Create {
	inst.AccountMetaSlice[3] = solana.Meta(mint)
	return inst
}

func (inst *Create) SetSystemProgramAccount(systemProgram solana.PublicKey) *Create {
	inst.AccountMetaSlice[4] = solana.Meta(systemProgram)
	return inst
}

func (inst *Create) SetTokenProgramAccount(tokenProgram solana.PublicKey) *Create {
	inst.AccountMetaSlice[5] = solana.Meta(tokenProgram)
	return inst
}

func (inst Create) Build() *Instruction {
	return &Instruction{inst}
}

func (inst Create) ValidateAndBuild() (*Instruction, error) {
	for i, name := range []string{"Payer", "AssociatedTokenAccount", "Wallet", "Mint", "SystemProgram", "TokenProgram"} {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

func (inst *Create) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("Create")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("payer", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("associatedTokenAccount", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("wallet", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("mint", inst.AccountMetaSlice[3]))
						accountsBranch.Child(ag_format.Meta("systemProgram", inst.AccountMetaSlice[4]))
						accountsBranch.Child(ag_format.Meta("tokenProgram", inst.AccountMetaSlice[5]))
					})
				})
		})
}

// Instruction wraps Create; the Associated Token Account program has
// a single instruction variant and no discriminator byte on this
// historical version of the program.
type Instruction struct {
	Create
}

func (inst *Instruction) ProgramID() solana.PublicKey {
	return ProgramID
}

func (inst *Instruction) Accounts() []*solana.AccountMeta {
	return inst.Create.AccountMetaSlice.GetAccounts()
}

func (inst *Instruction) Data() ([]byte, error) {
	return []byte{}, nil
}

// NewCreateInstruction declares a new Create instruction deriving the
// associated token account from wallet+mint.
func NewCreateInstruction(
	payer solana.PublicKey,
	associatedTokenAccount solana.PublicKey,
	wallet solana.PublicKey,
	mint solana.PublicKey,
) *Create {
	return NewCreateInstructionBuilder().
		SetPayerAccount(payer).
		SetAssociatedTokenAccount(associatedTokenAccount).
		SetWalletAccount(wallet).
		SetMintAccount(mint).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetTokenProgramAccount(solana.TokenProgramID)
}
