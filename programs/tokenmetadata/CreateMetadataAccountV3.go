package tokenmetadata

import (
	"bytes"
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	ag_treeout "github.com/gagliardetto/treeout"
	solana "github.com/holaplex/hub-nfts-solana-go"
	ag_format "github.com/holaplex/hub-nfts-solana-go/text/format"
)

// Instruction is a thin envelope around a single-byte instruction
// discriminator followed by the borsh-encoded instruction body, the
// wire shape every Token Metadata instruction shares.
type Instruction struct {
	discriminator uint8
	body          ag_binary.EncoderDecoder
	accounts      solana.AccountMetaSlice
}

func (inst *Instruction) ProgramID() solana.PublicKey {
	return ProgramID
}

func (inst *Instruction) Accounts() []*solana.AccountMeta {
	return inst.accounts.GetAccounts()
}

func (inst *Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := buf.WriteByte(inst.discriminator); err != nil {
		return nil, err
	}
	encoder := ag_binary.NewBinEncoder(buf)
	if err := inst.body.MarshalWithEncoder(encoder); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

// CreateMetadataAccountV3 creates the metadata account for a freshly
// minted NFT mint.
type CreateMetadataAccountV3 struct {
	Data                   DataV2
	IsMutable              bool
	CollectionDetails      *CollectionDetails

	// [0] = [WRITE] metadata
	// [1] = [] mint
	// [2] = [SIGNER] mintAuthority
	// [3] = [WRITE, SIGNER] payer
	// [4] = [SIGNER] updateAuthority
	// [5] = [] systemProgram
	// [6] = [] rentSysvar (optional, may be absent)
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewCreateMetadataAccountV3InstructionBuilder() *CreateMetadataAccountV3 {
	return &CreateMetadataAccountV3{
		AccountMetaSlice: make(solana.AccountMetaSlice, 6),
	}
}

func (inst *CreateMetadataAccountV3) SetData(data DataV2) *CreateMetadataAccountV3 {
	inst.Data = data
	return inst
}

func (inst *CreateMetadataAccountV3) SetIsMutable(isMutable bool) *CreateMetadataAccountV3 {
	inst.IsMutable = isMutable
	return inst
}

func (inst *CreateMetadataAccountV3) SetCollectionDetails(details *CollectionDetails) *CreateMetadataAccountV3 {
	inst.CollectionDetails = details
	return inst
}

func (inst *CreateMetadataAccountV3) SetMetadataAccount(metadata solana.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[0] = solana.Meta(metadata).WRITE()
	return inst
}

func (inst *CreateMetadataAccountV3) SetMintAccount(mint solana.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[1] = solana.Meta(mint)
	return inst
}

func (inst *CreateMetadataAccountV3) SetMintAuthorityAccount(authority solana.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[2] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *CreateMetadataAccountV3) SetPayerAccount(payer solana.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[3] = solana.Meta(payer).WRITE().SIGNER()
	return inst
}

func (inst *CreateMetadataAccountV3) SetUpdateAuthorityAccount(authority solana.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[4] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *CreateMetadataAccountV3) SetSystemProgramAccount(systemProgram solana.PublicKey) *CreateMetadataAccountV3 {
	inst.AccountMetaSlice[5] = solana.Meta(systemProgram)
	return inst
}

func (inst CreateMetadataAccountV3) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = inst.Data.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	if err = encoder.WriteBool(inst.IsMutable); err != nil {
		return err
	}
	if inst.CollectionDetails != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		return inst.CollectionDetails.MarshalWithEncoder(encoder)
	}
	return encoder.WriteBool(false)
}

func (inst CreateMetadataAccountV3) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_CreateMetadataAccountV3,
		body:          inst,
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst CreateMetadataAccountV3) ValidateAndBuild() (*Instruction, error) {
	for i, name := range []string{"Metadata", "Mint", "MintAuthority", "Payer", "UpdateAuthority", "SystemProgram"} {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	return inst.Build(), nil
}

func (inst *CreateMetadataAccountV3) EncodeToTree(parent ag_treeout.Branches) {
	parent.Child(ag_format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch ag_treeout.Branches) {
			programBranch.Child(ag_format.Instruction("CreateMetadataAccountV3")).
				ParentFunc(func(instructionBranch ag_treeout.Branches) {
					instructionBranch.Child("Params").ParentFunc(func(paramsBranch ag_treeout.Branches) {
						paramsBranch.Child(ag_format.Param("Name", inst.Data.Name))
						paramsBranch.Child(ag_format.Param("Symbol", inst.Data.Symbol))
						paramsBranch.Child(ag_format.Param("URI", inst.Data.URI))
						paramsBranch.Child(ag_format.Param("IsMutable", inst.IsMutable))
					})
					instructionBranch.Child("Accounts").ParentFunc(func(accountsBranch ag_treeout.Branches) {
						accountsBranch.Child(ag_format.Meta("metadata", inst.AccountMetaSlice[0]))
						accountsBranch.Child(ag_format.Meta("mint", inst.AccountMetaSlice[1]))
						accountsBranch.Child(ag_format.Meta("mintAuthority", inst.AccountMetaSlice[2]))
						accountsBranch.Child(ag_format.Meta("payer", inst.AccountMetaSlice[3]))
						accountsBranch.Child(ag_format.Meta("updateAuthority", inst.AccountMetaSlice[4]))
						accountsBranch.Child(ag_format.Meta("systemProgram", inst.AccountMetaSlice[5]))
					})
				})
		})
}

// NewCreateMetadataAccountV3Instruction declares a new
// CreateMetadataAccountV3 instruction for an always-mutable,
// non-collection-sized metadata account (the shape this worker
// creates for individual NFTs; SetCollectionDetails is used only when
// creating a collection NFT's own metadata).
func NewCreateMetadataAccountV3Instruction(
	data DataV2,
	metadata solana.PublicKey,
	mint solana.PublicKey,
	mintAuthority solana.PublicKey,
	payer solana.PublicKey,
	updateAuthority solana.PublicKey,
) *CreateMetadataAccountV3 {
	return NewCreateMetadataAccountV3InstructionBuilder().
		SetData(data).
		SetIsMutable(true).
		SetMetadataAccount(metadata).
		SetMintAccount(mint).
		SetMintAuthorityAccount(mintAuthority).
		SetPayerAccount(payer).
		SetUpdateAuthorityAccount(updateAuthority).
		SetSystemProgramAccount(solana.SystemProgramID)
}
