package bubblegum

import (
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	solana "github.com/holaplex/hub-nfts-solana-go"
)

// transferArgs is the borsh body of Transfer: the leaf's merkle proof
// summary, required to prove the caller's copy of the tree state
// matches what's on-chain before the leaf is replaced.
type transferArgs struct {
	Root       [32]byte
	DataHash   [32]byte
	CreatorHash [32]byte
	Nonce      uint64
	Index      uint32
}

func (obj transferArgs) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteBytes(obj.Root[:], false); err != nil {
		return err
	}
	if err = encoder.WriteBytes(obj.DataHash[:], false); err != nil {
		return err
	}
	if err = encoder.WriteBytes(obj.CreatorHash[:], false); err != nil {
		return err
	}
	if err = encoder.Encode(obj.Nonce); err != nil {
		return err
	}
	return encoder.Encode(obj.Index)
}

// Transfer reassigns ownership of a compressed NFT leaf. The fixed
// accounts are followed by the merkle proof path, appended as
// read-only accounts.
//
// [0] = [WRITE] treeAuthority
// [1] = [] leafOwner (current, signer)
// [2] = [] leafDelegate
// [3] = [] newLeafOwner
// [4] = [WRITE] merkleTree
// [5] = [] logWrapper
// [6] = [] compressionProgram
// [7] = [] systemProgram
// [8..] = proof path nodes, read-only, non-signer
type Transfer struct {
	Args transferArgs

	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

func NewTransferInstructionBuilder(proofLength int) *Transfer {
	return &Transfer{
		AccountMetaSlice: make(solana.AccountMetaSlice, 8+proofLength),
	}
}

func (inst *Transfer) SetArgs(root, dataHash, creatorHash [32]byte, nonce uint64, index uint32) *Transfer {
	inst.Args = transferArgs{Root: root, DataHash: dataHash, CreatorHash: creatorHash, Nonce: nonce, Index: index}
	return inst
}

func (inst *Transfer) SetTreeAuthorityAccount(v solana.PublicKey) *Transfer {
	inst.AccountMetaSlice[0] = solana.Meta(v).WRITE()
	return inst
}
func (inst *Transfer) SetLeafOwnerAccount(v solana.PublicKey, signer bool) *Transfer {
	meta := solana.Meta(v)
	if signer {
		meta.SIGNER()
	}
	inst.AccountMetaSlice[1] = meta
	return inst
}
func (inst *Transfer) SetLeafDelegateAccount(v solana.PublicKey, signer bool) *Transfer {
	meta := solana.Meta(v)
	if signer {
		meta.SIGNER()
	}
	inst.AccountMetaSlice[2] = meta
	return inst
}
func (inst *Transfer) SetNewLeafOwnerAccount(v solana.PublicKey) *Transfer {
	inst.AccountMetaSlice[3] = solana.Meta(v)
	return inst
}
func (inst *Transfer) SetMerkleTreeAccount(v solana.PublicKey) *Transfer {
	inst.AccountMetaSlice[4] = solana.Meta(v).WRITE()
	return inst
}
func (inst *Transfer) SetLogWrapperAccount(v solana.PublicKey) *Transfer {
	inst.AccountMetaSlice[5] = solana.Meta(v)
	return inst
}
func (inst *Transfer) SetCompressionProgramAccount(v solana.PublicKey) *Transfer {
	inst.AccountMetaSlice[6] = solana.Meta(v)
	return inst
}
func (inst *Transfer) SetSystemProgramAccount(v solana.PublicKey) *Transfer {
	inst.AccountMetaSlice[7] = solana.Meta(v)
	return inst
}

// SetProofPath appends the merkle proof nodes, in order, as read-only
// accounts following the fixed account list.
func (inst *Transfer) SetProofPath(proof []solana.PublicKey) *Transfer {
	for i, node := range proof {
		inst.AccountMetaSlice[8+i] = solana.Meta(node)
	}
	return inst
}

func (inst Transfer) Build() *Instruction {
	return &Instruction{
		discriminator: Instruction_Transfer,
		body:          inst.Args,
		accounts:      inst.AccountMetaSlice,
	}
}

func (inst Transfer) ValidateAndBuild() (*Instruction, error) {
	names := []string{
		"TreeAuthority", "LeafOwner", "LeafDelegate", "NewLeafOwner",
		"MerkleTree", "LogWrapper", "CompressionProgram", "SystemProgram",
	}
	for i, name := range names {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.%s is not set", name)
		}
	}
	for i := 8; i < len(inst.AccountMetaSlice); i++ {
		if inst.AccountMetaSlice[i] == nil {
			return nil, fmt.Errorf("accounts.ProofPath[%d] is not set", i-8)
		}
	}
	return inst.Build(), nil
}

// NewTransferInstruction declares a leaf-ownership transfer, wired to
// the well-known compression/noop program IDs.
func NewTransferInstruction(
	root, dataHash, creatorHash [32]byte,
	nonce uint64,
	index uint32,
	treeAuthority, leafOwner, leafDelegate, newLeafOwner, merkleTree solana.PublicKey,
	leafOwnerIsSigner bool,
	proof []solana.PublicKey,
) *Transfer {
	return NewTransferInstructionBuilder(len(proof)).
		SetArgs(root, dataHash, creatorHash, nonce, index).
		SetTreeAuthorityAccount(treeAuthority).
		SetLeafOwnerAccount(leafOwner, leafOwnerIsSigner).
		SetLeafDelegateAccount(leafDelegate, !leafOwnerIsSigner).
		SetNewLeafOwnerAccount(newLeafOwner).
		SetMerkleTreeAccount(merkleTree).
		SetLogWrapperAccount(solana.SPLNoopProgramID).
		SetCompressionProgramAccount(solana.SPLAccountCompressionProgramID).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetProofPath(proof)
}
