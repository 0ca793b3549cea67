// Package tokenmetadata wraps the Metaplex Token Metadata program
// instructions this worker needs to create, update, and verify
// collection membership for uncompressed NFTs.
package tokenmetadata

import (
	"encoding/binary"

	ag_binary "github.com/dfuse-io/binary"
	solana "github.com/holaplex/hub-nfts-solana-go"
)

const ProgramName = "TokenMetadata"

var ProgramID = solana.TokenMetadataProgramID

const (
	Instruction_CreateMetadataAccountV3 uint8 = 33
	Instruction_UpdateMetadataAccountV2 uint8 = 15
	Instruction_CreateMasterEditionV3   uint8 = 17
	Instruction_MintNewEditionFromMasterEditionViaToken uint8 = 13
	Instruction_VerifySizedCollectionItem   uint8 = 34
	Instruction_UnverifySizedCollectionItem uint8 = 35
	Instruction_SetAndVerifySizedCollectionItem uint8 = 36
)

// Creator is a single royalty payee attached to a metadata account.
type Creator struct {
	Address  solana.PublicKey
	Verified bool
	Share    uint8
}

func (obj Creator) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.Encode(obj.Address); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.Verified); err != nil {
		return err
	}
	return encoder.WriteUint8(obj.Share)
}

// Collection references the parent collection NFT's mint, and
// whether membership has been verified by the collection authority.
type Collection struct {
	Verified bool
	Key      solana.PublicKey
}

func (obj Collection) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteBool(obj.Verified); err != nil {
		return err
	}
	return encoder.Encode(obj.Key)
}

// CollectionDetails marks a metadata account as itself a collection,
// sized variant only (the only one in production use).
type CollectionDetails struct {
	Size uint64
}

func (obj *CollectionDetails) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteUint8(0); err != nil { // V1 variant tag
		return err
	}
	return encoder.Encode(obj.Size)
}

// Uses bounds how many times a use-consuming NFT may be used; this
// worker never sets it (always nil) but the field must still encode.
type Uses struct {
	UseMethod uint8
	Remaining uint64
	Total     uint64
}

// DataV2 is the core metadata payload stored in a metadata account.
type DataV2 struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator
	Collection           *Collection
	Uses                 *Uses
}

func (obj DataV2) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteRustString(obj.Name); err != nil {
		return err
	}
	if err = encoder.WriteRustString(obj.Symbol); err != nil {
		return err
	}
	if err = encoder.WriteRustString(obj.URI); err != nil {
		return err
	}
	if err = encoder.WriteUint16(obj.SellerFeeBasisPoints, binary.LittleEndian); err != nil {
		return err
	}
	if obj.Creators != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		if err = encoder.WriteUint32(uint32(len(*obj.Creators)), binary.LittleEndian); err != nil {
			return err
		}
		for _, c := range *obj.Creators {
			if err = c.MarshalWithEncoder(encoder); err != nil {
				return err
			}
		}
	} else if err = encoder.WriteBool(false); err != nil {
		return err
	}
	if obj.Collection != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		if err = obj.Collection.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	} else if err = encoder.WriteBool(false); err != nil {
		return err
	}
	return encoder.WriteBool(false) // Uses, always absent for this worker
}
