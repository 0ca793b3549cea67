// Package bubblegum wraps the Metaplex Bubblegum program's
// compressed-NFT instructions (mint into a collection, transfer) and
// the account-compression changelog event this worker decodes to
// recover a newly minted leaf's nonce.
package bubblegum

import (
	"bytes"
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	solana "github.com/holaplex/hub-nfts-solana-go"
)

const ProgramName = "Bubblegum"

var ProgramID = solana.BubblegumProgramID

const (
	Instruction_MintToCollectionV1 uint8 = 9
	Instruction_Transfer           uint8 = 6
)

// Instruction is a thin envelope around a single-byte discriminator
// followed by the borsh-encoded instruction body, the wire shape
// Bubblegum's Anchor-free legacy dispatch uses.
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

// MetadataArgs is the on-chain representation of a compressed NFT's
// metadata, hashed into the leaf rather than stored in an account.
type MetadataArgs struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	PrimarySaleHappened  bool
	IsMutable            bool
	EditionNonce         *uint8
	Creators             []Creator
	Collection           *Collection
}

type Creator struct {
	Address  solana.PublicKey
	Verified bool
	Share    uint8
}

type Collection struct {
	Verified bool
	Key      solana.PublicKey
}

func (obj MetadataArgs) MarshalWithEncoder(encoder *ag_binary.Encoder) (err error) {
	if err = encoder.WriteRustString(obj.Name); err != nil {
		return err
	}
	if err = encoder.WriteRustString(obj.Symbol); err != nil {
		return err
	}
	if err = encoder.WriteRustString(obj.URI); err != nil {
		return err
	}
	if err = encoder.Encode(obj.SellerFeeBasisPoints); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.PrimarySaleHappened); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.IsMutable); err != nil {
		return err
	}
	if obj.EditionNonce != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		if err = encoder.WriteUint8(*obj.EditionNonce); err != nil {
			return err
		}
	} else if err = encoder.WriteBool(false); err != nil {
		return err
	}
	// TokenStandard::NonFungible, fixed for every mint this worker does.
	if err = encoder.WriteBool(true); err != nil {
		return err
	}
	if err = encoder.WriteUint8(0); err != nil {
		return err
	}
	if err = encoder.Encode(uint32(len(obj.Creators))); err != nil {
		return err
	}
	for _, c := range obj.Creators {
		if err = encoder.Encode(c.Address); err != nil {
			return err
		}
		if err = encoder.WriteBool(c.Verified); err != nil {
			return err
		}
		if err = encoder.WriteUint8(c.Share); err != nil {
			return err
		}
	}
	if obj.Collection != nil {
		if err = encoder.WriteBool(true); err != nil {
			return err
		}
		if err = encoder.WriteBool(obj.Collection.Verified); err != nil {
			return err
		}
		if err = encoder.Encode(obj.Collection.Key); err != nil {
			return err
		}
	} else if err = encoder.WriteBool(false); err != nil {
		return err
	}
	// Uses: always absent.
	if err = encoder.WriteBool(false); err != nil {
		return err
	}
	return nil
}
