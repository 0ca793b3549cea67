package indexer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/programs/bubblegum"
)

func transferArgsData(nonce uint64) []byte {
	buf := make([]byte, 1+transferArgsLen)
	buf[0] = bubblegum.Instruction_Transfer
	// root[32], dataHash[32], creatorHash[32] all left zero
	nonceOffset := 1 + 32 + 32 + 32
	binary.LittleEndian.PutUint64(buf[nonceOffset:nonceOffset+8], nonce)
	// index[4] trailing, left zero
	return buf
}

func TestDecodeBubblegumTransfer(t *testing.T) {
	treeAuthority := pubkeyFilledWith(10)
	sender := pubkeyFilledWith(11)
	delegate := pubkeyFilledWith(12)
	recipient := pubkeyFilledWith(13)
	merkleTree := pubkeyFilledWith(14)

	t.Run("transfer decodes nonce and owner change", func(t *testing.T) {
		change, ok, err := decodeBubblegumTransfer(RawInstruction{
			Data: transferArgsData(42),
			Accounts: []solana.PublicKey{
				treeAuthority, sender, delegate, recipient, merkleTree,
			},
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, uint64(42), change.Nonce)
		assert.Equal(t, sender, change.Sender)
		assert.Equal(t, recipient, change.Recipient)
		assert.Equal(t, merkleTree, change.MerkleTree)
	})

	t.Run("non-transfer instruction is ignored", func(t *testing.T) {
		_, ok, err := decodeBubblegumTransfer(RawInstruction{
			Data: []byte{bubblegum.Instruction_MintToCollectionV1},
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("truncated transfer is an error", func(t *testing.T) {
		_, _, err := decodeBubblegumTransfer(RawInstruction{
			Data:     []byte{bubblegum.Instruction_Transfer, 1, 2, 3},
			Accounts: []solana.PublicKey{treeAuthority, sender, delegate, recipient, merkleTree},
		})
		assert.Error(t, err)
	})
}
