package indexer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/programs/token"
)

func transferData(amount uint64) []byte {
	buf := make([]byte, 9)
	buf[0] = uint8(token.Instruction_Transfer)
	binary.LittleEndian.PutUint64(buf[1:], amount)
	return buf
}

func transferCheckedData(amount uint64, decimals uint8) []byte {
	buf := make([]byte, 10)
	buf[0] = uint8(token.Instruction_TransferChecked)
	binary.LittleEndian.PutUint64(buf[1:9], amount)
	buf[9] = decimals
	return buf
}

func pubkeyFilledWith(b byte) solana.PublicKey {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = b
	}
	return solana.PublicKeyFromBytes(raw)
}

func TestDecodeTokenTransfer(t *testing.T) {
	source := pubkeyFilledWith(1)
	destination := pubkeyFilledWith(2)
	owner := pubkeyFilledWith(3)
	mint := pubkeyFilledWith(4)

	t.Run("transfer of one unit is an ownership change", func(t *testing.T) {
		change, ok, err := decodeTokenTransfer(RawInstruction{
			Data:     transferData(1),
			Accounts: []solana.PublicKey{source, destination, owner},
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, source, change.Source)
		assert.Equal(t, destination, change.Destination)
	})

	t.Run("transfer of more than one unit is ignored", func(t *testing.T) {
		_, ok, err := decodeTokenTransfer(RawInstruction{
			Data:     transferData(5),
			Accounts: []solana.PublicKey{source, destination, owner},
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("transfer checked of one unit reads destination at index 2", func(t *testing.T) {
		change, ok, err := decodeTokenTransfer(RawInstruction{
			Data:     transferCheckedData(1, 0),
			Accounts: []solana.PublicKey{source, mint, destination, owner},
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, source, change.Source)
		assert.Equal(t, destination, change.Destination)
	})

	t.Run("unrelated instruction is ignored, not an error", func(t *testing.T) {
		_, ok, err := decodeTokenTransfer(RawInstruction{
			Data:     []byte{uint8(token.Instruction_MintTo), 1, 2, 3},
			Accounts: []solana.PublicKey{source, destination, owner},
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty data is ignored", func(t *testing.T) {
		_, ok, err := decodeTokenTransfer(RawInstruction{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("truncated transfer is an error", func(t *testing.T) {
		_, _, err := decodeTokenTransfer(RawInstruction{
			Data:     []byte{uint8(token.Instruction_Transfer), 1, 2},
			Accounts: []solana.PublicKey{source, destination},
		})
		assert.Error(t, err)
	})
}
