package token

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solana "github.com/holaplex/hub-nfts-solana-go"
)

func pubkeyFilledWith(b byte) solana.PublicKey {
	var raw [32]byte
	for i := range raw {
		raw[i] = b
	}
	return solana.PublicKeyFromBytes(raw[:])
}

func TestTransferCheckedValidateRequiresEveryField(t *testing.T) {
	inst := NewTransferCheckedInstructionBuilder()
	assert.Error(t, inst.Validate())

	inst.SetSourceAccount(pubkeyFilledWith(1)).
		SetMintAccount(pubkeyFilledWith(2)).
		SetDestinationAccount(pubkeyFilledWith(3)).
		SetOwnerAccount(pubkeyFilledWith(4))
	assert.Error(t, inst.Validate(), "still missing Amount/Decimals")

	inst.SetAmount(1).SetDecimals(0)
	assert.NoError(t, inst.Validate())
}

func TestTransferCheckedEncodesDiscriminatorAmountAndDecimals(t *testing.T) {
	built, err := NewTransferCheckedInstructionBuilder().
		SetAmount(1).
		SetDecimals(9).
		SetSourceAccount(pubkeyFilledWith(1)).
		SetMintAccount(pubkeyFilledWith(2)).
		SetDestinationAccount(pubkeyFilledWith(3)).
		SetOwnerAccount(pubkeyFilledWith(4)).
		ValidateAndBuild()
	require.NoError(t, err)

	data, err := built.Data()
	require.NoError(t, err)
	require.Len(t, data, 10)

	assert.Equal(t, uint8(Instruction_TransferChecked), data[0])
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(data[1:9]))
	assert.Equal(t, uint8(9), data[9])
}

func TestTransferCheckedAccountOrderAndFlags(t *testing.T) {
	inst := NewTransferCheckedInstructionBuilder().
		SetSourceAccount(pubkeyFilledWith(1)).
		SetMintAccount(pubkeyFilledWith(2)).
		SetDestinationAccount(pubkeyFilledWith(3)).
		SetOwnerAccount(pubkeyFilledWith(4)).
		SetAmount(1).
		SetDecimals(0)

	accounts := inst.AccountMetaSlice
	require.Len(t, accounts, 4)
	assert.True(t, accounts[0].IsWritable)
	assert.Equal(t, pubkeyFilledWith(1), accounts[0].PublicKey)
	assert.Equal(t, pubkeyFilledWith(2), accounts[1].PublicKey)
	assert.True(t, accounts[2].IsWritable)
	assert.Equal(t, pubkeyFilledWith(3), accounts[2].PublicKey)
	assert.True(t, accounts[3].IsSigner)
	assert.Equal(t, pubkeyFilledWith(4), accounts[3].PublicKey)
}
