package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIntentMint(t *testing.T) {
	raw := []byte(`{
		"key": {"ID": "11111111-1111-1111-1111-111111111111", "UserID": "u1", "ProjectID": "p1"},
		"data": {"CollectionID": "c1", "Compressed": true}
	}`)

	intent, err := DecodeIntent(KindMintToCollection, raw)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", intent.Key.ID)
	assert.Equal(t, KindMintToCollection, intent.Kind)

	payload, ok := intent.Payload.(MintPayload)
	require.True(t, ok)
	assert.Equal(t, "c1", payload.CollectionID)
	assert.True(t, payload.Compressed)
}

func TestDecodeIntentUnknownKind(t *testing.T) {
	_, err := DecodeIntent(Kind("NotARealKind"), []byte(`{"key":{},"data":{}}`))
	assert.Error(t, err)
}

func TestDecodeSignedMessage(t *testing.T) {
	raw := []byte(`{
		"key": {"ID": "id1"},
		"kind": "CreateCollection",
		"result": {"Status": 1, "SerializedMessage": null, "SignedMessageSignatures": ["sig1"]}
	}`)

	msg, err := DecodeSignedMessage(raw)
	require.NoError(t, err)
	assert.Equal(t, "id1", msg.Key.ID)
	assert.Equal(t, KindCreateCollection, msg.Kind)
	assert.Equal(t, TransactionOk, msg.Result.Status)
	assert.Equal(t, []string{"sig1"}, msg.Result.SignedMessageSignatures)
}
