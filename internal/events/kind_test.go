package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindIsRetry(t *testing.T) {
	assert.True(t, KindRetryCreateCollection.IsRetry())
	assert.True(t, KindRetryMintToCollection.IsRetry())
	assert.False(t, KindCreateCollection.IsRetry())
	assert.False(t, KindTransferAsset.IsRetry())
}

func TestSuccessShapesCoverEveryKind(t *testing.T) {
	allKinds := []Kind{
		KindCreateCollection, KindCreateEditionDrop, KindCreateOpenDrop,
		KindRetryCreateCollection, KindRetryCreateEditionDrop, KindRetryCreateOpenDrop,
		KindMintToCollection, KindMintOpenDrop, KindMintEditionDrop,
		KindRetryMintToCollection, KindRetryMintOpenDrop, KindRetryMintEditionDrop,
		KindUpdateCollection, KindUpdateEditionDrop, KindUpdateOpenDrop,
		KindUpdateCollectionMint, KindRetryUpdateCollectionMint,
		KindSwitchMintCollection, KindTransferAsset,
	}

	for _, k := range allKinds {
		_, ok := successShapes[k]
		assert.True(t, ok, "missing success shape for kind %q", k)
	}
}

func TestMintKindsHaveMintSuccessShape(t *testing.T) {
	for _, k := range []Kind{KindMintToCollection, KindMintOpenDrop, KindMintEditionDrop,
		KindRetryMintToCollection, KindRetryMintOpenDrop, KindRetryMintEditionDrop} {
		assert.Equal(t, successShapeMint, successShapes[k])
	}
}
