// Package events implements the event processor: the two-phase
// intent → assemble → sign → submit lifecycle, dispatched across the
// assembly backends by event kind.
package events

import "strings"

// Kind enumerates every intent/outbound event kind the processor
// handles, named operation+variant (Create, Mint, Update, ... crossed
// with Collection, Drop, EditionDrop, OpenDrop where the backend or
// success shape actually varies by variant).
type Kind string

const (
	KindCreateCollection  Kind = "CreateCollection"
	KindCreateEditionDrop Kind = "CreateEditionDrop"
	KindCreateOpenDrop    Kind = "CreateOpenDrop"

	KindRetryCreateCollection  Kind = "RetryCreateCollection"
	KindRetryCreateEditionDrop Kind = "RetryCreateEditionDrop"
	KindRetryCreateOpenDrop    Kind = "RetryCreateOpenDrop"

	KindMintToCollection Kind = "MintToCollection"
	KindMintOpenDrop     Kind = "MintOpenDrop"
	KindMintEditionDrop  Kind = "MintEditionDrop"

	KindRetryMintToCollection Kind = "RetryMintToCollection"
	KindRetryMintOpenDrop     Kind = "RetryMintOpenDrop"
	KindRetryMintEditionDrop  Kind = "RetryMintEditionDrop"

	KindUpdateCollection  Kind = "UpdateCollection"
	KindUpdateEditionDrop Kind = "UpdateEditionDrop"
	KindUpdateOpenDrop    Kind = "UpdateOpenDrop"

	KindUpdateCollectionMint      Kind = "UpdateCollectionMint"
	KindRetryUpdateCollectionMint Kind = "RetryUpdateCollectionMint"

	KindSwitchMintCollection Kind = "SwitchMintCollection"

	KindTransferAsset Kind = "TransferAsset"
)

// IsRetry reports whether a kind names a retry of a prior attempt.
func (k Kind) IsRetry() bool {
	return strings.HasPrefix(string(k), "Retry")
}

// successShape classifies what a Submitted event carries for this
// kind, per the kind→success-contents table.
type successShape int

const (
	successShapeCreate successShape = iota
	successShapeMint
	successShapeSignatureOnly
)

var successShapes = map[Kind]successShape{
	KindCreateCollection:       successShapeCreate,
	KindCreateEditionDrop:      successShapeCreate,
	KindCreateOpenDrop:         successShapeCreate,
	KindRetryCreateCollection:  successShapeCreate,
	KindRetryCreateEditionDrop: successShapeCreate,
	KindRetryCreateOpenDrop:    successShapeCreate,

	KindMintToCollection:      successShapeMint,
	KindMintOpenDrop:          successShapeMint,
	KindMintEditionDrop:       successShapeMint,
	KindRetryMintToCollection: successShapeMint,
	KindRetryMintOpenDrop:     successShapeMint,
	KindRetryMintEditionDrop:  successShapeMint,

	KindUpdateCollection:          successShapeSignatureOnly,
	KindUpdateEditionDrop:         successShapeSignatureOnly,
	KindUpdateOpenDrop:            successShapeSignatureOnly,
	KindUpdateCollectionMint:      successShapeSignatureOnly,
	KindRetryUpdateCollectionMint: successShapeSignatureOnly,
	KindSwitchMintCollection:      successShapeSignatureOnly,
	KindTransferAsset:             successShapeSignatureOnly,
}
