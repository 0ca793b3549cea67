package events

import (
	"encoding/json"
	"fmt"
)

// InboundMessage is the wire shape of every intent on the inbound
// topic: the correlation key alongside a kind-specific data object,
// decoded against Kind's payload type once the caller has read Kind
// out of the bus envelope.
type InboundMessage struct {
	Key  Key             `json:"key"`
	Data json.RawMessage `json:"data"`
}

// DecodeIntent decodes raw (an InboundMessage) into an Intent, picking
// the concrete payload type from kind the same way Processor.Handle's
// dispatch switch groups kinds by backend.
func DecodeIntent(kind Kind, raw []byte) (Intent, error) {
	var msg InboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Intent{}, fmt.Errorf("decode inbound message: %w", err)
	}

	payload, err := decodePayload(kind, msg.Data)
	if err != nil {
		return Intent{}, err
	}

	return Intent{Key: msg.Key, Kind: kind, Payload: payload}, nil
}

func decodePayload(kind Kind, data json.RawMessage) (interface{}, error) {
	switch kind {
	case KindCreateCollection, KindCreateEditionDrop, KindCreateOpenDrop,
		KindRetryCreateCollection, KindRetryCreateEditionDrop, KindRetryCreateOpenDrop:
		var p CreatePayload
		return p, unmarshal(data, &p)

	case KindMintToCollection, KindMintOpenDrop, KindRetryMintToCollection, KindRetryMintOpenDrop:
		var p MintPayload
		return p, unmarshal(data, &p)

	case KindMintEditionDrop, KindRetryMintEditionDrop:
		var p EditionPayload
		return p, unmarshal(data, &p)

	case KindUpdateCollection, KindUpdateEditionDrop, KindUpdateOpenDrop:
		var p UpdatePayload
		return p, unmarshal(data, &p)

	case KindUpdateCollectionMint:
		var p UpdateCollectionMintPayload
		return p, unmarshal(data, &p)

	case KindRetryUpdateCollectionMint:
		var p RetryUpdateCollectionMintPayload
		return p, unmarshal(data, &p)

	case KindSwitchMintCollection:
		var p SwitchPayload
		return p, unmarshal(data, &p)

	case KindTransferAsset:
		var p TransferPayload
		return p, unmarshal(data, &p)

	default:
		return nil, fmt.Errorf("unknown intent kind %q", kind)
	}
}

func unmarshal(data json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode intent payload: %w", err)
	}
	return nil
}

// SignedMessage is the wire shape of a treasury co-signing result: the
// same correlation key and kind the original SigningRequested carried,
// alongside the signed (or rejected) transaction.
type SignedMessage struct {
	Key    Key                     `json:"key"`
	Kind   Kind                    `json:"kind"`
	Result SolanaTransactionResult `json:"result"`
}

// DecodeSignedMessage decodes a treasury response off the signed
// topic.
func DecodeSignedMessage(raw []byte) (SignedMessage, error) {
	var msg SignedMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return SignedMessage{}, fmt.Errorf("decode signed message: %w", err)
	}
	return msg, nil
}
