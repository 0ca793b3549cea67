package bubblegum

import (
	"encoding/base64"
	"fmt"

	ag_binary "github.com/dfuse-io/binary"
	solana "github.com/holaplex/hub-nfts-solana-go"
)

// AccountCompressionEvent is the tagged union the spl-account-compression
// program CPI-logs through spl-noop on every leaf mutation. This
// worker only cares about the ChangeLog variant, read to recover the
// nonce (= leaf index at mint time) of a newly minted compressed NFT.
type AccountCompressionEvent struct {
	IsChangeLog bool
	ChangeLog   *ChangeLogEvent
}

// ChangeLogEvent mirrors spl_account_compression::state::ChangeLogEvent::V1.
type ChangeLogEvent struct {
	ID    solana.PublicKey
	Path  []PathNode
	Index uint32
}

type PathNode struct {
	Node  [32]byte
	Index uint32
}

const (
	changeLogEventTag        uint8 = 1
	applicationDataEventTag   uint8 = 0
)

// DecodeAccountCompressionEvent parses a single base64-encoded noop
// CPI log entry. Non-ChangeLog events (ApplicationData) decode with
// IsChangeLog=false and are ignored by callers.
func DecodeAccountCompressionEvent(base64Data string) (*AccountCompressionEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return nil, fmt.Errorf("decode noop log base64: %w", err)
	}
	return DecodeAccountCompressionEventBytes(raw)
}

// DecodeAccountCompressionEventBytes parses a single already-decoded
// noop CPI log entry, for callers reading instruction data off a
// getTransaction inner-instruction (base58, not base64, in that
// response).
func DecodeAccountCompressionEventBytes(raw []byte) (*AccountCompressionEvent, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("empty noop log entry")
	}

	decoder := ag_binary.NewBinDecoder(raw)

	switch raw[0] {
	case changeLogEventTag:
		// Skip the outer enum discriminant already peeked above.
		if _, err := decoder.ReadUint8(); err != nil {
			return nil, err
		}
		// Inner version enum: only V1 (tag 0) exists in production.
		if _, err := decoder.ReadUint8(); err != nil {
			return nil, err
		}
		var id solana.PublicKey
		idBytes, err := decoder.ReadNBytes(32)
		if err != nil {
			return nil, fmt.Errorf("read changelog id: %w", err)
		}
		copy(id[:], idBytes)

		pathLen, err := decoder.ReadUint32(ag_binary.LE)
		if err != nil {
			return nil, fmt.Errorf("read changelog path length: %w", err)
		}
		path := make([]PathNode, 0, pathLen)
		for i := uint32(0); i < pathLen; i++ {
			nodeBytes, err := decoder.ReadNBytes(32)
			if err != nil {
				return nil, fmt.Errorf("read changelog path node: %w", err)
			}
			var node [32]byte
			copy(node[:], nodeBytes)
			idx, err := decoder.ReadUint32(ag_binary.LE)
			if err != nil {
				return nil, fmt.Errorf("read changelog path index: %w", err)
			}
			path = append(path, PathNode{Node: node, Index: idx})
		}
		index, err := decoder.ReadUint32(ag_binary.LE)
		if err != nil {
			return nil, fmt.Errorf("read changelog index: %w", err)
		}

		return &AccountCompressionEvent{
			IsChangeLog: true,
			ChangeLog: &ChangeLogEvent{
				ID:    id,
				Path:  path,
				Index: index,
			},
		}, nil
	case applicationDataEventTag:
		return &AccountCompressionEvent{IsChangeLog: false}, nil
	default:
		return nil, fmt.Errorf("unknown account compression event tag: %d", raw[0])
	}
}

// Nonce returns the leaf's nonce, equal to the changelog index at the
// time the leaf was appended; mint-time index equals nonce.
func (e *ChangeLogEvent) Nonce() uint64 {
	return uint64(e.Index)
}
