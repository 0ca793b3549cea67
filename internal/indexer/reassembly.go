package indexer

import "sort"

// slotBuffer buffers transactions by the slot they landed in and
// releases a slot's transactions, in arrival order, only once the
// geyser stream confirms that slot — transactions and slot
// confirmations race down the same gRPC stream in no guaranteed
// order, so buffering on slot is what makes per-slot dispatch order
// deterministic.
type slotBuffer struct {
	pending map[uint64][]RawTransaction
}

func newSlotBuffer() *slotBuffer {
	return &slotBuffer{pending: make(map[uint64][]RawTransaction)}
}

// Add appends tx to its slot's bucket.
func (b *slotBuffer) Add(tx RawTransaction) {
	b.pending[tx.Slot] = append(b.pending[tx.Slot], tx)
}

// Drain removes and returns every transaction buffered for slot, in
// the order Add received them. A slot with no buffered transactions
// returns nil.
func (b *slotBuffer) Drain(slot uint64) []RawTransaction {
	txs, ok := b.pending[slot]
	if !ok {
		return nil
	}
	delete(b.pending, slot)
	return txs
}

// DrainThrough drains every slot at or below slot, oldest first, for
// the case where a confirmed slot arrives after slots that preceded
// it were never individually reported — geyser only guarantees slots
// are non-decreasing, not that every intermediate slot gets its own
// update.
func (b *slotBuffer) DrainThrough(slot uint64) []RawTransaction {
	var due []uint64
	for s := range b.pending {
		if s <= slot {
			due = append(due, s)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })

	var out []RawTransaction
	for _, s := range due {
		out = append(out, b.pending[s]...)
		delete(b.pending, s)
	}
	return out
}
