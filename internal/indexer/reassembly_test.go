package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotBufferDrain(t *testing.T) {
	b := newSlotBuffer()
	tx1 := RawTransaction{Slot: 5}
	tx2 := RawTransaction{Slot: 5}
	b.Add(tx1)
	b.Add(tx2)

	assert.Nil(t, b.Drain(6))

	drained := b.Drain(5)
	assert.Equal(t, []RawTransaction{tx1, tx2}, drained)
	assert.Nil(t, b.Drain(5), "drained slot buckets are removed")
}

func TestSlotBufferDrainThrough(t *testing.T) {
	b := newSlotBuffer()
	tx3 := RawTransaction{Slot: 3}
	tx4 := RawTransaction{Slot: 4}
	tx6 := RawTransaction{Slot: 6}
	b.Add(tx3)
	b.Add(tx4)
	b.Add(tx6)

	out := b.DrainThrough(4)
	assert.ElementsMatch(t, []RawTransaction{tx3, tx4}, out)
	assert.Nil(t, b.Drain(3))
	assert.Nil(t, b.Drain(4))
	assert.NotNil(t, b.Drain(6), "slot above the watermark stays buffered")
}
