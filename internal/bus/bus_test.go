package bus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvent struct {
	Value string
}

func (fakeEvent) EventKind() string { return "FakeEvent" }

func TestKindOf(t *testing.T) {
	kind, err := kindOf(fakeEvent{Value: "x"})
	require.NoError(t, err)
	assert.Equal(t, "FakeEvent", kind)
}

func TestKindOfRejectsUnlabeledEvents(t *testing.T) {
	_, err := kindOf(struct{ Value string }{Value: "x"})
	assert.Error(t, err)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	payload, err := json.Marshal(fakeEvent{Value: "hello"})
	require.NoError(t, err)

	envelope := Envelope{Kind: "FakeEvent", Payload: payload}
	wire, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(wire, &decoded))
	assert.Equal(t, "FakeEvent", decoded.Kind)

	var out fakeEvent
	require.NoError(t, json.Unmarshal(decoded.Payload, &out))
	assert.Equal(t, "hello", out.Value)
}
