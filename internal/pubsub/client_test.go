package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submission struct {
	Kind    string   `msgpack:"kind"`
	Winners []string `msgpack:"winners"`
}

func TestEncodeDecode(t *testing.T) {
	data, err := Encode(submission{Kind: "duel", Winners: []string{"alice"}})
	require.NoError(t, err)

	var got submission
	require.NoError(t, Decode(data, &got))
	assert.Equal(t, "duel", got.Kind)
	assert.Equal(t, []string{"alice"}, got.Winners)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	var got submission
	assert.Error(t, Decode([]byte{0xc1}, &got))
}

func TestMockPubSubClient(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.SendMessage(EventMatchRecorded, "payload"))

	calls := m.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, EventMatchRecorded, calls[0].Topic)

	data, err := Encode(submission{Kind: "ffa"})
	require.NoError(t, err)
	var got submission
	require.NoError(t, m.ProcessMessage(data, &got))
	assert.Equal(t, "ffa", got.Kind)

	m.Reset()
	assert.Empty(t, m.Calls())
}
