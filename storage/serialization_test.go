package storage

import (
	"testing"
	"time"

	"github.com/poiesic/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalSeenRecord(t *testing.T) {
	// The MUS format stores DeliveredAt at second precision.
	now := time.Now().UTC().Truncate(time.Second)

	record := &core.SeenRecord{
		Id:          core.IDFromContent("alice\x00bestespressomachine?"),
		DeliveredAt: now,
	}

	data := MarshalSeenRecord(record)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalSeenRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record.Id, decoded.Id)
	assert.Equal(t, record.DeliveredAt.Unix(), decoded.DeliveredAt.Unix())
}

func TestUnmarshalSeenRecord_Truncated(t *testing.T) {
	record := &core.SeenRecord{
		Id:          core.ID(7),
		DeliveredAt: time.Now(),
	}
	data := MarshalSeenRecord(record)

	_, err := UnmarshalSeenRecord(data[:1])
	assert.Error(t, err)
}
