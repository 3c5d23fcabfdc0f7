package lpa

import (
	"errors"
	"testing"

	"github.com/damonto/carrier-id/internal/pkg/modem"
	"github.com/stretchr/testify/assert"
)

type fakeReader map[int]string

func (f fakeReader) EID(slot int) (string, error) {
	if eid, ok := f[slot]; ok {
		return eid, nil
	}
	return "", errors.New("no ISD-R")
}

func TestFillEIDs(t *testing.T) {
	t.Parallel()

	snapshot := &modem.Snapshot{Slots: []modem.SlotState{
		{Slot: 1, Active: true},
		{Slot: 2, Active: true},
		{Slot: 3, Active: true, EID: "89001"},
		{Slot: 4},
	}}

	filled := FillEIDs(snapshot, fakeReader{2: "89049032", 3: "89002", 4: "89004"})

	assert.Equal(t, 1, filled)
	assert.Empty(t, snapshot.Slots[0].EID)
	assert.Equal(t, "89049032", snapshot.Slots[1].EID)
	assert.Equal(t, "89001", snapshot.Slots[2].EID)
	assert.Empty(t, snapshot.Slots[3].EID)
}

func TestReader_NoDevice(t *testing.T) {
	t.Parallel()

	_, err := NewReader("").EID(1)
	assert.ErrorIs(t, err, ErrNoDevice)
}
