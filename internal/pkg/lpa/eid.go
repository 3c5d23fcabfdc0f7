package lpa

import (
	"log/slog"

	"github.com/damonto/carrier-id/internal/pkg/modem"
)

// EIDReader reads the EID of the SIM in a slot.
type EIDReader interface {
	EID(slot int) (string, error)
}

// FillEIDs reads the EID of every active slot the modem did not report one
// for. Failures leave the EID empty.
func FillEIDs(snapshot *modem.Snapshot, reader EIDReader) int {
	filled := 0
	for i, slot := range snapshot.Slots {
		if !slot.Active || slot.EID != "" {
			continue
		}
		eid, err := reader.EID(slot.Slot)
		if err != nil {
			slog.Debug("unable to read EID", "slot", slot.Slot, "error", err)
			continue
		}
		snapshot.Slots[i].EID = eid
		filled++
	}
	return filled
}
