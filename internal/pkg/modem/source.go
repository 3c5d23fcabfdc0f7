package modem

import (
	"fmt"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/country"
	"github.com/damonto/carrier-id/internal/pkg/radiotech"
)

// Source serves a modem snapshot as config files and live radio info. The
// legacy config pair follows the primary slot, the same way the legacy files
// follow the SIM that carries data.
type Source struct {
	snapshot *Snapshot
	files    map[string]carrier.Blob
}

func NewSource(snapshot *Snapshot, layout carrier.Layout) *Source {
	s := &Source{snapshot: snapshot, files: make(map[string]carrier.Blob)}
	s.link(layout.Legacy, snapshot.PrimarySlot)
	s.link(layout.Slot1, 1)
	s.link(layout.Slot2, 2)
	return s
}

func (s *Source) link(pair carrier.ConfigPair, n int) {
	slot, ok := s.snapshot.Slot(n)
	if !ok {
		return
	}
	s.files[pair.Carrier] = carrier.Blob{
		Target: target(slot.OperatorIdentifier, "carrier", n),
		Bundle: &carrier.Bundle{StatusBarName: slot.OperatorName, CarrierName: slot.OperatorName},
	}
	operator := carrier.Blob{Target: target("", "operator", n)}
	if n == s.snapshot.PrimarySlot && slot.Active {
		operator = carrier.Blob{
			Target: target(s.snapshot.OperatorCode, "operator", n),
			Bundle: &carrier.Bundle{StatusBarName: s.snapshot.OperatorName, CarrierName: s.snapshot.OperatorName},
		}
	}
	s.files[pair.Operator] = operator
}

// target leads with the PLMN code so it is the first digit run.
func target(code, kind string, slot int) string {
	if code == "" {
		code = "unknown"
	}
	return fmt.Sprintf("%s/%s/slot-%d", code, kind, slot)
}

func (s *Source) Blob(name string) carrier.Blob {
	return s.files[name]
}

// Radio returns the live provider of every active slot. Only the primary
// slot carries the access technologies.
func (s *Source) Radio() carrier.RadioInfo {
	info := carrier.RadioInfo{
		Providers:    make(map[string]carrier.Provider),
		Technologies: make(map[string]string),
	}
	technology := string(radiotech.Normalizer{FiveG: true}.Normalize(s.snapshot.Technologies.Token(), ""))
	for _, slot := range s.snapshot.Slots {
		if !slot.Active {
			continue
		}
		id := carrier.SlotID(slot.Slot)
		mcc, mnc := carrier.SplitDigits(slot.OperatorIdentifier)
		p := carrier.Provider{Name: slot.OperatorName, EID: slot.EID}
		if mcc != carrier.UnknownMCC {
			p.MCC, p.MNC = mcc, mnc
			p.ISOCountry = country.Lookup(mcc, mnc)
		}
		info.Providers[id] = p
		if slot.Slot == s.snapshot.PrimarySlot {
			info.Technologies[id] = technology
			info.Legacy = &p
			info.LegacyTechnology = technology
		}
	}
	return info
}
