package modem

import (
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// SlotState is the SIM found in one slot.
type SlotState struct {
	Slot               int    `json:"slot"`
	Active             bool   `json:"active"`
	OperatorIdentifier string `json:"operatorIdentifier"`
	OperatorName       string `json:"operatorName"`
	Identifier         string `json:"iccid"`
	EID                string `json:"eid,omitempty"`
}

// Snapshot is the radio state of a modem at one point in time.
type Snapshot struct {
	Model        string           `json:"model"`
	PrimarySlot  int              `json:"primarySlot"`
	Slots        []SlotState      `json:"slots"`
	OperatorCode string           `json:"operatorCode"`
	OperatorName string           `json:"operatorName"`
	Technologies AccessTechnology `json:"technologies"`
	QMIDevice    string           `json:"qmiDevice,omitempty"`
}

// Slot returns the state of the 1-based slot n.
func (s *Snapshot) Slot(n int) (SlotState, bool) {
	for _, slot := range s.Slots {
		if slot.Slot == n {
			return slot, true
		}
	}
	return SlotState{}, false
}

func (m *Modem) Snapshot() (*Snapshot, error) {
	s := new(Snapshot)
	s.Model, _ = m.Model()
	primary, err := m.PrimarySimSlot()
	if err != nil {
		slog.Debug("primary SIM slot not reported", "objectPath", m.objectPath, "error", err)
	}
	s.PrimarySlot = int(primary)

	slots, err := m.SimSlots()
	if err != nil || len(slots) == 0 {
		current, err := m.Sim()
		if err != nil {
			return nil, err
		}
		slots = []dbus.ObjectPath{current}
		s.PrimarySlot = 1
	}
	for idx, path := range slots {
		if path == "/" {
			continue
		}
		sim, err := m.SIM(path)
		if err != nil {
			slog.Warn("failed to read SIM", "slot", idx+1, "path", path, "error", err)
			continue
		}
		s.Slots = append(s.Slots, SlotState{
			Slot:               idx + 1,
			Active:             sim.Active,
			OperatorIdentifier: sim.OperatorIdentifier,
			OperatorName:       sim.OperatorName,
			Identifier:         sim.Identifier,
			EID:                sim.Eid,
		})
	}

	if state, err := m.RegistrationState(); err == nil && state.Registered() {
		s.OperatorCode, _ = m.OperatorCode()
		s.OperatorName, _ = m.OperatorName()
	}
	s.Technologies, _ = m.AccessTechnologies()
	if port, err := m.Port(ModemPortTypeQmi); err == nil {
		s.QMIDevice = port.Device()
	}
	return s, nil
}
