package modem

import (
	"github.com/godbus/dbus/v5"
)

type SIM struct {
	Path               dbus.ObjectPath
	Active             bool
	OperatorIdentifier string
	OperatorName       string
	Imsi               string
	Identifier         string
	Eid                string
}

func (m *Modem) SimSlots() ([]dbus.ObjectPath, error) {
	return property[[]dbus.ObjectPath](m.dbusObject, ModemInterface+".SimSlots")
}

func (m *Modem) PrimarySimSlot() (uint32, error) {
	slot, err := property[uint32](m.dbusObject, ModemInterface+".PrimarySimSlot")
	if slot == 0 {
		slot = 1
	}
	return slot, err
}

func (m *Modem) Sim() (dbus.ObjectPath, error) {
	return property[dbus.ObjectPath](m.dbusObject, ModemInterface+".Sim")
}

// SIM reads the SIM object at path. Active and Eid are missing on older
// ModemManager releases, the SIM is then active when it is the modem's
// current SIM.
func (m *Modem) SIM(path dbus.ObjectPath) (*SIM, error) {
	object := m.conn.Object(ModemManagerInterface, path)
	sim := &SIM{Path: path}
	var err error
	if sim.OperatorIdentifier, err = property[string](object, SimInterface+".OperatorIdentifier"); err != nil {
		return nil, err
	}
	if sim.OperatorName, err = property[string](object, SimInterface+".OperatorName"); err != nil {
		return nil, err
	}
	if sim.Imsi, err = property[string](object, SimInterface+".Imsi"); err != nil {
		return nil, err
	}
	if sim.Identifier, err = property[string](object, SimInterface+".SimIdentifier"); err != nil {
		return nil, err
	}
	sim.Eid, _ = property[string](object, SimInterface+".Eid")
	if sim.Active, err = property[bool](object, SimInterface+".Active"); err != nil {
		current, _ := m.Sim()
		sim.Active = current == path
	}
	return sim, nil
}
