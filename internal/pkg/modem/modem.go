package modem

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

type Modem struct {
	conn       *dbus.Conn
	objectPath dbus.ObjectPath
	dbusObject dbus.BusObject
}

type Port struct {
	Name string
	Type ModemPortType
}

func (p Port) Device() string {
	return fmt.Sprintf("/dev/%s", p.Name)
}

func (m *Modem) Model() (string, error) {
	return property[string](m.dbusObject, ModemInterface+".Model")
}

func (m *Modem) EquipmentIdentifier() (string, error) {
	return property[string](m.dbusObject, ModemInterface+".EquipmentIdentifier")
}

func (m *Modem) AccessTechnologies() (AccessTechnology, error) {
	v, err := property[uint32](m.dbusObject, ModemInterface+".AccessTechnologies")
	return AccessTechnology(v), err
}

func (m *Modem) Ports() ([]Port, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".Ports")
	if err != nil {
		return nil, err
	}
	var raw []struct {
		Name string
		Type uint32
	}
	if err := variant.Store(&raw); err != nil {
		return nil, err
	}
	ports := make([]Port, 0, len(raw))
	for _, p := range raw {
		ports = append(ports, Port{Name: p.Name, Type: ModemPortType(p.Type)})
	}
	return ports, nil
}

func (m *Modem) Port(portType ModemPortType) (*Port, error) {
	ports, err := m.Ports()
	if err != nil {
		return nil, err
	}
	for _, p := range ports {
		if p.Type == portType {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("no port of type %d", portType)
}
