package modem

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/godbus/dbus/v5"
)

var ErrModemNotFound = errors.New("modem not found")

type Manager struct {
	conn       *dbus.Conn
	dbusObject dbus.BusObject
}

func NewManager() (*Manager, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, err
	}
	return &Manager{
		conn:       conn,
		dbusObject: conn.Object(ModemManagerInterface, ModemManagerObjectPath),
	}, nil
}

func (m *Manager) Modems() ([]*Modem, error) {
	managed := make(map[dbus.ObjectPath]map[string]map[string]dbus.Variant)
	if err := m.dbusObject.Call(objectManagerMethod, 0).Store(&managed); err != nil {
		return nil, err
	}
	paths := make([]dbus.ObjectPath, 0, len(managed))
	for path, interfaces := range managed {
		if _, ok := interfaces[ModemInterface]; ok {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	modems := make([]*Modem, 0, len(paths))
	for _, path := range paths {
		modems = append(modems, &Modem{
			conn:       m.conn,
			objectPath: path,
			dbusObject: m.conn.Object(ModemManagerInterface, path),
		})
	}
	return modems, nil
}

// Snapshot reads the radio state of the first modem.
func (m *Manager) Snapshot() (*Snapshot, error) {
	modems, err := m.Modems()
	if err != nil {
		return nil, err
	}
	if len(modems) == 0 {
		return nil, ErrModemNotFound
	}
	if len(modems) > 1 {
		slog.Info("multiple modems found, using the first one", "objectPath", modems[0].objectPath)
	}
	return modems[0].Snapshot()
}
