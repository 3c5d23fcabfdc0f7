package modem

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

func property[T any](object dbus.BusObject, name string) (T, error) {
	var value T
	variant, err := object.GetProperty(name)
	if err != nil {
		return value, err
	}
	value, ok := variant.Value().(T)
	if !ok {
		return value, fmt.Errorf("property %s: unexpected type %s", name, variant.Signature())
	}
	return value, nil
}
