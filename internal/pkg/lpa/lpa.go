package lpa

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"github.com/damonto/euicc-go/driver"
	"github.com/damonto/euicc-go/lpa"
)

var ErrNoDevice = errors.New("no QMI device")

// Reader reads the EID of eUICCs behind a QMI device.
type Reader struct {
	device string
	mutex  sync.Mutex
}

func NewReader(device string) *Reader {
	return &Reader{device: device}
}

// EID opens a logical channel on the SIM in the 1-based slot and reads its
// EID. Physical SIMs have no ISD-R and return an error.
func (r *Reader) EID(slot int) (string, error) {
	if r.device == "" {
		return "", ErrNoDevice
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	channel, err := driver.NewQMI(r.device, slot)
	if err != nil {
		return "", err
	}
	transmitter, err := driver.NewTransmitter(channel, 240)
	if err != nil {
		channel.Disconnect()
		return "", err
	}
	defer transmitter.Close()
	client := &lpa.Client{APDU: transmitter}
	eid, err := client.EID()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(eid)), nil
}
