package carrier

import (
	"errors"
	"fmt"
	"strings"
)

const (
	UnknownDigits = "-----"
	UnknownMCC    = "---"
	UnknownMNC    = "--"
	DefaultName   = "Carrier"
)

var ErrUnknownSlotRole = errors.New("unknown slot role")

// SlotRole selects which SIM the caller asks about.
type SlotRole int

const (
	// Primary is the physical SIM.
	Primary SlotRole = iota
	// Secondary is the eSIM.
	Secondary
	// AutoDetect is whichever SIM currently carries data.
	AutoDetect
)

func (r SlotRole) String() string {
	switch r {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case AutoDetect:
		return "auto"
	}
	return fmt.Sprintf("SlotRole(%d)", int(r))
}

func (r SlotRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseSlotRole accepts the role names along with "sim", "esim" and "current".
func ParseSlotRole(s string) (SlotRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "sim", "1":
		return Primary, nil
	case "secondary", "esim", "2":
		return Secondary, nil
	case "auto", "autodetect", "current", "":
		return AutoDetect, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSlotRole, s)
}

// Identity is the merged identity of the SIM subscription.
type Identity struct {
	MCC                  string   `json:"mcc"`
	MNC                  string   `json:"mnc"`
	ISOCountry           string   `json:"isoCountry"`
	DisplayName          string   `json:"name"`
	FullName             string   `json:"fullName"`
	RawDigits            string   `json:"rawDigits"`
	ConnectedTechnology  string   `json:"connectedTechnology,omitempty"`
	Active               bool     `json:"active"`
	Role                 SlotRole `json:"role"`
	RoamingPartners      []PLMN   `json:"roamingPartners,omitempty"`
	MinimalSetupEligible bool     `json:"minimalSetupEligible"`
	EID                  string   `json:"eid,omitempty"`
	VOIPAllowed          bool     `json:"voipAllowed"`

	statusBarName string
	providerName  string
}

// StatusBarName is the carrier name shown in the status bar by the bundle.
func (i Identity) StatusBarName() string {
	return i.statusBarName
}

// Network is the identity of the network the device is registered on.
type Network struct {
	MCC                 string `json:"mcc"`
	MNC                 string `json:"mnc"`
	ISOCountry          string `json:"isoCountry"`
	DisplayName         string `json:"name"`
	FullName            string `json:"fullName"`
	RawDigits           string `json:"rawDigits"`
	ConnectedTechnology string `json:"connectedTechnology,omitempty"`
}

// Roaming reports whether the registered network differs from the SIM
// subscription. Unknown codes on either side never count as roaming.
func (n Network) Roaming(i Identity) bool {
	if n.MCC == UnknownMCC || i.MCC == UnknownMCC {
		return false
	}
	return n.MCC != i.MCC || n.MNC != i.MNC
}

// Provider is the live provider record reported by the radio stack for one
// SIM slot.
type Provider struct {
	MCC        string
	MNC        string
	Name       string
	ISOCountry string
	AllowsVOIP bool
	EID        string
}

// RadioInfo is a snapshot of the live radio state. Multi-slot platforms fill
// Providers and Technologies keyed by slot identifier, single-slot platforms
// fill Legacy and LegacyTechnology.
type RadioInfo struct {
	Providers        map[string]Provider
	Technologies     map[string]string
	Legacy           *Provider
	LegacyTechnology string
}

func (r RadioInfo) provider(slotID string, multiSlot bool) (Provider, string, bool) {
	if !multiSlot {
		if r.Legacy == nil {
			return Provider{}, r.LegacyTechnology, false
		}
		return *r.Legacy, r.LegacyTechnology, true
	}
	p, ok := r.Providers[slotID]
	return p, r.Technologies[slotID], ok
}

// Bundle is the decoded content of a carrier or operator config file.
type Bundle struct {
	StatusBarName  string
	CarrierName    string
	SupportedPLMNs []string
}

// Blob is a config file as seen through its link. Target is empty when the
// link cannot be resolved, Bundle is nil when the content cannot be read.
type Blob struct {
	Target string
	Bundle *Bundle
}

// BlobSource resolves config files by name.
type BlobSource interface {
	Blob(name string) Blob
}

// CountryLookup maps an mcc and mnc to an uppercase ISO country code.
type CountryLookup func(mcc, mnc string) string
