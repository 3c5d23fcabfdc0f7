package profile

import (
	"github.com/damonto/carrier-id/internal/pkg/radiotech"
)

// Profile is the carrier profile served by the remote profile endpoint.
type Profile struct {
	MCC                       string               `json:"mcc"`
	MNC                       string               `json:"mnc"`
	MaxRoamingSpeed           float64              `json:"stms,omitempty"`
	HomeTechnology            radiotech.Technology `json:"hp,omitempty"`
	NationalRoamingTechnology radiotech.Technology `json:"nrp,omitempty"`
	ISOCountry                string               `json:"land,omitempty"`
	RoamingNetworkName        string               `json:"itiname,omitempty"`
	HomeNetworkName           string               `json:"homename,omitempty"`
	RoamingMNC                string               `json:"itimnc,omitempty"`
	FemtocellActive           bool                 `json:"nrfemto,omitempty"`
	Lacks2G                   bool                 `json:"out2G,omitempty"`
	SetupComplete             bool                 `json:"setupDone,omitempty"`
	MinimalSetupEligible      bool                 `json:"minimalSetup,omitempty"`
	CoreDetectionDisabled     bool                 `json:"disableFMobileCore,omitempty"`
	DataOnlyCountries         []string             `json:"countriesData,omitempty"`
	VoiceOnlyCountries        []string             `json:"countriesVoice,omitempty"`
	VoiceAndDataCountries     []string             `json:"countriesVData,omitempty"`
	CarrierServices           [][]string           `json:"carrierServices,omitempty"`
	LTERoamingAllowed         bool                 `json:"roamLTE,omitempty"`
	FiveGRoamingAllowed       bool                 `json:"roam5G,omitempty"`
	ChasedMNC                 string               `json:"chasedmnc,omitempty"`
	RoamingDeclared           bool                 `json:"nrdec,omitempty"`
	TabletOverrides           map[string]Value     `json:"iPadOverwrite,omitempty"`

	regionsExpanded bool
}

// Matches reports whether the profile belongs to the network mcc/mnc.
func (p *Profile) Matches(mcc, mnc string) bool {
	return p.MCC == mcc && p.MNC == mnc
}

// NormalizeTechnologies replaces the technology tokens by canonical
// technologies, falling back to WCDMA for the home network and HSDPA for the
// national roaming network.
func (p *Profile) NormalizeTechnologies(n radiotech.Normalizer) {
	p.HomeTechnology = n.Normalize(string(p.HomeTechnology), radiotech.DefaultHome)
	p.NationalRoamingTechnology = n.Normalize(string(p.NationalRoamingTechnology), radiotech.DefaultNationalRoaming)
}
