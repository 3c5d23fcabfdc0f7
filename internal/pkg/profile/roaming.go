package profile

import (
	"github.com/damonto/carrier-id/internal/pkg/carrier"
)

// Decision is the national roaming decision for a profile.
type Decision struct {
	// Declared is true when the SIM declares the roaming network as a partner.
	Declared bool `json:"declared"`
	// ChasedMNC is the mnc to watch for a roaming state transition.
	ChasedMNC string `json:"chasedMnc"`
	// SpeedTestRequired is set when the roaming network shows up as home and
	// only a speed test can tell them apart.
	SpeedTestRequired    bool `json:"speedTestRequired"`
	MinimalSetupEligible bool `json:"minimalSetupEligible"`
	// Skipped is set when the profile disables core detection.
	Skipped bool `json:"skipped,omitempty"`
}

// DecideRoaming cross references the SIM identity with the roaming network
// of the profile and records the outcome on the profile.
func (p *Profile) DecideRoaming(identity carrier.Identity) Decision {
	p.MinimalSetupEligible = identity.MinimalSetupEligible
	if p.CoreDetectionDisabled {
		return Decision{MinimalSetupEligible: identity.MinimalSetupEligible, Skipped: true}
	}
	d := Decision{
		Declared:             carrier.Declares(identity.RoamingPartners, p.MCC, p.RoamingMNC),
		ChasedMNC:            p.RoamingMNC,
		MinimalSetupEligible: identity.MinimalSetupEligible,
	}
	if d.Declared {
		d.ChasedMNC = p.MNC
		d.SpeedTestRequired = true
	}
	p.RoamingDeclared = d.Declared
	p.ChasedMNC = d.ChasedMNC
	return d
}
