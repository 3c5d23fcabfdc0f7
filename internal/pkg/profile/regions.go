package profile

import (
	"slices"

	"github.com/damonto/carrier-id/internal/pkg/country"
)

// ExpandRegionCodes appends the members of every aggregate region code found
// in list. It is not idempotent: expanding an already expanded list appends
// the members again.
func ExpandRegionCodes(list []string) []string {
	out := slices.Clone(list)
	for _, region := range []string{country.Europe, country.EuropeLand} {
		if slices.Contains(list, region) {
			out = append(out, country.Members(region)...)
		}
	}
	return out
}

// ExpandRegions expands the aggregate region codes of the three country
// lists. A profile whose home country is in Europe gets EU added to its voice
// and data countries first. Only the first call has an effect, it reports
// whether it did.
func (p *Profile) ExpandRegions() bool {
	if p.regionsExpanded {
		return false
	}
	p.regionsExpanded = true
	if country.In(country.Europe, p.ISOCountry) && !slices.Contains(p.VoiceAndDataCountries, country.Europe) {
		p.VoiceAndDataCountries = append(p.VoiceAndDataCountries, country.Europe)
	}
	p.DataOnlyCountries = ExpandRegionCodes(p.DataOnlyCountries)
	p.VoiceOnlyCountries = ExpandRegionCodes(p.VoiceOnlyCountries)
	p.VoiceAndDataCountries = ExpandRegionCodes(p.VoiceAndDataCountries)
	return true
}
