package profile

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/damonto/carrier-id/internal/pkg/platform"
	"github.com/damonto/carrier-id/internal/pkg/radiotech"
)

type setter func(p *Profile, v Value) bool

func stringField(field func(p *Profile) *string) setter {
	return func(p *Profile, v Value) bool {
		s, ok := v.AsString()
		if ok {
			*field(p) = s
		}
		return ok
	}
}

func technologyField(field func(p *Profile) *radiotech.Technology) setter {
	return func(p *Profile, v Value) bool {
		s, ok := v.AsString()
		if ok {
			*field(p) = radiotech.Technology(s)
		}
		return ok
	}
}

func boolField(field func(p *Profile) *bool) setter {
	return func(p *Profile, v Value) bool {
		b, ok := v.AsBool()
		if ok {
			*field(p) = b
		}
		return ok
	}
}

func floatField(field func(p *Profile) *float64) setter {
	return func(p *Profile, v Value) bool {
		f, ok := v.AsFloat()
		if ok {
			*field(p) = f
		}
		return ok
	}
}

func stringsField(field func(p *Profile) *[]string) setter {
	return func(p *Profile, v Value) bool {
		list, ok := v.AsStrings()
		if ok {
			*field(p) = slices.Clone(list)
		}
		return ok
	}
}

var setters = map[string]setter{
	"mcc":                stringField(func(p *Profile) *string { return &p.MCC }),
	"mnc":                stringField(func(p *Profile) *string { return &p.MNC }),
	"stms":               floatField(func(p *Profile) *float64 { return &p.MaxRoamingSpeed }),
	"hp":                 technologyField(func(p *Profile) *radiotech.Technology { return &p.HomeTechnology }),
	"nrp":                technologyField(func(p *Profile) *radiotech.Technology { return &p.NationalRoamingTechnology }),
	"land":               stringField(func(p *Profile) *string { return &p.ISOCountry }),
	"itiname":            stringField(func(p *Profile) *string { return &p.RoamingNetworkName }),
	"homename":           stringField(func(p *Profile) *string { return &p.HomeNetworkName }),
	"itimnc":             stringField(func(p *Profile) *string { return &p.RoamingMNC }),
	"nrfemto":            boolField(func(p *Profile) *bool { return &p.FemtocellActive }),
	"out2G":              boolField(func(p *Profile) *bool { return &p.Lacks2G }),
	"setupDone":          boolField(func(p *Profile) *bool { return &p.SetupComplete }),
	"minimalSetup":       boolField(func(p *Profile) *bool { return &p.MinimalSetupEligible }),
	"disableFMobileCore": boolField(func(p *Profile) *bool { return &p.CoreDetectionDisabled }),
	"countriesData":      stringsField(func(p *Profile) *[]string { return &p.DataOnlyCountries }),
	"countriesVoice":     stringsField(func(p *Profile) *[]string { return &p.VoiceOnlyCountries }),
	"countriesVData":     stringsField(func(p *Profile) *[]string { return &p.VoiceAndDataCountries }),
	"carrierServices": func(p *Profile, v Value) bool {
		lists, ok := v.AsStringLists()
		if ok {
			p.CarrierServices = slices.Clone(lists)
		}
		return ok
	},
	"roamLTE":   boolField(func(p *Profile) *bool { return &p.LTERoamingAllowed }),
	"roam5G":    boolField(func(p *Profile) *bool { return &p.FiveGRoamingAllowed }),
	"chasedmnc": stringField(func(p *Profile) *string { return &p.ChasedMNC }),
	"nrdec":     boolField(func(p *Profile) *bool { return &p.RoamingDeclared }),
}

// ApplyDeviceOverrides overlays the per-field overrides of the device class.
// Only tablets carry overrides. An override whose type does not fit its field
// is ignored, and fields without an override keep their value.
func (p *Profile) ApplyDeviceOverrides(class platform.DeviceClass) int {
	if class != platform.Tablet {
		return 0
	}
	applied := 0
	for _, key := range slices.Sorted(maps.Keys(p.TabletOverrides)) {
		v := p.TabletOverrides[key]
		set, ok := setters[key]
		if !ok {
			slog.Debug("ignoring override for unknown field", "field", key)
			continue
		}
		if !set(p, v) {
			slog.Debug("ignoring override with mismatched type", "field", key, "kind", v.Kind())
			continue
		}
		applied++
	}
	return applied
}
