package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/platform"
	"github.com/damonto/carrier-id/internal/pkg/profile"
	"github.com/damonto/carrier-id/internal/pkg/radiotech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blobs map[string]carrier.Blob

func (b blobs) Blob(name string) carrier.Blob {
	return b[name]
}

type fetcher struct {
	mu       sync.Mutex
	profiles map[string]profile.Profile
	calls    []string
}

func (f *fetcher) Fetch(_ context.Context, mcc, mnc string) (*profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, mcc+"-"+mnc)
	p, ok := f.profiles[mcc+"-"+mnc]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return &p, nil
}

var layout = carrier.DefaultLayout

func free() blobs {
	return blobs{
		layout.Legacy.Operator: {Target: "/bundles/20815.bundle/operator.plist"},
		layout.Legacy.Carrier:  {Target: "/bundles/20815.bundle/carrier.plist"},
		layout.Slot1.Operator:  {Target: "/bundles/20815.bundle/operator.plist"},
		layout.Slot1.Carrier: {
			Target: "/bundles/20815.bundle/carrier.plist",
			Bundle: &carrier.Bundle{CarrierName: "Free", StatusBarName: "Free", SupportedPLMNs: []string{"20815", "20801"}},
		},
		layout.Slot2.Operator: {Target: "/bundles/90137.bundle/operator.plist"},
		layout.Slot2.Carrier:  {Target: "/bundles/90137.bundle/carrier.plist"},
	}
}

func freeProfile() profile.Profile {
	return profile.Profile{
		MCC:                   "208",
		MNC:                   "15",
		ISOCountry:            "FR",
		RoamingMNC:            "01",
		HomeTechnology:        "EVDOA",
		VoiceAndDataCountries: []string{"GB"},
		TabletOverrides:       map[string]profile.Value{"itimnc": profile.StringValue("10")},
	}
}

func liveFree() StaticRadio {
	return StaticRadio{
		Providers:    map[string]carrier.Provider{carrier.Slot1ID: {MCC: "208", MNC: "15", Name: "Free"}},
		Technologies: map[string]string{carrier.Slot1ID: "LTE"},
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := New(free(), liveFree(), nil, Options{Capabilities: platform.Modern})
	res := r.Resolve(carrier.AutoDetect)

	assert.Equal(t, carrier.Primary, res.Identity.Role)
	assert.Equal(t, "208", res.Identity.MCC)
	assert.Equal(t, "15", res.Identity.MNC)
	assert.Equal(t, "FR", res.Identity.ISOCountry)
	assert.True(t, res.Identity.Active)
	assert.Equal(t, "Free", res.Identity.DisplayName)
	assert.False(t, res.Roaming)
}

func TestResolver_ResolveWithoutRadio(t *testing.T) {
	t.Parallel()

	b := free()
	b[layout.Legacy.Carrier] = carrier.Blob{Target: "/bundles/20820.bundle/carrier.plist"}
	r := New(b, nil, nil, Options{Capabilities: platform.Modern})
	res := r.Resolve(carrier.AutoDetect)

	assert.Equal(t, carrier.AutoDetect, res.Identity.Role)
	assert.False(t, res.Identity.Active)
	assert.Equal(t, "208", res.Identity.MCC)
	assert.Equal(t, "20", res.Identity.MNC)
}

func TestResolver_Enrich(t *testing.T) {
	t.Parallel()

	f := &fetcher{profiles: map[string]profile.Profile{"208-15": freeProfile()}}
	r := New(free(), liveFree(), f, Options{Capabilities: platform.Capabilities{MultiSlot: true}})
	res := r.Resolve(carrier.Primary)

	e, ok := r.Enrich(context.Background(), res.Identity)
	require.True(t, ok)

	assert.True(t, e.Decision.Declared)
	assert.Equal(t, "15", e.Decision.ChasedMNC)
	assert.False(t, e.Decision.MinimalSetupEligible)
	assert.Equal(t, "01", e.Profile.RoamingMNC)
	assert.Equal(t, radiotech.CDMAEVDORevA, e.Profile.HomeTechnology)
	assert.Equal(t, radiotech.DefaultNationalRoaming, e.Profile.NationalRoamingTechnology)
	assert.Contains(t, e.Profile.VoiceAndDataCountries, "EU")
	assert.Contains(t, e.Profile.VoiceAndDataCountries, "DE")
	assert.Equal(t, []string{"208-15"}, f.calls)
}

func TestResolver_EnrichTablet(t *testing.T) {
	t.Parallel()

	f := &fetcher{profiles: map[string]profile.Profile{"208-15": freeProfile()}}
	r := New(free(), liveFree(), f, Options{Capabilities: platform.Modern, Device: platform.Tablet})

	e, ok := r.Enrich(context.Background(), r.Resolve(carrier.Primary).Identity)
	require.True(t, ok)

	assert.Equal(t, "10", e.Profile.RoamingMNC)
	assert.False(t, e.Decision.Declared)
	assert.Equal(t, "10", e.Decision.ChasedMNC)
}

func TestResolver_EnrichFailures(t *testing.T) {
	t.Parallel()

	f := &fetcher{profiles: map[string]profile.Profile{}}
	r := New(free(), liveFree(), f, Options{Capabilities: platform.Modern})

	e, ok := r.Enrich(context.Background(), r.Resolve(carrier.Primary).Identity)
	assert.False(t, ok)
	assert.Nil(t, e)

	_, ok = r.Enrich(context.Background(), carrier.Identity{MCC: carrier.UnknownMCC, MNC: carrier.UnknownMNC})
	assert.False(t, ok)
	assert.Len(t, f.calls, 1)

	_, ok = New(free(), nil, nil, Options{}).Enrich(context.Background(), carrier.Identity{MCC: "208", MNC: "15"})
	assert.False(t, ok)
}

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, string, string) (*profile.Profile, error) {
	return nil, errors.New("connection refused")
}

func TestResolver_ResolveAll(t *testing.T) {
	t.Parallel()

	f := &fetcher{profiles: map[string]profile.Profile{"208-15": freeProfile()}}
	r := New(free(), liveFree(), f, Options{Capabilities: platform.Modern})

	reports := r.ResolveAll(context.Background(), carrier.Primary, carrier.Secondary)
	require.Len(t, reports, 2)
	assert.Equal(t, "208", reports[0].Identity.MCC)
	assert.NotNil(t, reports[0].Enrichment)
	assert.Equal(t, "901", reports[1].Identity.MCC)
	assert.False(t, reports[1].Identity.Active)
	assert.Nil(t, reports[1].Enrichment)

	reports = New(free(), liveFree(), failingFetcher{}, Options{Capabilities: platform.Modern}).
		ResolveAll(context.Background(), carrier.AutoDetect)
	require.Len(t, reports, 1)
	assert.Nil(t, reports[0].Enrichment)
	assert.Equal(t, "208", reports[0].Identity.MCC)
}
