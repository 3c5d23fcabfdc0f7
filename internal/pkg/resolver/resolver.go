package resolver

import (
	"context"
	"log/slog"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/country"
	"github.com/damonto/carrier-id/internal/pkg/platform"
	"github.com/damonto/carrier-id/internal/pkg/profile"
	"github.com/damonto/carrier-id/internal/pkg/radiotech"
	"golang.org/x/sync/errgroup"
)

// RadioSource provides the live radio state.
type RadioSource interface {
	Radio() carrier.RadioInfo
}

// ProfileFetcher retrieves the remote carrier profile of a network.
type ProfileFetcher interface {
	Fetch(ctx context.Context, mcc, mnc string) (*profile.Profile, error)
}

// StaticRadio is a fixed radio state, the zero value reports no provider.
type StaticRadio carrier.RadioInfo

func (r StaticRadio) Radio() carrier.RadioInfo {
	return carrier.RadioInfo(r)
}

type Options struct {
	Capabilities platform.Capabilities
	Device       platform.DeviceClass
	Layout       carrier.Layout
	// Lookup defaults to the embedded country table.
	Lookup carrier.CountryLookup
}

type Resolver struct {
	blobs   carrier.BlobSource
	radio   RadioSource
	fetcher ProfileFetcher
	options Options
}

func New(blobs carrier.BlobSource, radio RadioSource, fetcher ProfileFetcher, options Options) *Resolver {
	if options.Lookup == nil {
		options.Lookup = country.Lookup
	}
	if options.Layout == (carrier.Layout{}) {
		options.Layout = carrier.DefaultLayout
	}
	if radio == nil {
		radio = StaticRadio{}
	}
	return &Resolver{blobs: blobs, radio: radio, fetcher: fetcher, options: options}
}

// Result is the resolved SIM and network identity of one slot.
type Result struct {
	Identity carrier.Identity `json:"identity"`
	Network  carrier.Network  `json:"network"`
	Roaming  bool             `json:"roaming"`
}

// Resolve builds the identity of the SIM in the requested role. It reads
// local state only and always returns a result.
func (r *Resolver) Resolve(role carrier.SlotRole) Result {
	sel := carrier.SlotSelector{
		Layout:    r.options.Layout,
		MultiSlot: r.options.Capabilities.MultiSlot,
	}.Select(role, r.blobs)
	merger := carrier.Merger{
		Lookup:    r.options.Lookup,
		MultiSlot: r.options.Capabilities.MultiSlot,
	}
	identity, network := merger.Merge(carrier.Sources{
		Selection: sel,
		Carrier:   r.blobs.Blob(sel.Pair.Carrier),
		Operator:  r.blobs.Blob(sel.Pair.Operator),
		Radio:     r.radio.Radio(),
	})
	slog.Debug("resolved carrier identity",
		"requested", role,
		"role", identity.Role,
		"mcc", identity.MCC,
		"mnc", identity.MNC,
		"active", identity.Active,
	)
	return Result{Identity: identity, Network: network, Roaming: network.Roaming(identity)}
}

// Enrichment is the remote profile of a SIM after device overrides, region
// expansion, technology normalization and the roaming decision.
type Enrichment struct {
	Profile  *profile.Profile `json:"profile"`
	Decision profile.Decision `json:"decision"`
}

// Enrich fetches and prepares the remote profile of identity. Any failure is
// logged and reported as false, the identity then stands on its own.
func (r *Resolver) Enrich(ctx context.Context, identity carrier.Identity) (*Enrichment, bool) {
	if r.fetcher == nil || identity.MCC == carrier.UnknownMCC {
		return nil, false
	}
	p, err := r.fetcher.Fetch(ctx, identity.MCC, identity.MNC)
	if err != nil {
		slog.Warn("carrier profile unavailable", "mcc", identity.MCC, "mnc", identity.MNC, "error", err)
		return nil, false
	}
	if n := p.ApplyDeviceOverrides(r.options.Device); n > 0 {
		slog.Debug("applied device overrides", "device", r.options.Device, "count", n)
	}
	p.ExpandRegions()
	p.NormalizeTechnologies(radiotech.Normalizer{FiveG: r.options.Capabilities.FiveG})
	return &Enrichment{Profile: p, Decision: p.DecideRoaming(identity)}, true
}

// Report is a resolved slot with its enrichment, if any.
type Report struct {
	Result     `yaml:",inline"`
	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// ResolveAll resolves every role and enriches the results concurrently.
func (r *Resolver) ResolveAll(ctx context.Context, roles ...carrier.SlotRole) []Report {
	reports := make([]Report, len(roles))
	g, ctx := errgroup.WithContext(ctx)
	for i, role := range roles {
		reports[i].Result = r.Resolve(role)
		g.Go(func() error {
			reports[i].Enrichment, _ = r.Enrich(ctx, reports[i].Identity)
			return nil
		})
	}
	_ = g.Wait()
	return reports
}
