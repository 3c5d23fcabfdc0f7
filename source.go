package main

import (
	"context"
	"fmt"

	"github.com/damonto/carrier-id/internal/pkg/bundle"
	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/config"
	"github.com/damonto/carrier-id/internal/pkg/lpa"
	"github.com/damonto/carrier-id/internal/pkg/modem"
	"github.com/damonto/carrier-id/internal/pkg/platform"
	"github.com/damonto/carrier-id/internal/pkg/profile"
	"github.com/damonto/carrier-id/internal/pkg/resolver"
	"github.com/damonto/carrier-id/internal/pkg/util"
)

func readSnapshot(_ context.Context) (*modem.Snapshot, error) {
	manager, err := modem.NewManager()
	if err != nil {
		return nil, fmt.Errorf("connect to ModemManager: %w", err)
	}
	snapshot, err := manager.Snapshot()
	if err != nil {
		return nil, err
	}
	if config.C.EUICC {
		lpa.FillEIDs(snapshot, lpa.NewReader(snapshot.QMIDevice))
	}
	return snapshot, nil
}

func newResolver(ctx context.Context) (*resolver.Resolver, error) {
	capabilities, err := platform.Detect(config.C.PlatformVersion)
	if err != nil {
		return nil, err
	}
	options := resolver.Options{
		Capabilities: capabilities,
		Device:       util.If(config.C.Tablet, platform.Tablet, platform.Phone),
		Layout:       carrier.DefaultLayout,
	}
	client := profile.NewClient(config.C.Endpoint, config.C.Timeout)

	if config.C.Source == config.SourceModem {
		snapshot, err := readSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		source := modem.NewSource(snapshot, options.Layout)
		return resolver.New(source, source, client, options), nil
	}
	return resolver.New(bundle.NewReader(config.C.PreferencesDir), nil, client, options), nil
}
