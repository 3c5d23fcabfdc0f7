package platform

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Capabilities describes what the host platform can report about its radios.
type Capabilities struct {
	// MultiSlot is true when per-slot provider data and per-slot config
	// files are available.
	MultiSlot bool
	// FiveG is true when 5G technology identifiers are reported.
	FiveG bool
}

// Modern is the capability set of a current platform.
var Modern = Capabilities{MultiSlot: true, FiveG: true}

var (
	multiSlotConstraint = mustConstraint(">= 12.0")
	fiveGConstraint     = mustConstraint(">= 14.1")
)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// Detect derives the capabilities from a platform version such as "14.1" or
// "15.4.1". An empty version means the current platform.
func Detect(version string) (Capabilities, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return Modern, nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return Capabilities{}, fmt.Errorf("parse platform version %q: %w", version, err)
	}
	return Capabilities{
		MultiSlot: multiSlotConstraint.Check(v),
		FiveG:     fiveGConstraint.Check(v),
	}, nil
}

// DeviceClass selects device specific profile overrides.
type DeviceClass int

const (
	Phone DeviceClass = iota
	Tablet
)

func (d DeviceClass) String() string {
	if d == Tablet {
		return "tablet"
	}
	return "phone"
}
