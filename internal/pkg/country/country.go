package country

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"
)

//go:embed country.json
var data []byte

// Unknown is returned when no country is registered for a code.
const Unknown = "--"

const (
	Europe     = "EU"
	EuropeLand = "UE"
)

type table struct {
	// PLMN overrides MCC for networks confined to one territory of a shared MCC.
	PLMN    map[string]string   `json:"plmn"`
	MCC     map[string]string   `json:"mcc"`
	Regions map[string][]string `json:"regions"`
}

var dictionary table

func init() {
	if err := json.Unmarshal(data, &dictionary); err != nil {
		panic(err)
	}
}

// Lookup returns the uppercase ISO 3166 alpha-2 code of the country owning the
// network. Shared MCCs resolve to their main country unless the mnc is listed
// for a single territory.
func Lookup(mcc, mnc string) string {
	if iso, ok := dictionary.PLMN[mcc+mnc]; ok {
		return iso
	}
	if iso, ok := dictionary.MCC[mcc]; ok {
		return iso
	}
	return Unknown
}

// Members returns a copy of the ISO codes behind an aggregate region code such
// as EU or UE. Unknown aggregates yield nil.
func Members(region string) []string {
	return slices.Clone(dictionary.Regions[strings.ToUpper(region)])
}

// In reports whether iso belongs to the aggregate region, ignoring case.
func In(region, iso string) bool {
	return slices.Contains(dictionary.Regions[strings.ToUpper(region)], strings.ToUpper(iso))
}
