package radiotech

import "strings"

// Technology is the canonical name of a radio access technology.
type Technology string

const (
	GPRS         Technology = "GPRS"
	EDGE         Technology = "Edge"
	WCDMA        Technology = "WCDMA"
	HSDPA        Technology = "HSDPA"
	HSUPA        Technology = "HSUPA"
	CDMA1x       Technology = "CDMA1x"
	CDMAEVDORev0 Technology = "CDMAEVDORev0"
	CDMAEVDORevA Technology = "CDMAEVDORevA"
	CDMAEVDORevB Technology = "CDMAEVDORevB"
	EHRPD        Technology = "eHRPD"
	LTE          Technology = "LTE"
	NRNSA        Technology = "NRNSA"
	NR           Technology = "NR"
)

const (
	DefaultHome            = WCDMA
	DefaultNationalRoaming = HSDPA
)

var aliases map[string]Technology

func init() {
	technologies := map[Technology][]string{
		GPRS:         {"GPRS"},
		EDGE:         {"EDGE"},
		WCDMA:        {"WCDMA"},
		HSDPA:        {"HSDPA"},
		HSUPA:        {"HSUPA"},
		CDMA1x:       {"CDMA1X", "CDMA"},
		CDMAEVDORev0: {"CDMAEVDOREV0", "EVDO"},
		CDMAEVDORevA: {"CDMAEVDOREVA", "EVDOA"},
		CDMAEVDORevB: {"CDMAEVDOREVB", "EVDOB"},
		EHRPD:        {"EHRPD", "HRPD"},
		LTE:          {"LTE"},
		NRNSA:        {"NRNSA"},
		NR:           {"NR"},
	}
	aliases = make(map[string]Technology)
	for t, as := range technologies {
		for _, a := range as {
			if _, ok := aliases[a]; ok {
				panic("repeated technology alias")
			}
			aliases[a] = t
		}
	}
}

// IsFiveG reports whether t is one of the 5G technologies.
func (t Technology) IsFiveG() bool {
	return t == NR || t == NRNSA
}

// Normalizer maps short technology tokens to canonical technologies.
type Normalizer struct {
	// FiveG is false on platforms that cannot report 5G technologies,
	// 5G tokens then fall back to the default.
	FiveG bool
}

// Normalize returns the canonical technology for token, or def when the
// token is empty, unknown, or unsupported on this platform.
func (n Normalizer) Normalize(token string, def Technology) Technology {
	t, ok := aliases[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return def
	}
	if t.IsFiveG() && !n.FiveG {
		return def
	}
	return t
}
