package carrier

// PLMN is a public land mobile network code.
type PLMN struct {
	MCC string `json:"mcc"`
	MNC string `json:"mnc"`
}

func (p PLMN) String() string {
	return p.MCC + p.MNC
}

// ParsePLMN parses a 5 or 6 digit code.
func ParsePLMN(code string) (PLMN, bool) {
	mcc, mnc := SplitDigits(code)
	if mcc == UnknownMCC {
		return PLMN{}, false
	}
	return PLMN{MCC: mcc, MNC: mnc}, true
}

// ParsePLMNs keeps the entries of raw that are valid PLMN codes, in order.
func ParsePLMNs(raw []string) []PLMN {
	var plmns []PLMN
	for _, code := range raw {
		if p, ok := ParsePLMN(code); ok {
			plmns = append(plmns, p)
		}
	}
	return plmns
}

// MinimalSetupEligible reports whether a bundle lists at most one supported
// PLMN entry. Every raw entry counts, valid or not.
func MinimalSetupEligible(raw []string) bool {
	return len(raw) <= 1
}

// Declares reports whether partners contains the PLMN mcc/mnc.
func Declares(partners []PLMN, mcc, mnc string) bool {
	for _, p := range partners {
		if p.MCC == mcc && p.MNC == mnc {
			return true
		}
	}
	return false
}
