package carrier

import (
	"regexp"
	"strings"
)

var digitsPattern = regexp.MustCompile(`[0-9]+`)

// ParseDigits extracts the PLMN digits from a config file link target.
// Empty targets, targets mentioning "unknown", and targets whose first digit
// run is not 5 or 6 digits long yield UnknownDigits.
func ParseDigits(target string) string {
	if target == "" || strings.Contains(strings.ToLower(target), "unknown") {
		return UnknownDigits
	}
	digits := digitsPattern.FindString(target)
	if len(digits) != 5 && len(digits) != 6 {
		return UnknownDigits
	}
	return digits
}

// SplitDigits splits PLMN digits into mcc and mnc. Six digit codes carry a
// three digit mnc.
func SplitDigits(digits string) (mcc, mnc string) {
	if (len(digits) != 5 && len(digits) != 6) || digitsPattern.FindString(digits) != digits {
		return UnknownMCC, UnknownMNC
	}
	return digits[:3], digits[3:]
}
