package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "bundle path", target: "/var/mobile/Library/Carrier Bundles/Overlay/20815.bundle/carrier.plist", want: "20815"},
		{name: "six digits", target: "/bundles/310260/carrier.plist", want: "310260"},
		{name: "empty", target: "", want: UnknownDigits},
		{name: "unknown", target: "/bundles/Unknown.bundle/carrier.plist", want: UnknownDigits},
		{name: "unknown with digits", target: "/bundles/UNKNOWN_20815.bundle", want: UnknownDigits},
		{name: "no digits", target: "/bundles/Default.bundle/carrier.plist", want: UnknownDigits},
		{name: "first run too short", target: "/bundles/v2/20815.bundle", want: UnknownDigits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseDigits(tt.target))
		})
	}
}

func TestSplitDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		digits  string
		wantMCC string
		wantMNC string
	}{
		{digits: "20815", wantMCC: "208", wantMNC: "15"},
		{digits: "90137", wantMCC: "901", wantMNC: "37"},
		{digits: "310260", wantMCC: "310", wantMNC: "260"},
		{digits: UnknownDigits, wantMCC: UnknownMCC, wantMNC: UnknownMNC},
		{digits: "2081", wantMCC: UnknownMCC, wantMNC: UnknownMNC},
		{digits: "2081a", wantMCC: UnknownMCC, wantMNC: UnknownMNC},
	}
	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			t.Parallel()
			mcc, mnc := SplitDigits(tt.digits)
			assert.Equal(t, tt.wantMCC, mcc)
			assert.Equal(t, tt.wantMNC, mnc)
		})
	}
}

func TestSplitDigits_Lengths(t *testing.T) {
	t.Parallel()

	for _, digits := range []string{"00100", "99999", "12345", "208150", "999999"} {
		mcc, mnc := SplitDigits(digits)
		assert.Len(t, mcc, 3)
		assert.Len(t, mnc, len(digits)-3)
		assert.Equal(t, digits, mcc+mnc)
	}
}

func TestParseSlotRole(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]SlotRole{
		"primary": Primary,
		"SIM":     Primary,
		"esim":    Secondary,
		"2":       Secondary,
		"current": AutoDetect,
		"":        AutoDetect,
	} {
		got, err := ParseSlotRole(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSlotRole("third")
	assert.ErrorIs(t, err, ErrUnknownSlotRole)
}
