package modem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessTechnology_Token(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tech AccessTechnology
		want string
	}{
		{name: "nsa", tech: AccessTechnologyLte | AccessTechnology5gnr, want: "NRNSA"},
		{name: "sa", tech: AccessTechnology5gnr, want: "NR"},
		{name: "lte", tech: AccessTechnologyLte, want: "LTE"},
		{name: "cat-m", tech: AccessTechnologyLteCatM, want: "LTE"},
		{name: "hspa+", tech: AccessTechnologyHspaPlus, want: "HSDPA"},
		{name: "hsupa", tech: AccessTechnologyHsupa, want: "HSUPA"},
		{name: "umts", tech: AccessTechnologyUmts, want: "WCDMA"},
		{name: "edge", tech: AccessTechnologyEdge, want: "EDGE"},
		{name: "gsm", tech: AccessTechnologyGsm, want: "GPRS"},
		{name: "evdo b", tech: AccessTechnologyEvdob, want: "EVDOB"},
		{name: "evdo a", tech: AccessTechnologyEvdoa | AccessTechnology1xrtt, want: "EVDOA"},
		{name: "evdo 0", tech: AccessTechnologyEvdo0, want: "EVDO"},
		{name: "1xrtt", tech: AccessTechnology1xrtt, want: "CDMA1X"},
		{name: "none", tech: 0, want: ""},
		{name: "pots", tech: AccessTechnologyPots, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.tech.Token())
		})
	}
}

func TestAccessTechnology_Bits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AccessTechnology(1<<14), AccessTechnologyLte)
	assert.Equal(t, AccessTechnology(1<<15), AccessTechnology5gnr)
	assert.Equal(t, AccessTechnology(1<<17), AccessTechnologyLteNbIot)
}

func TestRegistrationState_Registered(t *testing.T) {
	t.Parallel()

	assert.True(t, Modem3gppRegistrationStateHome.Registered())
	assert.True(t, Modem3gppRegistrationStateRoaming.Registered())
	assert.False(t, Modem3gppRegistrationStateSearching.Registered())
	assert.False(t, Modem3gppRegistrationStateDenied.Registered())
}
