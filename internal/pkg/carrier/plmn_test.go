package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclares(t *testing.T) {
	t.Parallel()

	partners := []PLMN{{MCC: "208", MNC: "01"}}
	assert.True(t, Declares(partners, "208", "01"))
	assert.False(t, Declares(partners, "208", "02"))
	assert.False(t, Declares(partners, "209", "01"))
	assert.False(t, Declares(nil, "208", "01"))

	duplicated := []PLMN{{MCC: "208", MNC: "15"}, {MCC: "208", MNC: "01"}, {MCC: "208", MNC: "01"}}
	assert.True(t, Declares(duplicated, "208", "01"))
	assert.False(t, Declares(duplicated, "208", "20"))
}

func TestParsePLMNs(t *testing.T) {
	t.Parallel()

	got := ParsePLMNs([]string{"20801", "1234", "310260", "", "20815"})
	assert.Equal(t, []PLMN{
		{MCC: "208", MNC: "01"},
		{MCC: "310", MNC: "260"},
		{MCC: "208", MNC: "15"},
	}, got)
	assert.Equal(t, "31026", PLMN{MCC: "310", MNC: "26"}.String())
}

func TestMinimalSetupEligible(t *testing.T) {
	t.Parallel()

	assert.True(t, MinimalSetupEligible(nil))
	assert.True(t, MinimalSetupEligible([]string{"20815"}))
	assert.False(t, MinimalSetupEligible([]string{"20815", "20801"}))
	assert.False(t, MinimalSetupEligible([]string{"20815", "bogus"}))
}
