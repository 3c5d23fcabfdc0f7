package output

import (
	"bytes"
	"testing"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New("table", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New("json", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Format(carrier.Identity{MCC: "208", MNC: "15", Role: carrier.Secondary}))

	assert.Contains(t, buf.String(), `"mcc": "208"`)
	assert.Contains(t, buf.String(), `"role": "secondary"`)
}

func TestYAMLFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New("yaml", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Format(&profile.Profile{
		MCC:             "208",
		MNC:             "15",
		TabletOverrides: map[string]profile.Value{"stms": profile.IntValue(3)},
	}))

	assert.Contains(t, buf.String(), `mcc: "208"`)
	assert.Contains(t, buf.String(), "stms: 3")
}
