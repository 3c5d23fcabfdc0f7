package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const freeCarrier = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>StatusBarImages</key>
	<array>
		<dict>
			<key>StatusBarCarrierName</key>
			<string>Free</string>
			<key>CarrierName</key>
			<string>Free Mobile</string>
		</dict>
	</array>
	<key>SupportedPLMNs</key>
	<array>
		<string>20815</string>
		<string>20801</string>
		<integer>7</integer>
	</array>
</dict>
</plist>`

const bareOperator = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>Version</key>
	<string>42</string>
</dict>
</plist>`

func seed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bundles := filepath.Join(dir, "Carrier Bundles", "20815.bundle")
	require.NoError(t, os.MkdirAll(bundles, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundles, "carrier.plist"), []byte(freeCarrier), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(bundles, "operator.plist"), []byte(bareOperator), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(bundles, "broken.plist"), []byte("<plist><dict><key>"), 0o644))

	prefs := filepath.Join(dir, "Preferences")
	require.NoError(t, os.MkdirAll(prefs, 0o755))
	require.NoError(t, os.Symlink(filepath.Join(bundles, "carrier.plist"), filepath.Join(prefs, "com.apple.carrier_1.plist")))
	require.NoError(t, os.Symlink("../Carrier Bundles/20815.bundle/operator.plist", filepath.Join(prefs, "com.apple.operator_1.plist")))
	require.NoError(t, os.Symlink(filepath.Join(bundles, "broken.plist"), filepath.Join(prefs, "com.apple.carrier_2.plist")))
	require.NoError(t, os.Symlink(filepath.Join(bundles, "missing.plist"), filepath.Join(prefs, "com.apple.operator_2.plist")))
	require.NoError(t, os.WriteFile(filepath.Join(prefs, "com.apple.carrier.plist"), []byte(freeCarrier), 0o644))
	return prefs
}

func TestReader_Blob(t *testing.T) {
	t.Parallel()

	prefs := seed(t)
	r := NewReader(prefs)

	b := r.Blob("com.apple.carrier_1.plist")
	assert.True(t, strings.HasSuffix(b.Target, "/20815.bundle/carrier.plist"), b.Target)
	require.NotNil(t, b.Bundle)
	assert.Equal(t, "Free", b.Bundle.StatusBarName)
	assert.Equal(t, "Free Mobile", b.Bundle.CarrierName)
	assert.Equal(t, []string{"20815", "20801", ""}, b.Bundle.SupportedPLMNs)

	b = r.Blob("com.apple.operator_1.plist")
	assert.Equal(t, "../Carrier Bundles/20815.bundle/operator.plist", b.Target)
	require.NotNil(t, b.Bundle)
	assert.Empty(t, b.Bundle.StatusBarName)
	assert.Nil(t, b.Bundle.SupportedPLMNs)
}

func TestReader_BlobRelativeTargetDigits(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bundles := filepath.Join(dir, "bundles", "20815.bundle")
	require.NoError(t, os.MkdirAll(bundles, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundles, "carrier.plist"), []byte(freeCarrier), 0o644))
	prefs := filepath.Join(dir, "prefs1")
	require.NoError(t, os.MkdirAll(prefs, 0o755))
	require.NoError(t, os.Symlink("../bundles/20815.bundle/carrier.plist", filepath.Join(prefs, "com.apple.carrier.plist")))

	b := NewReader(prefs).Blob("com.apple.carrier.plist")
	assert.Equal(t, "../bundles/20815.bundle/carrier.plist", b.Target)
	require.NotNil(t, b.Bundle)
	assert.Equal(t, "Free", b.Bundle.StatusBarName)
	assert.Equal(t, "20815", carrier.ParseDigits(b.Target))
}

func TestReader_BlobFailures(t *testing.T) {
	t.Parallel()

	prefs := seed(t)
	r := NewReader(prefs)

	b := r.Blob("com.apple.carrier_2.plist")
	assert.NotEmpty(t, b.Target)
	assert.Nil(t, b.Bundle)

	b = r.Blob("com.apple.operator_2.plist")
	assert.NotEmpty(t, b.Target)
	assert.Nil(t, b.Bundle)

	assert.Equal(t, carrier.Blob{}, r.Blob("com.apple.carrier.plist"))
	assert.Equal(t, carrier.Blob{}, r.Blob("com.apple.operator.plist"))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	b, err := Decode([]byte(freeCarrier))
	require.NoError(t, err)
	assert.False(t, carrier.MinimalSetupEligible(b.SupportedPLMNs))
	assert.Len(t, carrier.ParsePLMNs(b.SupportedPLMNs), 2)

	_, err = Decode([]byte("<plist><dict><key>"))
	assert.Error(t, err)
}
