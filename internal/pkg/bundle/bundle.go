package bundle

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"howett.net/plist"
)

type statusBarImage struct {
	StatusBarCarrierName string `plist:"StatusBarCarrierName"`
	CarrierName          string `plist:"CarrierName"`
}

type document struct {
	StatusBarImages []statusBarImage `plist:"StatusBarImages"`
	SupportedPLMNs  []any            `plist:"SupportedPLMNs"`
}

// Reader reads carrier and operator config files from a preferences
// directory. Each file is a link into the carrier bundle of the SIM or
// network it describes.
type Reader struct {
	dir string
}

func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

func (r *Reader) Blob(name string) carrier.Blob {
	path := filepath.Join(r.dir, name)
	target, err := os.Readlink(path)
	if err != nil {
		slog.Debug("unable to resolve config file", "path", path, "error", err)
		return carrier.Blob{}
	}
	// Target keeps the link text, only the read follows the resolved path.
	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(path), resolved)
	}
	content, err := os.ReadFile(resolved)
	if err != nil {
		slog.Debug("unable to read config file", "path", resolved, "error", err)
		return carrier.Blob{Target: target}
	}
	b, err := Decode(content)
	if err != nil {
		slog.Debug("unable to decode config file", "path", resolved, "error", err)
		return carrier.Blob{Target: target}
	}
	return carrier.Blob{Target: target, Bundle: b}
}

// Decode decodes the content of a config file. Every SupportedPLMNs entry is
// kept so the entry count stays exact, entries that are not strings become
// empty strings.
func Decode(content []byte) (*carrier.Bundle, error) {
	var doc document
	if _, err := plist.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	b := &carrier.Bundle{}
	if len(doc.StatusBarImages) > 0 {
		b.StatusBarName = doc.StatusBarImages[0].StatusBarCarrierName
		b.CarrierName = doc.StatusBarImages[0].CarrierName
	}
	if doc.SupportedPLMNs != nil {
		b.SupportedPLMNs = make([]string, len(doc.SupportedPLMNs))
		for i, entry := range doc.SupportedPLMNs {
			if s, ok := entry.(string); ok {
				b.SupportedPLMNs[i] = s
			}
		}
	}
	return b, nil
}
