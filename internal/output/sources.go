// internal/output/sources.go
package output

import (
	"fmt"
	"io"
	"strings"

	"lulcgen/internal/jsonutil"
	"lulcgen/internal/yearrange"
	"lulcgen/pkg/api"
)

const sourceTypeVector = "vector"

// ArchiveURL is the pmtiles:// URL of the archive holding bucket b.
func ArchiveURL(baseURL string, b yearrange.Bucket) string {
	return "pmtiles://" + strings.TrimRight(baseURL, "/") + "/" + b.ArchiveName()
}

// ToAPISource converts a bucket to its style source entry.
func ToAPISource(b yearrange.Bucket, baseURL string) api.SourceV1 {
	return api.SourceV1{Type: sourceTypeVector, URL: ArchiveURL(baseURL, b)}
}

// WriteSources writes one `"lulc_<start>_<end>": {...}` member per bucket,
// oldest first, separated by "," lines. The members are written without the
// braces of their enclosing object so they can be pasted into "sources".
// It returns the number of members written.
func WriteSources(w io.Writer, cfg Config) (int, error) {
	log := cfg.logger()
	indent := jsonutil.Indent(cfg.Indent)
	list := newFragmentList(w)
	written := 0

	for _, b := range cfg.buckets() {
		if err := list.next(); err != nil {
			return written, err
		}
		src := ToAPISource(b, cfg.BaseURL)
		if err := jsonutil.EncodeMember(w, b.SourceKey(), src, indent); err != nil {
			return written, fmt.Errorf("write source %s: %w", b.SourceKey(), err)
		}
		written++
		log.WithField("source", b.SourceKey()).Debug("source written")
	}
	return written, nil
}
