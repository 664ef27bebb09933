package service

import (
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// generateStoredName builds the blob key for a new upload: a millisecond
// timestamp prefix followed by the client's filename stripped to its base name
// with whitespace runs collapsed to underscores. The prefix keeps concurrent
// uploads of identically-named files from colliding; the sanitization keeps
// hostile path characters out of the blob store.
func generateStoredName(prefix, originalName string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	base = whitespaceRun.ReplaceAllString(base, "_")
	return path.Join(prefix, strconv.FormatInt(now.UnixMilli(), 10)+"-"+base)
}
