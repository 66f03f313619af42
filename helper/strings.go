package helper

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

// NormalizeFilename ensures only safe characters remain in an uploaded
// attachment name before it becomes an object storage key.
func NormalizeFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	// replace spaces with underscores
	base = strings.ReplaceAll(base, " ", "_")

	base = unsafeChars.ReplaceAllString(base, "")

	// lowercase for consistency
	base = strings.ToLower(base)

	return base + ext
}

// FormatSize renders a byte count the way the mock data does ("2.5KB").
func FormatSize(n int64) string {
	kb := float64(n) / 1024
	if kb < 0.1 {
		kb = 0.1
	}
	return strconv.FormatFloat(kb, 'f', 1, 64) + "KB"
}
