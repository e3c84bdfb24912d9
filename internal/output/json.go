// Package output persists profiling results to JSON files and renders
// console summaries.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// filenameTimeLayout matches the historical output naming scheme.
const filenameTimeLayout = "20060102_150405"

// unsafeFilenameRe matches characters stripped from company names when
// building filenames.
var unsafeFilenameRe = regexp.MustCompile(`[^a-z0-9_-]+`)

// Writer writes one JSON file per profiling run into a directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write persists the result as indented JSON named
// <company>_<timestamp>.json and returns the file path.
func (w *Writer) Write(result *domain.Result) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json",
		SafeFilename(result.Identity.CompanyName),
		time.Now().Format(filenameTimeLayout),
	)
	path := filepath.Join(w.dir, name)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return "", fmt.Errorf("write result file: %w", writeErr)
	}

	return path, nil
}

// SafeFilename lowers a company name into a filesystem-safe slug.
func SafeFilename(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = unsafeFilenameRe.ReplaceAllString(slug, "")
	slug = strings.Trim(slug, "_-")

	if slug == "" {
		return "profile"
	}

	return slug
}
