// Package fs saves rendered reports as files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/phytocure"
	"gopkg.in/yaml.v3"
)

var extensions = map[string]string{
	"text":     ".txt",
	"html":     ".html",
	"markdown": ".md",
}

// PlantToPath converts a plant name to a relative file name for format.
// Example: "Curcuma longa", "markdown" → curcuma-longa.md
func PlantToPath(plantName, format string) (string, error) {
	ext, ok := extensions[format]
	if !ok {
		return "", phytocure.Errorf(phytocure.EINVALID, "unknown report format %q", format)
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plantName) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			dash = true
		}
	}
	if b.Len() == 0 {
		return "", phytocure.Errorf(phytocure.EINVALID, "plant name %q has no usable characters", plantName)
	}

	return b.String() + ext, nil
}

type frontmatter struct {
	Plant     string    `yaml:"plant"`
	Searched  time.Time `yaml:"searched"`
	Compounds int       `yaml:"compounds"`
	Diseases  []string  `yaml:"diseases"`
}

// FormatMarkdown prefixes a markdown report with YAML frontmatter.
func FormatMarkdown(r *phytocure.Report, content string, searched time.Time) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Plant:     r.PlantName,
		Searched:  searched.UTC(),
		Compounds: len(r.Compounds),
		Diseases:  r.Diseases,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(content)
	return b.String(), nil
}

// Ensure Writer implements phytocure.ReportWriter at compile time.
var _ phytocure.ReportWriter = (*Writer)(nil)

// Writer writes reports as files to a directory.
type Writer struct {
	baseDir string

	// Now returns the timestamp recorded in markdown frontmatter.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// WriteReport writes content to <baseDir>/<plant-slug>.<ext>, replacing
// any earlier report for the same plant and format.
func (w *Writer) WriteReport(ctx context.Context, r *phytocure.Report, format, content string) (string, error) {
	relPath, err := PlantToPath(r.PlantName, format)
	if err != nil {
		return "", err
	}

	if format == "markdown" {
		content, err = FormatMarkdown(r, content, w.Now())
		if err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
