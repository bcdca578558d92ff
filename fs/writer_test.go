package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/phytocure"
	"github.com/fwojciec/phytocure/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		plant   string
		format  string
		want    string
		wantErr bool
	}{
		{
			name:   "binomial name",
			plant:  "Curcuma longa",
			format: "markdown",
			want:   "curcuma-longa.md",
		},
		{
			name:   "text format",
			plant:  "Camellia sinensis",
			format: "text",
			want:   "camellia-sinensis.txt",
		},
		{
			name:   "html format",
			plant:  "Azadirachta indica",
			format: "html",
			want:   "azadirachta-indica.html",
		},
		{
			name:   "collapses separators and trims",
			plant:  "  Allium   sativum var. ophioscorodon ",
			format: "text",
			want:   "allium-sativum-var-ophioscorodon.txt",
		},
		{
			name:   "drops path characters",
			plant:  "../Aloe/vera",
			format: "text",
			want:   "aloevera.txt",
		},
		{
			name:    "no usable characters",
			plant:   "???",
			format:  "text",
			wantErr: true,
		},
		{
			name:    "unknown format",
			plant:   "Curcuma longa",
			format:  "pdf",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.PlantToPath(tt.plant, tt.format)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, phytocure.EINVALID, phytocure.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	r := &phytocure.Report{
		PlantName: "Curcuma longa",
		Compounds: []*phytocure.Compound{{Name: "Curcumin", PercentageRange: "2-5%"}},
		Diseases:  []string{"Arthritis", "Diabetes"},
	}

	got, err := fs.FormatMarkdown(r, "# Report\n", time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	want := `---
plant: Curcuma longa
searched: 2025-01-08T10:00:00Z
compounds: 1
diseases:
    - Arthritis
    - Diabetes
---

# Report
`
	assert.Equal(t, want, got)
}

func TestWriter_WriteReport(t *testing.T) {
	t.Parallel()

	report := &phytocure.Report{
		PlantName: "Curcuma longa",
		Diseases:  []string{phytocure.NoAssociation},
	}

	t.Run("writes text report as is", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		path, err := w.WriteReport(context.Background(), report, "text", "plain report\n")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "curcuma-longa.txt"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "plain report\n", string(content))
	})

	t.Run("adds frontmatter to markdown", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		w.Now = func() time.Time { return time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC) }

		path, err := w.WriteReport(context.Background(), report, "markdown", "# Report\n")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "plant: Curcuma longa\n")
		assert.Contains(t, string(content), "searched: 2025-01-08T10:00:00Z\n")
		assert.Contains(t, string(content), "---\n\n# Report\n")
	})

	t.Run("creates base directory", func(t *testing.T) {
		t.Parallel()

		baseDir := filepath.Join(t.TempDir(), "reports", "2025")
		w := fs.NewWriter(baseDir)

		path, err := w.WriteReport(context.Background(), report, "html", "<p>report</p>")

		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("replaces earlier report", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteReport(context.Background(), report, "text", "first")
		require.NoError(t, err)
		path, err := w.WriteReport(context.Background(), report, "text", "second")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})

	t.Run("rejects unusable plant name", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteReport(context.Background(), &phytocure.Report{PlantName: "!!"}, "text", "x")

		require.Error(t, err)
	})
}
