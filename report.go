package phytocure

import "context"

// Report is the result of looking up one plant.
type Report struct {
	PlantName string
	Compounds []*Compound
	Usage     *Usage
	Diseases  []string

	// CompoundErr is set when the compound source failed. The lookup
	// still completes with no compounds.
	CompoundErr error
}

// Searcher looks up everything known about a plant.
type Searcher interface {
	// Search fetches compounds and usage for plantName and predicts
	// associated diseases.
	// Returns EINVALID if plantName is blank.
	Search(ctx context.Context, plantName string) (*Report, error)
}

// ReportWriter saves rendered reports.
type ReportWriter interface {
	// WriteReport stores content rendered from r in format ("text",
	// "html" or "markdown") and returns the location it was written to.
	WriteReport(ctx context.Context, r *Report, format, content string) (string, error)
}
