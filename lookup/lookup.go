// Package lookup combines the compound source, the usage source and the
// association table into a single plant search.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/phytocure"
)

// Ensure Service implements phytocure.Searcher at compile time.
var _ phytocure.Searcher = (*Service)(nil)

// Service performs plant lookups.
//
// Compounds and Usage are required. Associations defaults to
// phytocure.DefaultAssociations when nil. History is optional; when set,
// each completed lookup is recorded.
type Service struct {
	Compounds    phytocure.CompoundSource
	Usage        phytocure.UsageSource
	Associations *phytocure.AssociationTable
	History      phytocure.HistoryService
}

// Search looks up plantName. The compound source is queried first, then the
// usage source; the two calls run sequentially. A compound source failure is
// recorded on the report and the lookup continues with no compounds. Usage
// failures are discarded.
func (s *Service) Search(ctx context.Context, plantName string) (*phytocure.Report, error) {
	plantName = strings.TrimSpace(plantName)
	if plantName == "" {
		return nil, phytocure.Errorf(phytocure.EINVALID, "Please enter a plant name.")
	}

	report := &phytocure.Report{PlantName: plantName}

	compounds, err := s.Compounds.FetchCompounds(ctx, plantName)
	if err != nil {
		report.CompoundErr = err
		compounds = nil
	}
	report.Compounds = compounds

	report.Usage = phytocure.LookupUsage(ctx, s.Usage, plantName)

	table := s.Associations
	if table == nil {
		table = phytocure.DefaultAssociations()
	}
	report.Diseases = table.Predict(phytocure.CompoundNames(compounds))

	if s.History != nil {
		if err := s.History.CreateEntry(ctx, phytocure.NewHistoryEntry(report), compounds); err != nil {
			return report, fmt.Errorf("failed to record history: %w", err)
		}
	}

	return report, nil
}
