package phytocure

import "context"

// Compound is a phytochemical reported to occur in a plant.
type Compound struct {
	Name            string `json:"name"`
	PercentageRange string `json:"percentageRange"`
}

// CompoundSource looks up the compounds reported for a plant.
type CompoundSource interface {
	// FetchCompounds returns the compounds reported for plantName in the
	// order the source lists them. Duplicates are kept.
	// Returns EUNAVAILABLE if the source cannot be reached or parsed.
	FetchCompounds(ctx context.Context, plantName string) ([]*Compound, error)
}

// CompoundNames returns the names of compounds in order.
func CompoundNames(compounds []*Compound) []string {
	names := make([]string, 0, len(compounds))
	for _, c := range compounds {
		names = append(names, c.Name)
	}
	return names
}
