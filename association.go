package phytocure

import "strings"

// NoAssociation is returned by Predict when no compound maps to a disease.
const NoAssociation = "No strong association found."

// MaxPredictions is the maximum number of diseases Predict returns.
const MaxPredictions = 5

// Association links a compound to the diseases it is traditionally
// used against.
type Association struct {
	Compound string   `yaml:"compound"`
	Diseases []string `yaml:"diseases"`
}

// AssociationTable maps compound names to diseases. It is immutable once
// built; all accessors return copies.
type AssociationTable struct {
	entries []Association
	index   map[string]int
}

// NewAssociationTable builds a table from entries, preserving their order.
// Compound names are matched exactly and must be unique and non-empty.
func NewAssociationTable(entries []Association) (*AssociationTable, error) {
	t := &AssociationTable{
		entries: make([]Association, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Compound) == "" {
			return nil, Errorf(EINVALID, "association compound name required")
		}
		if _, ok := t.index[e.Compound]; ok {
			return nil, Errorf(EINVALID, "duplicate association for compound %q", e.Compound)
		}
		t.index[e.Compound] = len(t.entries)
		t.entries = append(t.entries, Association{
			Compound: e.Compound,
			Diseases: append([]string(nil), e.Diseases...),
		})
	}
	return t, nil
}

// DefaultAssociations returns the built-in association table.
func DefaultAssociations() *AssociationTable {
	t, err := NewAssociationTable([]Association{
		{Compound: "Curcumin", Diseases: []string{"Arthritis", "Diabetes", "Cancer"}},
		{Compound: "Epigallocatechin gallate", Diseases: []string{"Heart disease", "Obesity"}},
		{Compound: "Quercetin", Diseases: []string{"Allergies", "Inflammation"}},
		{Compound: "Azadirachtin", Diseases: []string{"Malaria", "Skin infection"}},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of compounds in the table.
func (t *AssociationTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table's entries in order.
func (t *AssociationTable) Entries() []Association {
	out := make([]Association, len(t.entries))
	for i, e := range t.entries {
		out[i] = Association{
			Compound: e.Compound,
			Diseases: append([]string(nil), e.Diseases...),
		}
	}
	return out
}

// Diseases returns the diseases associated with compound, or nil.
func (t *AssociationTable) Diseases(compound string) []string {
	i, ok := t.index[compound]
	if !ok {
		return nil
	}
	return append([]string(nil), t.entries[i].Diseases...)
}

// Predict returns up to MaxPredictions distinct diseases associated with
// the given compound names. Diseases are ordered by first occurrence: input
// order of the compounds, then table order within a compound. When nothing
// matches it returns a single-element slice holding NoAssociation.
func (t *AssociationTable) Predict(compoundNames []string) []string {
	seen := make(map[string]bool)
	var diseases []string
	for _, name := range compoundNames {
		i, ok := t.index[name]
		if !ok {
			continue
		}
		for _, d := range t.entries[i].Diseases {
			if seen[d] {
				continue
			}
			seen[d] = true
			diseases = append(diseases, d)
		}
	}

	if len(diseases) == 0 {
		return []string{NoAssociation}
	}
	if len(diseases) > MaxPredictions {
		diseases = diseases[:MaxPredictions]
	}
	return diseases
}

// PredictDiseases predicts diseases using the default association table.
func PredictDiseases(compoundNames []string) []string {
	return defaultTable.Predict(compoundNames)
}

var defaultTable = DefaultAssociations()
