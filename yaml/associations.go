// Package yaml loads and writes association tables as YAML documents.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/phytocure"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of an association table:
//
//	associations:
//	  - compound: Curcumin
//	    diseases: [Arthritis, Diabetes, Cancer]
type document struct {
	Associations []phytocure.Association `yaml:"associations"`
}

// LoadAssociations reads an association table from r. Entry order in the
// document is preserved.
func LoadAssociations(r io.Reader) (*phytocure.AssociationTable, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, phytocure.Errorf(phytocure.EINVALID, "association file is empty")
		}
		return nil, phytocure.Errorf(phytocure.EINVALID, "invalid association file: %v", err)
	}
	if len(doc.Associations) == 0 {
		return nil, phytocure.Errorf(phytocure.EINVALID, "association file has no entries")
	}
	return phytocure.NewAssociationTable(doc.Associations)
}

// LoadAssociationsFile reads an association table from the file at path.
func LoadAssociationsFile(path string) (*phytocure.AssociationTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open association file: %w", err)
	}
	defer f.Close()

	return LoadAssociations(f)
}

// WriteAssociations writes table to w in the layout LoadAssociations reads.
func WriteAssociations(w io.Writer, table *phytocure.AssociationTable) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Associations: table.Entries()}); err != nil {
		return err
	}
	return enc.Close()
}
