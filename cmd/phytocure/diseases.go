package main

import (
	"fmt"
	"strings"

	phytoyaml "github.com/fwojciec/phytocure/yaml"
)

// Run executes the diseases command.
func (c *DiseasesCmd) Run(deps *Dependencies) error {
	if c.YAML {
		return phytoyaml.WriteAssociations(deps.Stdout, deps.Associations)
	}

	for _, a := range deps.Associations.Entries() {
		fmt.Fprintf(deps.Stdout, "%s: %s\n", a.Compound, strings.Join(a.Diseases, ", "))
	}
	return nil
}
