package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fwojciec/phytocure"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := phytocure.HistoryFilter{Limit: c.Limit}
	if c.Plant != "" {
		filter.PlantName = &c.Plant
	}

	entries, err := deps.History.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", phytocure.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No lookups recorded. Use 'phytocure search' to look up a plant.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d compounds\t%s\t%s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.PlantName,
			e.CompoundCount,
			e.CompoundsHash,
			strings.Join(e.Diseases, ", "),
		)
	}
	return tw.Flush()
}

// Run executes the forget command.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	target := "all lookups"
	var filter phytocure.HistoryFilter
	if c.Plant != "" {
		target = fmt.Sprintf("lookups of %q", c.Plant)
		filter.PlantName = &c.Plant
	}

	if !c.Force {
		fmt.Fprintf(deps.Stderr, "This will delete %s. Use --force to confirm.\n", target)
		return fmt.Errorf("deletion requires --force flag")
	}

	n, err := deps.History.DeleteEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", phytocure.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d lookup(s)\n", n)
	return nil
}
