package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/phytocure"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	msgs := deps.Translations.Messages(deps.Lang)

	plants := c.Plants
	if len(plants) == 0 {
		name, err := prompt(deps.Stdin, deps.Stdout, msgs.Placeholder)
		if err != nil {
			return err
		}
		plants = []string{name}
	}

	for i, plant := range plants {
		report, err := deps.Searcher.Search(deps.Ctx, plant)
		if report == nil {
			if phytocure.ErrorCode(err) == phytocure.EINVALID {
				fmt.Fprintf(deps.Stderr, "warning: %s\n", phytocure.ErrorMessage(err))
			} else {
				fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			}
			return err
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", err)
		}

		title := ""
		if i == 0 {
			title = msgs.Title
		}
		if err := c.render(deps, report, title); err != nil {
			return err
		}
	}

	return nil
}

// render writes one report in the selected format, to a file when an
// output directory is configured.
func (c *SearchCmd) render(deps *Dependencies, report *phytocure.Report, title string) error {
	var (
		out string
		err error
	)
	switch c.Format {
	case "html":
		out, err = phytocure.RenderHTML(report, title)
	case "markdown":
		out, err = phytocure.RenderMarkdown(report, title, deps.Converter)
	default:
		var b strings.Builder
		if title != "" {
			fmt.Fprintf(&b, "%s\n\n", title)
		}
		fmt.Fprintf(&b, "== %s ==\n", report.PlantName)
		b.WriteString(phytocure.FormatReport(report, ""))
		out = b.String()
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	if deps.Reports != nil {
		path, err := deps.Reports.WriteReport(deps.Ctx, report, c.Format, out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", phytocure.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
		return nil
	}

	fmt.Fprint(deps.Stdout, out)
	return nil
}

// prompt writes label and reads a single line from r.
func prompt(r io.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprintf(w, "%s ", label)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read plant name: %w", err)
	}
	return strings.TrimSpace(line), nil
}
