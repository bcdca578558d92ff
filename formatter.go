package phytocure

import (
	"bytes"
	"html/template"
	"strings"
	"text/tabwriter"
)

// Section headings and info messages shared by all report formats.
const (
	HeadingCompounds = "🧬 Bioactive Compounds"
	HeadingUsage     = "🌿 Uses & Properties"
	HeadingDiseases  = "🧠 AI-Predicted Diseases"

	MessageNoCompounds = "⚠️ No compound data found in KNApSAcK database."
	MessageNoUsage     = "ℹ️ No additional information from Dr. Duke's database."
)

// CompoundErrorMessage formats the diagnostic shown when the compound
// source fails.
func CompoundErrorMessage(err error) string {
	return "Error fetching from KNApSAcK: " + err.Error()
}

// FormatDiseases joins predicted diseases for display.
func FormatDiseases(diseases []string) string {
	return strings.Join(diseases, ", ")
}

// FormatUsageValue truncates a usage value to MaxFieldLength characters,
// marking a cut with an ellipsis.
func FormatUsageValue(v string) string {
	t := Truncate(v, MaxFieldLength)
	if len(t) < len(v) {
		return t + "..."
	}
	return t
}

// FormatReport renders a report as plain text with three blocks:
// compounds, usage and predicted diseases. An empty title is omitted.
func FormatReport(r *Report, title string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	if r.CompoundErr != nil {
		b.WriteString("error: ")
		b.WriteString(CompoundErrorMessage(r.CompoundErr))
		b.WriteString("\n")
	}
	if len(r.Compounds) > 0 {
		b.WriteString(HeadingCompounds)
		b.WriteString("\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		tw.Write([]byte("Compound\tPercentage Range\n"))
		for _, c := range r.Compounds {
			tw.Write([]byte(c.Name + "\t" + c.PercentageRange + "\n"))
		}
		tw.Flush()
	} else {
		b.WriteString(MessageNoCompounds)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if fields := r.Usage.Fields(); len(fields) > 0 {
		b.WriteString(HeadingUsage)
		b.WriteString("\n")
		for _, f := range fields {
			b.WriteString(f.Key)
			b.WriteString(": ")
			b.WriteString(FormatUsageValue(f.Value))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(MessageNoUsage)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(HeadingDiseases)
	b.WriteString("\n")
	b.WriteString(FormatDiseases(r.Diseases))
	b.WriteString("\n")

	return b.String()
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"usage":    FormatUsageValue,
	"diseases": FormatDiseases,
	"errmsg":   CompoundErrorMessage,
}).Parse(`<h1>{{.Title}}</h1>
{{with .Report}}{{if .CompoundErr}}<p class="error">{{errmsg .CompoundErr}}</p>
{{end}}{{if .Compounds}}<h2>{{$.HeadingCompounds}}</h2>
<table>
<thead><tr><th>Compound</th><th>Percentage Range</th></tr></thead>
<tbody>
{{range .Compounds}}<tr><td>{{.Name}}</td><td>{{.PercentageRange}}</td></tr>
{{end}}</tbody>
</table>
{{else}}<p>{{$.MessageNoCompounds}}</p>
{{end}}{{with .Usage.Fields}}<h2>{{$.HeadingUsage}}</h2>
{{range .}}<p><strong>{{.Key}}:</strong> {{usage .Value}}</p>
{{end}}{{else}}<p>{{$.MessageNoUsage}}</p>
{{end}}<h2>{{$.HeadingDiseases}}</h2>
<p>{{diseases .Diseases}}</p>
{{end}}`))

// RenderHTML renders a report as an HTML fragment. Text taken from the
// sources is escaped.
func RenderHTML(r *Report, title string) (string, error) {
	if r.Usage == nil {
		rr := *r
		rr.Usage = &Usage{}
		r = &rr
	}

	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, struct {
		Title              string
		Report             *Report
		HeadingCompounds   string
		HeadingUsage       string
		HeadingDiseases    string
		MessageNoCompounds string
		MessageNoUsage     string
	}{
		Title:              title,
		Report:             r,
		HeadingCompounds:   HeadingCompounds,
		HeadingUsage:       HeadingUsage,
		HeadingDiseases:    HeadingDiseases,
		MessageNoCompounds: MessageNoCompounds,
		MessageNoUsage:     MessageNoUsage,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderMarkdown renders a report as HTML and converts it with conv.
func RenderMarkdown(r *Report, title string, conv Converter) (string, error) {
	html, err := RenderHTML(r, title)
	if err != nil {
		return "", err
	}
	return conv.Convert(html)
}
