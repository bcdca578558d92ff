// Package knapsack looks up plant compounds in the KNApSAcK
// species-metabolite database.
package knapsack

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/phytocure"
)

// DefaultBaseURL is the KNApSAcK search servlet.
const DefaultBaseURL = "https://kanaya.nuap.jp/servlet/SearchServlet"

// resultsTableSelector matches the search results table.
const resultsTableSelector = "table.list_table"

// Ensure Source implements phytocure.CompoundSource at compile time.
var _ phytocure.CompoundSource = (*Source)(nil)

// Source fetches compound lists from KNApSAcK.
type Source struct {
	fetcher phytocure.Fetcher
	baseURL string
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the search endpoint.
func WithBaseURL(u string) Option {
	return func(s *Source) {
		s.baseURL = u
	}
}

// NewSource creates a new Source that retrieves pages with fetcher.
func NewSource(fetcher phytocure.Fetcher, opts ...Option) *Source {
	s := &Source{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchURL returns the search URL for plantName.
func (s *Source) SearchURL(plantName string) string {
	params := url.Values{
		"action": {"search"},
		"query":  {plantName},
		"type":   {"plant"},
	}
	return s.baseURL + "?" + params.Encode()
}

// FetchCompounds performs one search request and parses the result table.
// Any failure is reported as EUNAVAILABLE; no retry is attempted.
func (s *Source) FetchCompounds(ctx context.Context, plantName string) ([]*phytocure.Compound, error) {
	html, err := s.fetcher.Fetch(ctx, s.SearchURL(plantName))
	if err != nil {
		return nil, phytocure.Errorf(phytocure.EUNAVAILABLE, "%v", err)
	}

	compounds, err := ParseCompounds(html)
	if err != nil {
		return nil, phytocure.Errorf(phytocure.EUNAVAILABLE, "%v", err)
	}
	return compounds, nil
}

// ParseCompounds extracts compounds from a KNApSAcK results page.
// Only the first results table is read. Its first row is the header; each
// following row with at least two cells yields a compound from the first
// two cells. A page without a results table yields an empty slice.
func ParseCompounds(html string) ([]*phytocure.Compound, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, phytocure.Errorf(phytocure.EINVALID, "failed to parse HTML: %v", err)
	}

	compounds := []*phytocure.Compound{}

	table := doc.Find(resultsTableSelector).First()
	if table.Length() == 0 {
		return compounds, nil
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}
		compounds = append(compounds, &phytocure.Compound{
			Name:            strings.TrimSpace(cols.Eq(0).Text()),
			PercentageRange: strings.TrimSpace(cols.Eq(1).Text()),
		})
	})

	return compounds, nil
}
