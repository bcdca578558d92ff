// Package pfaf looks up plant usage information in the Plants For A Future
// database.
package pfaf

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/phytocure"
)

// DefaultBaseURL is the PFAF plant search page.
const DefaultBaseURL = "https://pfaf.org/user/Search.aspx"

// Element selectors on a PFAF plant page.
const (
	commonNameSelector = "span#ctl00_ContentPlaceHolder1_lblCommon"
	usesSelector       = "div#uses"
)

// Ensure Source implements phytocure.UsageSource at compile time.
var _ phytocure.UsageSource = (*Source)(nil)

// Source fetches usage information from PFAF.
type Source struct {
	fetcher phytocure.Fetcher
	baseURL string
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the search page.
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

// SearchURL returns the page URL for plantName. The name is escaped so
// reserved characters cannot alter the request.
func (s *Source) SearchURL(plantName string) string {
	return s.baseURL + "?LatinName=" + url.QueryEscape(plantName)
}

// FetchUsage performs one request and extracts the common name and uses.
func (s *Source) FetchUsage(ctx context.Context, plantName string) (*phytocure.Usage, error) {
	html, err := s.fetcher.Fetch(ctx, s.SearchURL(plantName))
	if err != nil {
		return nil, phytocure.Errorf(phytocure.EUNAVAILABLE, "%v", err)
	}

	usage, err := ParseUsage(html)
	if err != nil {
		return nil, phytocure.Errorf(phytocure.EUNAVAILABLE, "%v", err)
	}
	return usage, nil
}

// ParseUsage extracts usage information from a PFAF plant page.
// Missing elements leave the corresponding field empty.
func ParseUsage(html string) (*phytocure.Usage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, phytocure.Errorf(phytocure.EINVALID, "failed to parse HTML: %v", err)
	}

	usage := &phytocure.Usage{}
	if sel := doc.Find(commonNameSelector).First(); sel.Length() > 0 {
		usage.CommonName = strings.TrimSpace(sel.Text())
	}
	if sel := doc.Find(usesSelector).First(); sel.Length() > 0 {
		usage.Uses = strings.TrimSpace(sel.Text())
	}
	return usage, nil
}
