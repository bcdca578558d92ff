package knapsack_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/phytocure"
	phytohttp "github.com/fwojciec/phytocure/http"
	"github.com/fwojciec/phytocure/knapsack"
	"github.com/fwojciec/phytocure/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<!DOCTYPE html>
<html>
<body>
<table class="nav"><tr><td>Home</td><td>Search</td></tr></table>
<table class="list_table">
	<tr><th>Metabolite</th><th>Percentage</th></tr>
	<tr><td>  Curcumin </td><td> 2-5% </td></tr>
	<tr><td>Demethoxycurcumin</td><td>
		0.5-1%
	</td></tr>
	<tr><td>Curcumin</td><td>1%</td><td>extra</td></tr>
	<tr><td>orphan cell</td></tr>
</table>
<table class="list_table">
	<tr><th>Other</th><th>Table</th></tr>
	<tr><td>Ignored</td><td>0%</td></tr>
</table>
</body>
</html>`

func TestParseCompounds(t *testing.T) {
	t.Parallel()

	t.Run("returns one trimmed record per data row", func(t *testing.T) {
		t.Parallel()

		compounds, err := knapsack.ParseCompounds(resultsPage)

		require.NoError(t, err)
		require.Len(t, compounds, 3)
		assert.Equal(t, &phytocure.Compound{Name: "Curcumin", PercentageRange: "2-5%"}, compounds[0])
		assert.Equal(t, &phytocure.Compound{Name: "Demethoxycurcumin", PercentageRange: "0.5-1%"}, compounds[1])
		assert.Equal(t, &phytocure.Compound{Name: "Curcumin", PercentageRange: "1%"}, compounds[2])
	})

	t.Run("skips header row even when it uses td cells", func(t *testing.T) {
		t.Parallel()

		html := `<table class="list_table">
			<tr><td>Name</td><td>Range</td></tr>
			<tr><td>Quercetin</td><td>0.1%</td></tr>
		</table>`

		compounds, err := knapsack.ParseCompounds(html)

		require.NoError(t, err)
		require.Len(t, compounds, 1)
		assert.Equal(t, "Quercetin", compounds[0].Name)
	})

	t.Run("returns empty slice when no results table exists", func(t *testing.T) {
		t.Parallel()

		compounds, err := knapsack.ParseCompounds(`<html><body><p>No hits</p><table><tr><td>a</td><td>b</td></tr></table></body></html>`)

		require.NoError(t, err)
		assert.NotNil(t, compounds)
		assert.Empty(t, compounds)
	})

	t.Run("returns empty slice when table has only a header", func(t *testing.T) {
		t.Parallel()

		compounds, err := knapsack.ParseCompounds(`<table class="list_table"><tr><th>Metabolite</th></tr></table>`)

		require.NoError(t, err)
		assert.Empty(t, compounds)
	})
}

func TestSource_SearchURL(t *testing.T) {
	t.Parallel()

	s := knapsack.NewSource(&mock.Fetcher{})

	got := s.SearchURL("Curcuma longa")

	assert.Equal(t, "https://kanaya.nuap.jp/servlet/SearchServlet?action=search&query=Curcuma+longa&type=plant", got)
}

func TestSource_FetchCompounds(t *testing.T) {
	t.Parallel()

	t.Run("queries the servlet and parses the results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "search", r.URL.Query().Get("action"))
			assert.Equal(t, "Curcuma longa", r.URL.Query().Get("query"))
			assert.Equal(t, "plant", r.URL.Query().Get("type"))
			_, _ = w.Write([]byte(resultsPage))
		}))
		defer server.Close()

		s := knapsack.NewSource(phytohttp.NewFetcher(), knapsack.WithBaseURL(server.URL))

		compounds, err := s.FetchCompounds(context.Background(), "Curcuma longa")

		require.NoError(t, err)
		assert.Equal(t, []string{"Curcumin", "Demethoxycurcumin", "Curcumin"}, phytocure.CompoundNames(compounds))
	})

	t.Run("reports non-200 status as unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		s := knapsack.NewSource(phytohttp.NewFetcher(), knapsack.WithBaseURL(server.URL))

		compounds, err := s.FetchCompounds(context.Background(), "Curcuma longa")

		require.Error(t, err)
		assert.Nil(t, compounds)
		assert.Equal(t, phytocure.EUNAVAILABLE, phytocure.ErrorCode(err))
		assert.Contains(t, phytocure.ErrorMessage(err), "503")
	})

	t.Run("reports network failure as unavailable without retrying", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				calls++
				return "", errors.New("connection refused")
			},
		}

		s := knapsack.NewSource(fetcher)

		_, err := s.FetchCompounds(context.Background(), "Curcuma longa")

		require.Error(t, err)
		assert.Equal(t, phytocure.EUNAVAILABLE, phytocure.ErrorCode(err))
		assert.Equal(t, "connection refused", phytocure.ErrorMessage(err))
		assert.Equal(t, 1, calls)
	})
}
