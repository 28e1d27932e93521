package usecase

import (
	"sort"
	"strings"

	"stocktrack/internal/feature/stock/domain/entity"
)

// DefaultPageSize is used when a listing query does not name a page size.
const DefaultPageSize = 20

// SortBySymbol is the only recognized sort field. The name is matched
// case-insensitively; any other value leaves the default ordering in place.
const SortBySymbol = "symbol"

// StockQuery is the filter specification for listing stocks.
// Zero-valued filter fields are inactive; active filters combine as AND.
type StockQuery struct {
	// Symbol keeps only stocks whose symbol contains this substring (case-sensitive).
	Symbol string

	// CompanyName keeps only stocks whose company name contains this substring (case-sensitive).
	CompanyName string

	// SortBy names the sort field; see SortBySymbol.
	SortBy string

	// Descending reverses the sort order when SortBy is active.
	Descending bool

	// PageNumber selects the 1-indexed page.
	PageNumber int

	// PageSize is the number of stocks per page.
	PageSize int
}

// Validate rejects page parameters that cannot address a page.
func (q StockQuery) Validate() error {
	if q.PageNumber < 1 || q.PageSize <= 0 {
		return ErrInvalidQuery
	}
	return nil
}

// ApplyQuery narrows a full candidate sequence to the requested page:
// filters first, then sort, then pagination. It is a pure function; the
// input slice is not modified.
//
// Candidates are expected in a deterministic base order (the repository
// returns them ordered by id), and the symbol sort is stable, so identical
// queries always page through the same sequence.
func ApplyQuery(stocks []entity.Stock, q StockQuery) []entity.Stock {
	out := make([]entity.Stock, 0, len(stocks))
	for _, s := range stocks {
		if q.CompanyName != "" && !strings.Contains(s.CompanyName, q.CompanyName) {
			continue
		}
		if q.Symbol != "" && !strings.Contains(s.Symbol, q.Symbol) {
			continue
		}
		out = append(out, s)
	}

	if strings.EqualFold(q.SortBy, SortBySymbol) {
		sort.SliceStable(out, func(i, j int) bool {
			if q.Descending {
				return out[i].Symbol > out[j].Symbol
			}
			return out[i].Symbol < out[j].Symbol
		})
	}

	// Compare page numbers instead of multiplying first: a huge PageNumber
	// times PageSize would overflow and wrap negative.
	if len(out) == 0 || q.PageNumber-1 > (len(out)-1)/q.PageSize {
		return []entity.Stock{}
	}
	out = out[(q.PageNumber-1)*q.PageSize:]
	if len(out) > q.PageSize {
		out = out[:q.PageSize]
	}
	return out
}
