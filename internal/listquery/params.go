// internal/listquery/params.go
package listquery

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10

	KeySearch = "q"
	KeyPage   = "page"
	KeyLimit  = "limit"
	KeySkip   = "skip"
)

// Params is the list state read from the page URL. Page is zero based.
type Params struct {
	Search string
	Page   int
	Limit  int
	Extra  map[string]string
}

// ParseParams reads q, page and limit plus the page specific extra keys.
// Missing or invalid numbers fall back to page 0 and limit 10.
func ParseParams(values url.Values, extraKeys ...string) Params {
	params := Params{
		Search: strings.TrimSpace(values.Get(KeySearch)),
		Page:   positiveInt(values.Get(KeyPage), 0),
		Limit:  positiveInt(values.Get(KeyLimit), DefaultLimit),
		Extra:  make(map[string]string, len(extraKeys)),
	}
	for _, key := range extraKeys {
		if value := strings.TrimSpace(values.Get(key)); value != "" {
			params.Extra[key] = value
		}
	}
	return params
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (p Params) Skip() int {
	return p.Page * p.Limit
}

// APIQuery is the query string sent to the list endpoint.
func (p Params) APIQuery() url.Values {
	query := url.Values{}
	if p.Search != "" {
		query.Set(KeySearch, p.Search)
	}
	query.Set(KeySkip, strconv.Itoa(p.Skip()))
	query.Set(KeyLimit, strconv.Itoa(p.Limit))
	for key, value := range p.Extra {
		query.Set(key, value)
	}
	return query
}

// Window describes the rows shown on the current page, 1 based.
type Window struct {
	From  int
	To    int
	Count int
}

func (p Params) Window(total int64) Window {
	skip := int64(p.Skip())
	if skip >= total {
		return Window{}
	}
	to := skip + int64(p.Limit)
	if to > total {
		to = total
	}
	return Window{From: int(skip) + 1, To: int(to), Count: int(to - skip)}
}

// PageCount is the number of pages needed for total rows.
func (p Params) PageCount(total int64) int {
	if total <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}
