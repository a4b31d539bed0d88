// internal/listquery/state.go
package listquery

import (
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/atelier-gestor/atelier/internal/models"
)

// State holds the URL query of a list view. Every filter change sends the
// user back to the first page.
type State struct {
	mu     sync.Mutex
	values url.Values
}

func NewState(values url.Values) *State {
	copied := url.Values{}
	for key, v := range values {
		copied[key] = append([]string(nil), v...)
	}
	return &State{values: copied}
}

func ParseState(rawQuery string) (*State, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	return NewState(values), nil
}

func (s *State) SetSearch(q string) {
	s.update(func(v url.Values) {
		setOrDelete(v, KeySearch, strings.TrimSpace(q))
	})
}

// SetFilter sets a single valued filter such as status.
func (s *State) SetFilter(key, value string) {
	s.update(func(v url.Values) {
		setOrDelete(v, key, strings.TrimSpace(value))
	})
}

func (s *State) SetDate(key string, date models.Date) {
	s.SetFilter(key, date.String())
}

func (s *State) SetRange(minKey, maxKey, minValue, maxValue string) {
	s.update(func(v url.Values) {
		setOrDelete(v, minKey, strings.TrimSpace(minValue))
		setOrDelete(v, maxKey, strings.TrimSpace(maxValue))
	})
}

func (s *State) SetLimit(limit int) {
	s.update(func(v url.Values) {
		if limit <= 0 {
			v.Del(KeyLimit)
			return
		}
		v.Set(KeyLimit, strconv.Itoa(limit))
	})
}

// SetPage is the only mutation that keeps the other filters' page.
func (s *State) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 0 {
		page = 0
	}
	s.values.Set(KeyPage, strconv.Itoa(page))
}

func (s *State) update(fn func(url.Values)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.values)
	s.values.Set(KeyPage, "0")
}

func setOrDelete(v url.Values, key, value string) {
	if value == "" {
		v.Del(key)
		return
	}
	v.Set(key, value)
}

func (s *State) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Get(key)
}

func (s *State) Values() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewState(s.values).values
}

// Encode renders the page URL query, suitable for bookmarks.
func (s *State) Encode() string {
	return s.Values().Encode()
}

func (s *State) Params(extraKeys ...string) Params {
	return ParseParams(s.Values(), extraKeys...)
}
