package catalog

// ViewState is the complete state of one catalog view. Transitions below
// return a new value and never modify the one they receive.
type ViewState struct {
	Filter     Filter `json:"filter"`
	Matches    []Item `json:"-"`
	PageCursor int    `json:"page"`
	Active     *Item  `json:"active,omitempty"`
}

// NewViewState returns the startup state: no constraints, every item matched.
func NewViewState(c *Catalog) ViewState {
	return ViewState{
		Filter:     DefaultFilter(),
		Matches:    c.Items(),
		PageCursor: 1,
	}
}

// Empty reports whether the last filter matched nothing.
func (s ViewState) Empty() bool {
	return len(s.Matches) == 0
}

// ApplyFilter replaces the filter, recomputes the match set by linear scan
// and rewinds the cursor to the first page.
func ApplyFilter(c *Catalog, s ViewState, f Filter) ViewState {
	matches := make([]Item, 0, c.Len())
	for _, item := range c.Items() {
		if f.Matches(item) {
			matches = append(matches, item)
		}
	}
	s.Filter = f
	s.Matches = matches
	s.PageCursor = 1
	return s
}

// NextPage returns the slice following everything shown so far and advances
// the cursor. Past the last page it returns an empty slice and the cursor stays.
func NextPage(s ViewState, pageSize int) (ViewState, []Item) {
	if pageSize <= 0 {
		return s, []Item{}
	}
	start := s.PageCursor * pageSize
	if start >= len(s.Matches) {
		s.PageCursor = lastPage(len(s.Matches), pageSize)
		return s, []Item{}
	}
	end := min(start+pageSize, len(s.Matches))
	page := append([]Item(nil), s.Matches[start:end]...)
	s.PageCursor++
	return s, page
}

// RemainingCount is the number of matches not yet shown.
func RemainingCount(s ViewState, pageSize int) int {
	return max(len(s.Matches)-s.PageCursor*pageSize, 0)
}

// Visible returns every match rendered up to the current cursor.
func Visible(s ViewState, pageSize int) []Item {
	if pageSize <= 0 {
		return []Item{}
	}
	end := min(s.PageCursor*pageSize, len(s.Matches))
	return append([]Item(nil), s.Matches[:end]...)
}

// OpenDetail makes the item with id active. The lookup covers the whole
// dataset, not only the match set. On ErrNotFound s is returned unchanged.
func OpenDetail(c *Catalog, s ViewState, id string) (ViewState, Item, error) {
	item, err := c.Get(id)
	if err != nil {
		return s, Item{}, err
	}
	s.Active = &item
	return s, item, nil
}

func CloseDetail(s ViewState) ViewState {
	s.Active = nil
	return s
}

func lastPage(total, pageSize int) int {
	return max(1, (total+pageSize-1)/pageSize)
}
