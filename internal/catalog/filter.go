package catalog

import "strings"

// Any disables the author or genre constraint of a Filter.
const Any = "any"

// Filter holds the search criteria of one search submission.
type Filter struct {
	TitleQuery string `json:"title"`
	AuthorID   string `json:"author"`
	GenreID    string `json:"genre"`
}

func DefaultFilter() Filter {
	return Filter{AuthorID: Any, GenreID: Any}
}

// Matches reports whether item satisfies all three predicates.
func (f Filter) Matches(item Item) bool {
	if !isAny(f.GenreID) && !item.HasGenre(f.GenreID) {
		return false
	}
	if strings.TrimSpace(f.TitleQuery) != "" &&
		!strings.Contains(strings.ToLower(item.Title), strings.ToLower(f.TitleQuery)) {
		return false
	}
	if !isAny(f.AuthorID) && item.AuthorID != f.AuthorID {
		return false
	}
	return true
}

func isAny(v string) bool {
	return v == "" || v == Any
}
