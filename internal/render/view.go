package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"bookcatalog/internal/catalog"
)

// EmptyMessage is shown in place of the list when a search matches nothing.
const EmptyMessage = "No results found. Your filters might be too narrow."

type Preview struct {
	ID         string `json:"id"`
	Image      string `json:"image"`
	Title      string `json:"title"`
	AuthorName string `json:"author"`
}

type Detail struct {
	ID            string `json:"id"`
	Image         string `json:"image"`
	Title         string `json:"title"`
	AuthorName    string `json:"author"`
	PublishedYear int    `json:"year"`
	Description   string `json:"description"`
}

type MoreButton struct {
	Label     string `json:"label"`
	Remaining int    `json:"remaining"`
	Disabled  bool   `json:"disabled"`
}

type ListView struct {
	Items   []Preview  `json:"items"`
	Button  MoreButton `json:"button"`
	Empty   bool       `json:"empty"`
	Message string     `json:"message,omitempty"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionsView struct {
	Authors []Option `json:"authors"`
	Genres  []Option `json:"genres"`
}

func Previews(c *catalog.Catalog, items []catalog.Item) []Preview {
	out := make([]Preview, 0, len(items))
	for _, it := range items {
		out = append(out, Preview{
			ID:         it.ID,
			Image:      it.Image,
			Title:      it.Title,
			AuthorName: c.AuthorName(it.AuthorID),
		})
	}
	return out
}

// DetailOf returns nil when no item is active.
func DetailOf(c *catalog.Catalog, item *catalog.Item) *Detail {
	if item == nil {
		return nil
	}
	return &Detail{
		ID:            item.ID,
		Image:         item.Image,
		Title:         item.Title,
		AuthorName:    c.AuthorName(item.AuthorID),
		PublishedYear: PublishedYear(item.PublishedDate),
		Description:   item.Description,
	}
}

func Button(remaining int) MoreButton {
	remaining = max(remaining, 0)
	return MoreButton{
		Label:     fmt.Sprintf("Show more (%d)", remaining),
		Remaining: remaining,
		Disabled:  remaining == 0,
	}
}

// List builds the list view for items, which is either everything visible
// or just a freshly revealed page.
func List(c *catalog.Catalog, s catalog.ViewState, items []catalog.Item, pageSize int) ListView {
	v := ListView{
		Items:  Previews(c, items),
		Button: Button(catalog.RemainingCount(s, pageSize)),
		Empty:  s.Empty(),
	}
	if v.Empty {
		v.Message = EmptyMessage
	}
	return v
}

// Options lists the author and genre choices, "any" first, the rest by name.
func Options(c *catalog.Catalog) OptionsView {
	authors := c.Authors()
	sort.Slice(authors, func(i, j int) bool { return authors[i].Name < authors[j].Name })
	genres := c.Genres()
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })

	v := OptionsView{
		Authors: []Option{{Value: catalog.Any, Label: "All Authors"}},
		Genres:  []Option{{Value: catalog.Any, Label: "All Genres"}},
	}
	for _, a := range authors {
		v.Authors = append(v.Authors, Option{Value: a.ID, Label: a.Name})
	}
	for _, g := range genres {
		v.Genres = append(v.Genres, Option{Value: g.ID, Label: g.Name})
	}
	return v
}

// PublishedYear extracts the year from an ISO-8601 date or timestamp. It
// returns 0 when the value cannot be read.
func PublishedYear(published string) int {
	published = strings.TrimSpace(published)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, published); err == nil {
			return t.UTC().Year()
		}
	}
	if len(published) >= 4 {
		if y, err := strconv.Atoi(published[:4]); err == nil {
			return y
		}
	}
	return 0
}
