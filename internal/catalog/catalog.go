package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an item id is not part of the dataset.
var ErrNotFound = errors.New("catalog item not found")

// Item is one book record of the static dataset.
type Item struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	AuthorID      string   `json:"author" yaml:"author"`
	Image         string   `json:"image" yaml:"image"`
	Description   string   `json:"description" yaml:"description"`
	PublishedDate string   `json:"published" yaml:"published"`
	GenreIDs      []string `json:"genres" yaml:"genres"`
}

// HasGenre reports whether the item is tagged with genreID.
func (i Item) HasGenre(genreID string) bool {
	for _, g := range i.GenreIDs {
		if g == genreID {
			return true
		}
	}
	return false
}

type Author struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Genre struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Catalog is the immutable dataset loaded once at startup.
type Catalog struct {
	items   []Item
	byID    map[string]int
	authors map[string]Author
	genres  map[string]Genre
}

// NewCatalog indexes the dataset. Item order is preserved.
func NewCatalog(items []Item, authors []Author, genres []Genre) (*Catalog, error) {
	c := &Catalog{
		items:   make([]Item, 0, len(items)),
		byID:    make(map[string]int, len(items)),
		authors: make(map[string]Author, len(authors)),
		genres:  make(map[string]Genre, len(genres)),
	}
	for _, a := range authors {
		if a.ID == "" {
			return nil, errors.New("author with empty id")
		}
		c.authors[a.ID] = a
	}
	for _, g := range genres {
		if g.ID == "" {
			return nil, errors.New("genre with empty id")
		}
		c.genres[g.ID] = g
	}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %q has empty id", it.Title)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id: %s", it.ID)
		}
		if _, ok := c.authors[it.AuthorID]; !ok {
			return nil, fmt.Errorf("item %s references unknown author %s", it.ID, it.AuthorID)
		}
		it.GenreIDs = append([]string(nil), it.GenreIDs...)
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Items returns the dataset in its original order. The slice must not be modified.
func (c *Catalog) Items() []Item {
	return c.items
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Get looks an item up by id in the full dataset.
func (c *Catalog) Get(id string) (Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.items[idx], nil
}

func (c *Catalog) Author(id string) (Author, bool) {
	a, ok := c.authors[id]
	return a, ok
}

// AuthorName returns the display name for id, or the id itself when unknown.
func (c *Catalog) AuthorName(id string) string {
	if a, ok := c.authors[id]; ok {
		return a.Name
	}
	return id
}

func (c *Catalog) Genre(id string) (Genre, bool) {
	g, ok := c.genres[id]
	return g, ok
}

func (c *Catalog) Authors() []Author {
	out := make([]Author, 0, len(c.authors))
	for _, a := range c.authors {
		out = append(out, a)
	}
	return out
}

func (c *Catalog) Genres() []Genre {
	out := make([]Genre, 0, len(c.genres))
	for _, g := range c.genres {
		out = append(out, g)
	}
	return out
}
