package session

import (
	"errors"
	"sync"
	"time"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/render"
	"bookcatalog/internal/theme"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is one client's catalog view. Its fields are only touched while
// the store holds the session lock (see Store.With).
type Session struct {
	ID         string
	Controller *catalog.Controller
	View       *render.Snapshot
	Theme      theme.Theme
	CreatedAt  time.Time
	LastSeen   time.Time

	mu sync.Mutex
}

// SetTheme switches the session theme and renders it.
func (s *Session) SetTheme(t theme.Theme) {
	s.Theme = t
	s.View.RenderTheme(t.Settings())
}
