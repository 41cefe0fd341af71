package render

import "bookcatalog/internal/theme"

// Snapshot is a Renderer that keeps the most recent output of each kind.
// Transports that answer a request with the result of a transition read it
// back after the transition has run.
type Snapshot struct {
	List   ListView
	Detail *Detail
	Theme  theme.Settings
	Lists  int
}

func (s *Snapshot) RenderList(v ListView) {
	s.List = v
	s.Lists++
}

func (s *Snapshot) RenderDetail(d *Detail) {
	s.Detail = d
}

func (s *Snapshot) RenderTheme(t theme.Settings) {
	s.Theme = t
}
