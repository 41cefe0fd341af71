package render

import (
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/theme"
)

// Renderer consumes view data produced from controller state. It knows
// nothing about how the state was derived.
type Renderer interface {
	RenderList(v ListView)
	RenderDetail(d *Detail)
	RenderTheme(s theme.Settings)
}

// Bind subscribes r to ctl. Filtering re-renders the whole visible list,
// paging renders only the revealed items, and detail events render the
// detail panel. The returned function unsubscribes.
func Bind(ctl *catalog.Controller, r Renderer) func() {
	c := ctl.Catalog()
	return ctl.Subscribe(func(ev catalog.Event) {
		switch ev.Kind {
		case catalog.EventFiltered:
			r.RenderList(List(c, ev.State, catalog.Visible(ev.State, ctl.PageSize()), ctl.PageSize()))
		case catalog.EventPaged:
			r.RenderList(List(c, ev.State, ev.Page, ctl.PageSize()))
		case catalog.EventDetailOpened, catalog.EventDetailClosed:
			r.RenderDetail(DetailOf(c, ev.State.Active))
		}
	})
}

// Initial renders the startup state of ctl without waiting for an event.
func Initial(ctl *catalog.Controller, r Renderer, t theme.Theme) {
	s := ctl.State()
	r.RenderTheme(t.Settings())
	r.RenderList(List(ctl.Catalog(), s, ctl.Visible(), ctl.PageSize()))
	r.RenderDetail(DetailOf(ctl.Catalog(), s.Active))
}
