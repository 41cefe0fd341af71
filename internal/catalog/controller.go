package catalog

// EventKind names the transition that produced an Event.
type EventKind string

const (
	EventFiltered     EventKind = "filtered"
	EventPaged        EventKind = "paged"
	EventDetailOpened EventKind = "detail_opened"
	EventDetailClosed EventKind = "detail_closed"
)

// Event is delivered to subscribers after the controller state has changed.
// Page holds the newly revealed items for EventPaged.
type Event struct {
	Kind  EventKind
	State ViewState
	Page  []Item
}

type Listener func(Event)

// Controller owns one ViewState and notifies subscribers after every
// transition. It is not safe for concurrent use.
type Controller struct {
	catalog   *Catalog
	pageSize  int
	state     ViewState
	listeners []*subscription
}

type subscription struct {
	fn Listener
}

func NewController(c *Catalog, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		catalog:  c,
		pageSize: pageSize,
		state:    NewViewState(c),
	}
}

// DefaultPageSize is the number of previews revealed per page.
const DefaultPageSize = 36

func (ctl *Controller) Catalog() *Catalog {
	return ctl.catalog
}

func (ctl *Controller) PageSize() int {
	return ctl.pageSize
}

func (ctl *Controller) State() ViewState {
	return ctl.state
}

// Subscribe registers fn and returns a function that removes it again.
func (ctl *Controller) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn}
	ctl.listeners = append(ctl.listeners, sub)
	return func() {
		for i, s := range ctl.listeners {
			if s == sub {
				ctl.listeners = append(ctl.listeners[:i:i], ctl.listeners[i+1:]...)
				return
			}
		}
	}
}

func (ctl *Controller) ApplyFilter(f Filter) ViewState {
	ctl.state = ApplyFilter(ctl.catalog, ctl.state, f)
	ctl.notify(Event{Kind: EventFiltered, State: ctl.state})
	return ctl.state
}

func (ctl *Controller) NextPage() []Item {
	var page []Item
	ctl.state, page = NextPage(ctl.state, ctl.pageSize)
	ctl.notify(Event{Kind: EventPaged, State: ctl.state, Page: page})
	return page
}

func (ctl *Controller) RemainingCount() int {
	return RemainingCount(ctl.state, ctl.pageSize)
}

func (ctl *Controller) Visible() []Item {
	return Visible(ctl.state, ctl.pageSize)
}

// OpenDetail activates the item with id. A missing id returns ErrNotFound
// without touching the state or notifying anyone.
func (ctl *Controller) OpenDetail(id string) (Item, error) {
	next, item, err := OpenDetail(ctl.catalog, ctl.state, id)
	if err != nil {
		return Item{}, err
	}
	ctl.state = next
	ctl.notify(Event{Kind: EventDetailOpened, State: ctl.state})
	return item, nil
}

func (ctl *Controller) CloseDetail() {
	ctl.state = CloseDetail(ctl.state)
	ctl.notify(Event{Kind: EventDetailClosed, State: ctl.state})
}

func (ctl *Controller) notify(ev Event) {
	// copy so a listener may unsubscribe itself
	subs := append([]*subscription(nil), ctl.listeners...)
	for _, s := range subs {
		s.fn(ev)
	}
}
