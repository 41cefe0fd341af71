package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Transitions(t *testing.T) {
	c := newTestCatalog(t)
	ctl := NewController(c, 2)

	var events []Event
	ctl.Subscribe(func(ev Event) { events = append(events, ev) })

	s := ctl.ApplyFilter(Filter{AuthorID: "a1", GenreID: Any})
	assert.Equal(t, []string{"b1", "b3", "b6"}, ids(s.Matches))
	assert.Equal(t, []string{"b1", "b3"}, ids(ctl.Visible()))
	assert.Equal(t, 1, ctl.RemainingCount())

	page := ctl.NextPage()
	assert.Equal(t, []string{"b6"}, ids(page))
	assert.Equal(t, 0, ctl.RemainingCount())

	item, err := ctl.OpenDetail("b2")
	require.NoError(t, err)
	assert.Equal(t, "Night Garden", item.Title)
	require.NotNil(t, ctl.State().Active)

	ctl.CloseDetail()
	assert.Nil(t, ctl.State().Active)

	require.Len(t, events, 4)
	assert.Equal(t, EventFiltered, events[0].Kind)
	assert.Equal(t, EventPaged, events[1].Kind)
	assert.Equal(t, []string{"b6"}, ids(events[1].Page))
	assert.Equal(t, 2, events[1].State.PageCursor)
	assert.Equal(t, EventDetailOpened, events[2].Kind)
	assert.Equal(t, "b2", events[2].State.Active.ID)
	assert.Equal(t, EventDetailClosed, events[3].Kind)
}

func TestController_OpenDetailMissingDoesNotNotify(t *testing.T) {
	c := newTestCatalog(t)
	ctl := NewController(c, 2)

	calls := 0
	ctl.Subscribe(func(Event) { calls++ })

	_, err := ctl.OpenDetail("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, ctl.State().Active)
	assert.Zero(t, calls)
}

func TestController_SubscribeOrderAndUnsubscribe(t *testing.T) {
	c := newTestCatalog(t)
	ctl := NewController(c, 2)

	var order []string
	unsubA := ctl.Subscribe(func(Event) { order = append(order, "a") })
	ctl.Subscribe(func(Event) { order = append(order, "b") })

	ctl.NextPage()
	assert.Equal(t, []string{"a", "b"}, order)

	unsubA()
	unsubA()
	order = nil
	ctl.NextPage()
	assert.Equal(t, []string{"b"}, order)
}

func TestController_ListenerMayUnsubscribeItself(t *testing.T) {
	c := newTestCatalog(t)
	ctl := NewController(c, 2)

	calls := 0
	var unsub func()
	unsub = ctl.Subscribe(func(Event) {
		calls++
		unsub()
	})
	other := 0
	ctl.Subscribe(func(Event) { other++ })

	ctl.NextPage()
	ctl.NextPage()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestController_DefaultPageSize(t *testing.T) {
	ctl := NewController(newTestCatalog(t), 0)
	assert.Equal(t, DefaultPageSize, ctl.PageSize())
	assert.Len(t, ctl.Visible(), 6)
	assert.Equal(t, 0, ctl.RemainingCount())
}
