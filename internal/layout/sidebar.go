package layout

import (
	"strings"

	"github.com/newthinker/hypergluex/internal/core"
	"github.com/newthinker/hypergluex/internal/ui"
)

// State is the sidebar visibility.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// Event is a user interaction that may move the sidebar between states.
type Event string

const (
	// EventToggle is a click on the floating toggle button.
	EventToggle Event = "toggle"
	// EventDismiss is a click on the narrow-viewport overlay.
	EventDismiss Event = "dismiss"
)

// QueryParam carries the sidebar state in page links.
const QueryParam = "sidebar"

type transition struct {
	from  State
	event Event
}

var transitions = map[transition]State{
	{StateOpen, EventToggle}:   StateClosed,
	{StateOpen, EventDismiss}:  StateClosed,
	{StateClosed, EventToggle}: StateOpen,
}

// ParseState maps a query value to a State.
func ParseState(s string) (State, bool) {
	switch State(s) {
	case StateOpen:
		return StateOpen, true
	case StateClosed:
		return StateClosed, true
	default:
		return "", false
	}
}

const (
	itemBase          = "block px-3 py-2 rounded-lg text-sm transition-colors"
	itemActive        = "bg-primary-600 text-white"
	itemNeutral       = "text-gray-300 hover:bg-gray-800 hover:text-white"
	sectionTitleClass = "text-xs font-semibold text-gray-500 uppercase tracking-wider mb-2"
)

// Item is a navigation entry.
type Item struct {
	Label  string
	Active bool
}

// Href targets the in-page fragment named after the lowercased label.
func (i Item) Href() string { return "#" + strings.ToLower(i.Label) }

func (i Item) Class() string {
	if i.Active {
		return ui.Merge(itemBase, itemActive)
	}
	return ui.Merge(itemBase, itemNeutral)
}

// Section groups items under a heading.
type Section struct {
	Title string
	Items []Item
}

func (Section) TitleClass() string { return sectionTitleClass }

// DefaultSections returns a fresh copy of the fixed navigation tree.
func DefaultSections() []Section {
	return []Section{
		{Title: "Overview", Items: []Item{{Label: "Dashboard", Active: true}, {Label: "Analytics"}}},
		{Title: "Trading", Items: []Item{{Label: "Spot"}, {Label: "Perpetuals"}, {Label: "Orders"}}},
		{Title: "Portfolio", Items: []Item{{Label: "Positions"}, {Label: "History"}, {Label: "PnL"}}},
		{Title: "Settings", Items: []Item{{Label: "Account"}, {Label: "Preferences"}}},
	}
}

// Observer is told about every applied transition.
type Observer func(from, to State)

// Sidebar is the collapsible navigation panel. It owns its open/closed
// state; the only way to change it is Dispatch.
type Sidebar struct {
	state      State
	breakpoint Breakpoint
	sections   []Section
	observer   Observer
}

// SidebarOption configures a Sidebar.
type SidebarOption func(*Sidebar)

// WithObserver registers fn for transitions.
func WithObserver(fn Observer) SidebarOption {
	return func(s *Sidebar) { s.observer = fn }
}

// NewSidebar mounts a sidebar in the open state.
func NewSidebar(bp Breakpoint, opts ...SidebarOption) *Sidebar {
	if bp == "" {
		bp = DefaultBreakpoint
	}
	s := &Sidebar{
		state:      StateOpen,
		breakpoint: bp,
		sections:   DefaultSections(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sidebar) State() State { return s.state }

func (s *Sidebar) IsOpen() bool { return s.state == StateOpen }

func (s *Sidebar) Sections() []Section { return s.sections }

// Peek returns the state ev would lead to without applying it.
func (s *Sidebar) Peek(ev Event) (State, error) {
	next, ok := transitions[transition{s.state, ev}]
	if !ok {
		return s.state, core.Wrapf(core.ErrInvalidTransition, "%s on %s sidebar", ev, s.state)
	}
	return next, nil
}

// Dispatch applies ev. A rejected event leaves the state unchanged.
func (s *Sidebar) Dispatch(ev Event) (State, error) {
	next, err := s.Peek(ev)
	if err != nil {
		return s.state, err
	}
	from := s.state
	s.state = next
	if s.observer != nil {
		s.observer(from, next)
	}
	return next, nil
}

// Restore brings a freshly mounted sidebar to target by replaying the click
// that produced it.
func (s *Sidebar) Restore(target State) error {
	if target == s.state {
		return nil
	}
	_, err := s.Dispatch(EventToggle)
	return err
}

// OverlayClass is only meaningful while open; the overlay is not rendered
// when closed.
func (s *Sidebar) OverlayClass() string {
	return ui.Merge("fixed inset-0 bg-black bg-opacity-50 z-20", s.breakpoint.At("hidden"))
}

func (s *Sidebar) PanelClass() string {
	position := "-translate-x-full " + s.breakpoint.At("translate-x-0")
	if s.IsOpen() {
		position = "translate-x-0"
	}
	return ui.Merge(
		"fixed", s.breakpoint.At("sticky"),
		"top-16 left-0 h-[calc(100vh-4rem)] bg-gray-900 border-r border-gray-800 transition-transform duration-300 z-30",
		position,
	)
}

func (s *Sidebar) ToggleClass() string {
	return ui.Merge("fixed bottom-4 left-4", s.breakpoint.At("hidden"),
		"z-40 p-3 bg-primary-600 text-white rounded-full shadow-lg")
}

func (s *Sidebar) ToggleGlyph() string {
	if s.IsOpen() {
		return "✕"
	}
	return "☰"
}

func (s *Sidebar) ToggleLabel() string {
	if s.IsOpen() {
		return "Close navigation"
	}
	return "Open navigation"
}

// ToggleHref links to the page as it looks after the toggle click.
func (s *Sidebar) ToggleHref() string {
	next, _ := s.Peek(EventToggle)
	return stateHref(next)
}

// OverlayHref links to the page as it looks after the overlay click.
func (s *Sidebar) OverlayHref() string {
	next, _ := s.Peek(EventDismiss)
	return stateHref(next)
}

func stateHref(st State) string {
	return "?" + QueryParam + "=" + string(st)
}
