// Package nav tracks which view of the report is visible.
package nav

import (
	"errors"
	"fmt"
)

// ErrUnknownView is returned when a selection names no registered view.
var ErrUnknownView = errors.New("unknown view")

// EventName identifies a navigation event.
type EventName string

// EventSelect shows the view named by the event target.
const EventSelect EventName = "select"

// Event is a discrete user action.
type Event struct {
	Name   EventName
	Target string
}

// State is the visible container and the active selector. They always
// name the same view.
type State struct {
	Visible string
	Active  string
}

// Handler applies an event target to the state.
type Handler func(c *Controller, target string) error

// Controller owns the navigation state for one page session. It is not
// safe for concurrent use; each session gets its own.
type Controller struct {
	views    []string
	state    State
	handlers map[EventName]Handler
}

// New returns a Controller over views, initially showing initial.
func New(views []string, initial string) (*Controller, error) {
	c := &Controller{
		views: append([]string(nil), views...),
		handlers: map[EventName]Handler{
			EventSelect: func(c *Controller, target string) error { return c.Select(target) },
		},
	}
	if err := c.Select(initial); err != nil {
		return nil, fmt.Errorf("initial view: %w", err)
	}
	return c, nil
}

// Dispatch routes an event through the handler table.
func (c *Controller) Dispatch(ev Event) error {
	h, ok := c.handlers[ev.Name]
	if !ok {
		return fmt.Errorf("no handler for event %q", ev.Name)
	}
	return h(c, ev.Target)
}

// Select marks view active and visible; all others become inactive and
// hidden. Selecting the current view leaves the state unchanged.
func (c *Controller) Select(view string) error {
	if !c.has(view) {
		return fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
	c.state = State{Visible: view, Active: view}
	return nil
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Views returns the registered views in order.
func (c *Controller) Views() []string { return append([]string(nil), c.views...) }

// Visible reports whether view's container is shown.
func (c *Controller) Visible(view string) bool { return c.state.Visible == view }

// Active reports whether view's selector is marked active.
func (c *Controller) Active(view string) bool { return c.state.Active == view }

func (c *Controller) has(view string) bool {
	for _, v := range c.views {
		if v == view {
			return true
		}
	}
	return false
}
