package router

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcard/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg requests a named route.
type NavigateMsg struct {
	Route  string
	Params map[string]string
}

// WarnMsg carries a recoverable error to show in the footer.
type WarnMsg struct {
	Err error
}

// Mode says how a route lands on the stack.
type Mode int

const (
	ModePush    Mode = iota // On top of the current screen
	ModeReplace             // In place of the current screen
	ModeRoot                // Above the root, dropping everything else
)

// Factory builds the screen for a route.
type Factory func(params map[string]string) (screen.Screen, error)

// Route is one entry of the route table.
type Route struct {
	Build Factory
	Mode  Mode
}

// Routes maps route names to screens.
type Routes map[string]Route

// Router manages a stack of screens.
type Router struct {
	stack  []screen.Screen
	routes Routes
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen, routes Routes) *Router {
	if routes == nil {
		routes = Routes{}
	}
	return &Router{
		stack:  []screen.Screen{initial},
		routes: routes,
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return refresh(r.Active())
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// PopToRoot drops every screen above the root.
func (r *Router) PopToRoot() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:1]
	return refresh(r.Active())
}

// Navigate resolves a named route and places its screen on the stack.
func (r *Router) Navigate(name string, params map[string]string) (tea.Cmd, error) {
	route, ok := r.routes[name]
	if !ok {
		return nil, fmt.Errorf("unknown route %q", name)
	}
	s, err := route.Build(params)
	if err != nil {
		return nil, fmt.Errorf("build route %q: %w", name, err)
	}

	switch route.Mode {
	case ModeReplace:
		return r.Replace(s), nil
	case ModeRoot:
		r.stack = r.stack[:1]
		return r.Push(s), nil
	default:
		return r.Push(s), nil
	}
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case NavigateMsg:
		cmd, err := r.Navigate(msg.Route, msg.Params)
		if err != nil {
			return func() tea.Msg { return WarnMsg{Err: err} }
		}
		return cmd
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

func refresh(s screen.Screen) tea.Cmd {
	if rf, ok := s.(screen.Refresher); ok {
		return rf.Refresh()
	}
	return nil
}
