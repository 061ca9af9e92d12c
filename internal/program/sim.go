// internal/program/sim.go
package program

import "github.com/tamzrod/wristvault/internal/device"

// Display is the three display lines after the last render.
type Display struct {
	Top    string
	Middle string
	Bottom string
}

// Simulator runs a Machine the way the device runtime does: one event at
// a time through a FIFO queue. The owning state's handler runs first, then
// the binding's transition takes effect; events posted by a handler are
// processed only after the current event completes.
type Simulator struct {
	m Machine
	t Tables

	state   uint8
	index   int
	queue   []device.Event
	display Display
	exited  bool
}

// NewSimulator boots into State0 at entry 0 and delivers ENTER.
func NewSimulator(m Machine, t Tables) *Simulator {
	s := &Simulator{m: m, t: t}
	s.Deliver(device.EventEnter)
	return s
}

// Deliver queues ev and drains the queue.
func (s *Simulator) Deliver(ev device.Event) {
	s.queue = append(s.queue, ev)
	for len(s.queue) > 0 && !s.exited {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.dispatch(next)
	}
}

func (s *Simulator) State() uint8     { return s.state }
func (s *Simulator) Index() int       { return s.index }
func (s *Simulator) Display() Display { return s.display }
func (s *Simulator) Exited() bool     { return s.exited }

func (s *Simulator) dispatch(ev device.Event) {
	st, ok := s.m.State(s.state)
	if !ok {
		return
	}
	b, ok := st.binding(ev)
	if !ok {
		// Unbound events never reach the handler.
		return
	}

	if h, ok := st.handler(ev); ok {
		s.run(h.Action)
	}

	if b.Next == device.ExitParam {
		s.exited = true
		return
	}
	s.state = b.Next
}

func (s *Simulator) run(a Action) {
	switch a.Kind {
	case ActionRender:
		s.render(a.Screen)
	case ActionNext:
		s.index = (s.index + 1) % s.m.Count
		s.render(s.m.List)
	case ActionPrev:
		s.index = (s.index - 1 + s.m.Count) % s.m.Count
		s.render(s.m.List)
	case ActionPost:
		s.queue = append(s.queue, a.Post)
	}
}

func (s *Simulator) render(sc *Screen) {
	s.display = Display{
		Top:    s.line(sc.Top),
		Middle: s.line(sc.Middle),
		Bottom: s.line(sc.Bottom),
	}
}

func (s *Simulator) line(src Source) string {
	if src.Column != ColumnNone {
		return s.t.Value(src.Column, s.index)
	}
	return src.Text
}
