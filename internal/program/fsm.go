// internal/program/fsm.go
package program

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/wristvault/internal/device"
	"github.com/tamzrod/wristvault/internal/field"
)

var (
	// ErrNoEntries rejects generation of a zero-modulus state machine.
	ErrNoEntries = errors.New("program: no recovery entries")
	// ErrTooManyEntries rejects entry counts the index register cannot address.
	ErrTooManyEntries = errors.New("program: too many recovery entries")
)

// ActionKind is what a state handler does with an event.
type ActionKind int

const (
	ActionRender ActionKind = iota + 1
	ActionNext
	ActionPrev
	ActionPost
)

// Labels of the shared navigation routines in the skeleton.
const (
	labelNext = "NEXT_ENTRY"
	labelPrev = "PREV_ENTRY"
	labelList = "SHOW_ENTRY"
)

// Source is what one display line shows: a constant string or an indexed
// lookup into a table column.
type Source struct {
	Symbol string // constant string symbol
	System bool   // symbol lives in the runtime include, not relative to START
	Text   string
	Column Column // non-zero for a lookup
}

// Screen is one fixed three-line render routine.
type Screen struct {
	Label  string
	Top    Source
	Middle Source
	Bottom Source
}

// Action is one handler step.
type Action struct {
	Kind   ActionKind
	Screen *Screen      // ActionRender
	Post   device.Event // ActionPost
}

func (a Action) label() string {
	switch a.Kind {
	case ActionRender:
		return a.Screen.Label
	case ActionNext:
		return labelNext
	case ActionPrev:
		return labelPrev
	case ActionPost:
		return "POST_" + strings.TrimPrefix(a.Post.Symbol(), "EVT_")
	default:
		return ""
	}
}

// Binding is one state table row: (event, timing, parameter).
// The parameter is the state entered after the handler ran, or ExitParam.
type Binding struct {
	Event  device.Event
	Timing device.Timing
	Next   uint8
	Note   string
}

// Handler maps an event to the action the owning state takes.
type Handler struct {
	Event  device.Event
	Action Action
}

// StateDescriptor is one mode of the on-device event loop.
type StateDescriptor struct {
	ID       uint8
	Events   []Binding
	Handlers []Handler
}

func (s StateDescriptor) binding(ev device.Event) (Binding, bool) {
	for _, b := range s.Events {
		if b.Event == ev {
			return b, true
		}
	}
	return Binding{}, false
}

func (s StateDescriptor) handler(ev device.Event) (Handler, bool) {
	for _, h := range s.Handlers {
		if h.Event == ev {
			return h, true
		}
	}
	return Handler{}, false
}

// Machine is the synthesized automaton for Count entries.
type Machine struct {
	Variant Variant
	Count   int

	// List is rendered after NEXT and PREV.
	List   *Screen
	States []StateDescriptor
}

// State returns the descriptor with the given id.
func (m Machine) State(id uint8) (StateDescriptor, bool) {
	for _, s := range m.States {
		if s.ID == id {
			return s, true
		}
	}
	return StateDescriptor{}, false
}

// Synthesize builds the machine for count entries.
func Synthesize(v Variant, count int) (Machine, error) {
	if count <= 0 {
		return Machine{}, ErrNoEntries
	}
	if count > device.MaxEntries {
		return Machine{}, fmt.Errorf("%w: %d > %d", ErrTooManyEntries, count, device.MaxEntries)
	}

	switch v {
	case VariantNavigator:
		return navigator(count), nil
	case VariantBasic:
		return basic(count), nil
	default:
		return Machine{}, fmt.Errorf("program: unknown variant %q", v)
	}
}

// navigator: State0 lists services, holding SET enters State1 which shows
// the code on every timer tick; releasing SET posts USER0 back to State0.
func navigator(count int) Machine {
	list := &Screen{
		Label:  labelList,
		Top:    Source{Symbol: "SYS6_HOLDTO", System: true, Text: "HOLDTO"},
		Middle: Source{Symbol: "S6_REVEAL", Text: "REVEAL"},
		Bottom: Source{Column: ColumnService},
	}
	reveal := &Screen{
		Label:  "SHOW_CODE",
		Top:    Source{Symbol: "S6_SHOW", Text: "SHOW"},
		Middle: Source{Symbol: "S6_CODE", Text: "CODE"},
		Bottom: Source{Column: ColumnCode},
	}

	render := Action{Kind: ActionRender, Screen: list}

	return Machine{
		Variant: VariantNavigator,
		Count:   count,
		List:    list,
		States: []StateDescriptor{
			{
				ID: 0,
				Events: []Binding{
					{Event: device.EventEnter, Timing: device.TimingOnce, Next: 0},
					{Event: device.EventResume, Timing: device.TimingOnce, Next: 0},
					{Event: device.EventNext, Timing: device.TimingOnce, Next: 0, Note: "Next service"},
					{Event: device.EventPrev, Timing: device.TimingOnce, Next: 0, Note: "Previous service"},
					{Event: device.EventSet, Timing: device.TimingTimer2, Next: 1, Note: "Hold SET to reveal code"},
					{Event: device.EventMode, Timing: device.TimingOnce, Next: device.ExitParam},
					{Event: device.EventUser0, Timing: device.TimingOnce, Next: 0, Note: "Return from code display"},
				},
				Handlers: []Handler{
					{Event: device.EventEnter, Action: render},
					{Event: device.EventResume, Action: render},
					{Event: device.EventUser0, Action: render},
					{Event: device.EventNext, Action: Action{Kind: ActionNext}},
					{Event: device.EventPrev, Action: Action{Kind: ActionPrev}},
				},
			},
			{
				ID: 1,
				Events: []Binding{
					{Event: device.EventSetUp, Timing: device.TimingOnce, Next: 0, Note: "Released SET button"},
					{Event: device.EventTimer2, Timing: device.TimingTimer2, Next: 1, Note: "Keep showing code while held"},
				},
				Handlers: []Handler{
					{Event: device.EventTimer2, Action: Action{Kind: ActionRender, Screen: reveal}},
					{Event: device.EventSetUp, Action: Action{Kind: ActionPost, Post: device.EventUser0}},
				},
			},
		},
	}
}

// basic: one state, service and code side by side.
func basic(count int) Machine {
	list := &Screen{
		Label:  labelList,
		Top:    Source{Column: ColumnShortService},
		Middle: Source{Column: ColumnShortCode},
		Bottom: Source{Symbol: "S8_TITLE", Text: "VAULT"},
	}

	render := Action{Kind: ActionRender, Screen: list}

	return Machine{
		Variant: VariantBasic,
		Count:   count,
		List:    list,
		States: []StateDescriptor{
			{
				ID: 0,
				Events: []Binding{
					{Event: device.EventEnter, Timing: device.TimingOnce, Next: 0},
					{Event: device.EventResume, Timing: device.TimingOnce, Next: 0},
					{Event: device.EventNext, Timing: device.TimingOnce, Next: 0, Note: "Next entry"},
					{Event: device.EventPrev, Timing: device.TimingOnce, Next: 0, Note: "Previous entry"},
					{Event: device.EventMode, Timing: device.TimingOnce, Next: device.ExitParam},
				},
				Handlers: []Handler{
					{Event: device.EventEnter, Action: render},
					{Event: device.EventResume, Action: render},
					{Event: device.EventNext, Action: Action{Kind: ActionNext}},
					{Event: device.EventPrev, Action: Action{Kind: ActionPrev}},
				},
			},
		},
	}
}

// ---- program text ----

// JumpTable renders the per-state entry points of the application header.
func (m Machine) JumpTable() string {
	var b strings.Builder
	for i, s := range m.States {
		fmt.Fprintf(&b, "L%04x:  jmp    HANDLE_STATE%d\n", 0x123+4*i, s.ID)
		fmt.Fprintf(&b, "        db      STATETAB%d-STATETAB0\n", s.ID)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// StateTables renders every state's event table.
func (m Machine) StateTables() string {
	var b strings.Builder
	for i, s := range m.States {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "STATETAB%d:\n", s.ID)
		fmt.Fprintf(&b, "        db      %d\n", s.ID)
		for _, ev := range s.Events {
			row := fmt.Sprintf("        db      %s,%s,%s", ev.Event.Symbol(), ev.Timing.Symbol(), param(ev.Next))
			if ev.Note != "" {
				row = fmt.Sprintf("%-42s; %s", row, ev.Note)
			}
			b.WriteString(row + "\n")
		}
		b.WriteString("        db      EVT_END\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func param(p uint8) string {
	if p == device.ExitParam {
		return "$FF"
	}
	return fmt.Sprintf("%d", p)
}

// Handlers renders the state dispatchers followed by every screen and
// post routine they branch to.
func (m Machine) Handlers() string {
	var b strings.Builder
	seen := map[string]bool{labelNext: true, labelPrev: true}
	var routines []Action

	for _, s := range m.States {
		fmt.Fprintf(&b, "HANDLE_STATE%d:\n", s.ID)
		b.WriteString("        bset    1,APP_FLAGS\n")
		b.WriteString("        lda     BTNSTATE\n")
		for _, h := range s.Handlers {
			fmt.Fprintf(&b, "        cmp     #%s\n", h.Event.Symbol())
			fmt.Fprintf(&b, "        beq     %s\n", h.Action.label())
			if l := h.Action.label(); !seen[l] {
				seen[l] = true
				routines = append(routines, h.Action)
			}
		}
		b.WriteString("        rts\n\n")
	}

	for _, a := range routines {
		switch a.Kind {
		case ActionRender:
			writeScreen(&b, a.Screen)
		case ActionPost:
			fmt.Fprintf(&b, "%s:\n", a.label())
			fmt.Fprintf(&b, "        lda     #%s\n", a.Post.Symbol())
			fmt.Fprintf(&b, "        jmp     %s\n", device.PostEvent)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n")
}

func writeScreen(b *strings.Builder, s *Screen) {
	fmt.Fprintf(b, "%s:\n", s.Label)
	fmt.Fprintf(b, "        jsr     %s\n", device.ClearAll)
	writeLoad(b, s.Top)
	fmt.Fprintf(b, "        jsr     %s\n", device.PutTop)
	writeLoad(b, s.Middle)
	fmt.Fprintf(b, "        jsr     %s\n", device.PutMiddle)
	writeLoad(b, s.Bottom)
	fmt.Fprintf(b, "        jmp     %s\n", device.PutBottom)
}

// writeLoad loads the accumulator with the line's string offset.
func writeLoad(b *strings.Builder, src Source) {
	switch {
	case src.Column != ColumnNone:
		fmt.Fprintf(b, "        lda     %s\n", device.SymCurrentCode)
		for n := device.EntryStride; n > 1; n >>= 1 {
			b.WriteString("        lsla\n")
		}
		b.WriteString("        tax\n")
		fmt.Fprintf(b, "        lda     %s,X\n", src.Column.Table())
	case src.System:
		fmt.Fprintf(b, "        lda     #%s\n", src.Symbol)
	default:
		fmt.Fprintf(b, "        lda     #%s-%s\n", src.Symbol, device.Origin)
	}
}

// Constants renders the constant strings the screens reference.
// Top and middle lines are 6 characters, the bottom line 8.
func (m Machine) Constants() string {
	var b strings.Builder
	seen := map[string]bool{}

	add := func(src Source, w field.Width) {
		if src.Column != ColumnNone || src.System || seen[src.Symbol] {
			return
		}
		seen[src.Symbol] = true
		b.WriteString(dataLine(Slot{Symbol: src.Symbol, Field: field.Format(src.Text, w)}))
	}

	for _, s := range m.screens() {
		add(s.Top, field.Narrow)
		add(s.Middle, field.Narrow)
		add(s.Bottom, field.Wide)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (m Machine) screens() []*Screen {
	var out []*Screen
	seen := map[*Screen]bool{}
	for _, s := range m.States {
		for _, h := range s.Handlers {
			if h.Action.Kind == ActionRender && !seen[h.Action.Screen] {
				seen[h.Action.Screen] = true
				out = append(out, h.Action.Screen)
			}
		}
	}
	return out
}
