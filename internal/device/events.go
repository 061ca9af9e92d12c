// internal/device/events.go
package device

// Event is a button, timer or synthetic signal delivered to a state handler.
type Event uint8

const (
	EventEnter Event = iota + 1
	EventResume
	EventNext    // down NEXT
	EventPrev    // down PREV
	EventSet     // down SET
	EventSetUp   // SET released
	EventMode    // down MODE
	EventTimer2  // timer 2 tick
	EventUser0   // synthetic, posted by the program
)

var eventSymbols = map[Event]string{
	EventEnter:  "EVT_ENTER",
	EventResume: "EVT_RESUME",
	EventNext:   "EVT_DNNEXT",
	EventPrev:   "EVT_DNPREV",
	EventSet:    "EVT_SET",
	EventSetUp:  "EVT_UPSET",
	EventMode:   "EVT_MODE",
	EventTimer2: "EVT_TIMER2",
	EventUser0:  "EVT_USER0",
}

// Symbol is the runtime include's name for the event.
func (e Event) Symbol() string {
	if s, ok := eventSymbols[e]; ok {
		return s
	}
	return "EVT_UNKNOWN"
}

func (e Event) String() string { return e.Symbol() }

// Timing selects how the runtime arms timers for a state table row.
type Timing uint8

const (
	TimingOnce    Timing = iota // TIM_ONCE
	TimingTimer2                // TIM2_TIC
)

// Symbol is the runtime include's name for the timing mode.
func (t Timing) Symbol() string {
	switch t {
	case TimingTimer2:
		return "TIM2_TIC"
	default:
		return "TIM_ONCE"
	}
}

// ---- RUNTIME SERVICES ----

// Display and event primitives provided by the device runtime.
const (
	ClearAll  = "CLEARALL"
	PutTop    = "PUT6TOP"
	PutMiddle = "PUT6MID"
	PutBottom = "PUTMSGBOT"
	PostEvent = "POSTEVENT"
)
