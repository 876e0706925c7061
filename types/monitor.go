package types

var (
	InitState string = "init"
)

// MonitorState is a state in the state machine (Monitor)
// Use MonitorBuilder to create monitor states (do not instantiate directly)
type MonitorState[S State, A Action] struct {
	Success     bool
	Name        string
	transitions map[string]MonitorCondition[S, A]
	// insertion order of the transitions so that checks are deterministic
	order []string
}

// Transitions of a Monitor are labelled with a MonitorCondition
// MonitorCondition is a predicate on a step of the trace (state, action, outcome)
type MonitorCondition[S State, A Action] func(S, A, Outcome[S]) bool

// Not operator on the MonitorCondition
func (m MonitorCondition[S, A]) Not() MonitorCondition[S, A] {
	return func(s S, a A, o Outcome[S]) bool {
		return !m(s, a, o)
	}
}

// Or operator between MonitorCondition's
func (m MonitorCondition[S, A]) Or(other MonitorCondition[S, A]) MonitorCondition[S, A] {
	return func(s S, a A, o Outcome[S]) bool {
		return m(s, a, o) || other(s, a, o)
	}
}

// And operator between MonitorCondition's
func (m MonitorCondition[S, A]) And(other MonitorCondition[S, A]) MonitorCondition[S, A] {
	return func(s S, a A, o Outcome[S]) bool {
		return m(s, a, o) && other(s, a, o)
	}
}

// Monitor is a generic state machine run over traces
type Monitor[S State, A Action] struct {
	states map[string]*MonitorState[S, A]
}

// Checks if a trace satisfies the monitor
// Simulates the monitor and returns the prefix
// that results in a transition to a success state
func (m *Monitor[S, A]) Check(t *Trace[S, A]) (*Trace[S, A], bool) {
	curState := m.states[InitState]
	if curState.Success {
		return NewTrace[S, A](), true
	}
	for i := 0; i < t.Len(); i++ {
		s, a, o, _ := t.Get(i)
		for _, next := range curState.order {
			if curState.transitions[next](s, a, o) {
				curState = m.states[next]
				break
			}
		}
		if curState.Success {
			return t.GetPrefix(i + 1)
		}
	}
	return nil, false
}

// Creates a new Monitor
// with a default initial state
func NewMonitor[S State, A Action]() *Monitor[S, A] {
	m := &Monitor[S, A]{
		states: make(map[string]*MonitorState[S, A]),
	}
	m.states[InitState] = newMonitorState[S, A](InitState)
	return m
}

func newMonitorState[S State, A Action](name string) *MonitorState[S, A] {
	return &MonitorState[S, A]{
		Name:        name,
		Success:     false,
		transitions: make(map[string]MonitorCondition[S, A]),
		order:       make([]string, 0),
	}
}

// Returns a MonitorBuilder to construct the remainder of the state machine
// Initialized at the initial state
func (m *Monitor[S, A]) Build() *MonitorBuilder[S, A] {
	return &MonitorBuilder[S, A]{
		monitor:  m,
		curState: m.states[InitState],
	}
}

// Encodes a Builder pattern to create the state machine
// The builder is indexed at a particular state of the state machine (Monitor)
type MonitorBuilder[S State, A Action] struct {
	monitor  *Monitor[S, A]
	curState *MonitorState[S, A]
}

// On defines a transition from the current state based on the condition the next state
// returns a new builder instance that is indexed at the next state.
// To construct a chain of state one can call s1.On().On().On()...
// Note: If `next` is not part of the state machine, then its newly created otherwise the existing state is indexed
func (m *MonitorBuilder[S, A]) On(cond MonitorCondition[S, A], next string) *MonitorBuilder[S, A] {
	nextState, ok := m.monitor.states[next]
	if !ok {
		nextState = newMonitorState[S, A](next)
		m.monitor.states[next] = nextState
	}
	if _, exists := m.curState.transitions[next]; !exists {
		m.curState.order = append(m.curState.order, next)
	}
	m.curState.transitions[next] = cond
	return &MonitorBuilder[S, A]{
		monitor:  m.monitor,
		curState: nextState,
	}
}

// Mark the corresponding state indexed at this builder instance as a success state
func (m *MonitorBuilder[S, A]) MarkSuccess() *MonitorBuilder[S, A] {
	m.curState.Success = true
	return m
}
