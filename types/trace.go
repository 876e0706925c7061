package types

// Trace of an episode as triplets (state, action, outcome)
// The outcome holds the next state
type Trace[S State, A Action] struct {
	states   []S
	actions  []A
	outcomes []Outcome[S]
}

func NewTrace[S State, A Action]() *Trace[S, A] {
	return &Trace[S, A]{
		states:   make([]S, 0),
		actions:  make([]A, 0),
		outcomes: make([]Outcome[S], 0),
	}
}

func (t *Trace[S, A]) Slice(from, to int) *Trace[S, A] {
	slicedTrace := NewTrace[S, A]()
	for i := from; i < to; i++ {
		slicedTrace.Append(t.states[i], t.actions[i], t.outcomes[i])
	}
	return slicedTrace
}

func (t *Trace[S, A]) Append(state S, action A, outcome Outcome[S]) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.outcomes = append(t.outcomes, outcome)
}

func (t *Trace[S, A]) Len() int {
	return len(t.states)
}

func (t *Trace[S, A]) Get(i int) (S, A, Outcome[S], bool) {
	if i < 0 || i >= len(t.states) {
		var s S
		var a A
		return s, a, Outcome[S]{}, false
	}
	return t.states[i], t.actions[i], t.outcomes[i], true
}

func (t *Trace[S, A]) Last() (S, A, Outcome[S], bool) {
	return t.Get(len(t.states) - 1)
}

func (t *Trace[S, A]) GetPrefix(i int) (*Trace[S, A], bool) {
	if i < 0 || i > len(t.states) {
		return nil, false
	}
	return &Trace[S, A]{
		states:   t.states[0:i],
		actions:  t.actions[0:i],
		outcomes: t.outcomes[0:i],
	}, true
}

// TotalReward sums the rewards of the trace for each agent
func (t *Trace[S, A]) TotalReward() Reward {
	total := make(Reward, 0)
	for _, o := range t.outcomes {
		for len(total) < len(o.Reward) {
			total = append(total, 0)
		}
		for i, r := range o.Reward {
			total[i] += r
		}
	}
	return total
}
