package types

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Policy picks the agent's next action from its observation.
// Policies here are fixed, Observe only lets them track the episode
type Policy[O Observation, AA AgentAction] interface {
	NextAction(int, O) (AA, bool)
	Observe(int, ObservedOutcome[O])
	Reset()
}

// NewSource returns a random source, seeded from the clock when seed is zero
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// RandomPolicy picks one of n choices uniformly
type RandomPolicy[O Observation] struct {
	choices int
	rand    *rand.Rand
}

var _ Policy[State, int] = &RandomPolicy[State]{}

func NewRandomPolicy[O Observation](choices int, seed uint64) *RandomPolicy[O] {
	return &RandomPolicy[O]{
		choices: choices,
		rand:    rand.New(NewSource(seed)),
	}
}

func (r *RandomPolicy[O]) Reset() {}

func (r *RandomPolicy[O]) Observe(_ int, _ ObservedOutcome[O]) {}

func (r *RandomPolicy[O]) NextAction(_ int, _ O) (int, bool) {
	if r.choices <= 0 {
		return 0, false
	}
	return r.rand.Intn(r.choices), true
}

// WeightedPolicy picks choice i with probability proportional to weights[i]
type WeightedPolicy[O Observation] struct {
	weights []float64
	src     rand.Source
}

var _ Policy[State, int] = &WeightedPolicy[State]{}

func NewWeightedPolicy[O Observation](weights []float64, seed uint64) *WeightedPolicy[O] {
	w := make([]float64, len(weights))
	copy(w, weights)
	return &WeightedPolicy[O]{
		weights: w,
		src:     NewSource(seed),
	}
}

func (w *WeightedPolicy[O]) Reset() {}

func (w *WeightedPolicy[O]) Observe(_ int, _ ObservedOutcome[O]) {}

func (w *WeightedPolicy[O]) NextAction(_ int, _ O) (int, bool) {
	if len(w.weights) == 0 {
		return 0, false
	}
	// Take removes the sampled index, so a new sampler is needed every time
	return sampleuv.NewWeighted(w.weights, w.src).Take()
}

// ConstantPolicy always picks the same action
type ConstantPolicy[O Observation, AA AgentAction] struct {
	action AA
}

var _ Policy[State, AgentAction] = &ConstantPolicy[State, AgentAction]{}

func NewConstantPolicy[O Observation, AA AgentAction](action AA) *ConstantPolicy[O, AA] {
	return &ConstantPolicy[O, AA]{action: action}
}

func (c *ConstantPolicy[O, AA]) Reset() {}

func (c *ConstantPolicy[O, AA]) Observe(_ int, _ ObservedOutcome[O]) {}

func (c *ConstantPolicy[O, AA]) NextAction(_ int, _ O) (AA, bool) {
	return c.action, true
}

// SequencePolicy replays a fixed list of actions, refusing once exhausted.
// The position is rewound on Reset
type SequencePolicy[O Observation, AA AgentAction] struct {
	actions []AA
	next    int
}

var _ Policy[State, AgentAction] = &SequencePolicy[State, AgentAction]{}

func NewSequencePolicy[O Observation, AA AgentAction](actions ...AA) *SequencePolicy[O, AA] {
	return &SequencePolicy[O, AA]{actions: actions}
}

func (s *SequencePolicy[O, AA]) Reset() {
	s.next = 0
}

func (s *SequencePolicy[O, AA]) Observe(_ int, _ ObservedOutcome[O]) {}

func (s *SequencePolicy[O, AA]) NextAction(_ int, _ O) (AA, bool) {
	if s.next >= len(s.actions) {
		var zero AA
		return zero, false
	}
	a := s.actions[s.next]
	s.next += 1
	return a, true
}
