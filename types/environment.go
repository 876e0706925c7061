package types

// State of the system as produced by an Engine
// Concrete domains define their own types
type State interface{}

// Action understood by an Engine
type Action interface{}

// Observation is the agent visible projection of a State
// It can be the State itself when the environment is fully observable
type Observation interface{}

// AgentAction is the action representation native to an agent.
// ActionTransformer's convert it into an Action
type AgentAction interface{}

// Reward for each agent, indexed by the agent id.
// Single agent environments use a reward of length one
type Reward []float64

// SingleReward creates the reward of a single agent environment
func SingleReward(r float64) Reward {
	return Reward{r}
}

// Agent returns the reward of agent i, zero if there is no such agent
func (r Reward) Agent(i int) float64 {
	if i < 0 || i >= len(r) {
		return 0
	}
	return r[i]
}

// Total sum of the rewards of all agents
func (r Reward) Total() float64 {
	sum := float64(0)
	for _, v := range r {
		sum += v
	}
	return sum
}

// Clone returns a copy that does not share storage with r
func (r Reward) Clone() Reward {
	if r == nil {
		return nil
	}
	c := make(Reward, len(r))
	copy(c, r)
	return c
}

// Outcome is the ground truth result of a single Engine invocation
type Outcome[S State] struct {
	// Full next state of the environment
	State S
	// Reward for each agent
	Reward Reward
	// Whether the episode is complete
	Done bool
	// Information not captured by the other fields
	Info any
}

// Engine is the transition function of an environment.
// It must not mutate the state it is given and should return the same Outcome
// for identical inputs. Actions it cannot interpret are rejected with an *InvalidActionError
type Engine[S State, A Action] func(S, A) (Outcome[S], error)

// Environment persists the state of an Engine across steps
type Environment[S State, A Action] struct {
	state  S
	engine Engine[S, A]
}

// NewEnvironment creates an environment starting at the initial state
func NewEnvironment[S State, A Action](initial S, engine Engine[S, A]) *Environment[S, A] {
	return &Environment[S, A]{
		state:  initial,
		engine: engine,
	}
}

// State returns the current state of the environment
func (e *Environment[S, A]) State() S {
	return e.state
}

// Step invokes the engine once with the current state and the action.
// The state is replaced only when the engine succeeds, errors are returned unchanged
func (e *Environment[S, A]) Step(a A) (Outcome[S], error) {
	outcome, err := e.engine(e.state, a)
	if err != nil {
		return Outcome[S]{}, err
	}
	e.state = outcome.State
	return outcome, nil
}
