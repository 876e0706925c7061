package types

import "fmt"

type AgentConfig[S State, A Action, O Observation, AA AgentAction] struct {
	Episodes int
	// Maximum number of steps in an episode, zero for no limit
	Horizon      int
	InitialState S
	Engine       Engine[S, A]
	Observer     Observer[S, O]
	Transformer  ActionTransformer[AA, A]
	Policy       Policy[O, AA]
}

// Episode collects what happened in a single episode
type Episode[S State, A Action, O Observation] struct {
	// Ground truth steps
	Trace *Trace[S, A]
	// What the agent observed after every step
	Observed []ObservedOutcomeWithAction[O, A]
}

// Agent drives the environment with the configured policy
type Agent[S State, A Action, O Observation, AA AgentAction] struct {
	config *AgentConfig[S, A, O, AA]
	// Only populated if the Run function is invoked
	episodes []*Episode[S, A, O]
	observer ActionObserver[S, O, A]
}

// Instantiates a new Agent
func NewAgent[S State, A Action, O Observation, AA AgentAction](config *AgentConfig[S, A, O, AA]) *Agent[S, A, O, AA] {
	return &Agent[S, A, O, AA]{
		config:   config,
		episodes: make([]*Episode[S, A, O], 0, config.Episodes),
		observer: WithAction[S, O, A](config.Observer),
	}
}

// Run the agent for the configured number of episodes.
// An engine error stops the run
func (a *Agent[S, A, O, AA]) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		episode, err := a.RunEpisode()
		if err != nil {
			return fmt.Errorf("episode %d: %w", i, err)
		}
		a.episodes = append(a.episodes, episode)
	}
	return nil
}

// Episodes returns the episodes completed by Run
func (a *Agent[S, A, O, AA]) Episodes() []*Episode[S, A, O] {
	return a.episodes
}

// Traces returns the ground truth traces of the completed episodes
func (a *Agent[S, A, O, AA]) Traces() []*Trace[S, A] {
	traces := make([]*Trace[S, A], len(a.episodes))
	for i, e := range a.episodes {
		traces[i] = e.Trace
	}
	return traces
}

// RunEpisode plays a single episode on a fresh environment.
// The episode ends when the outcome is done, the horizon is reached or the policy has no action.
// The partial episode is returned along with the error when the engine rejects an action
func (a *Agent[S, A, O, AA]) RunEpisode() (*Episode[S, A, O], error) {
	env := NewEnvironment(a.config.InitialState, a.config.Engine)
	policy := a.config.Policy
	policy.Reset()

	episode := &Episode[S, A, O]{
		Trace:    NewTrace[S, A](),
		Observed: make([]ObservedOutcomeWithAction[O, A], 0),
	}
	// the agent first sees the initial state as an outcome with no reward
	observed := a.config.Observer(Outcome[S]{State: env.State()}, ObserveContext{})

	for step := 0; a.config.Horizon <= 0 || step < a.config.Horizon; step++ {
		agentAction, ok := policy.NextAction(step, observed.Observation)
		if !ok {
			break
		}
		action := a.config.Transformer(agentAction)
		state := env.State()
		outcome, err := env.Step(action)
		if err != nil {
			return episode, fmt.Errorf("step %d: %w", step, err)
		}
		episode.Trace.Append(state, action, outcome)

		withAction := a.observer(outcome, action, ObserveContext{Step: step + 1})
		episode.Observed = append(episode.Observed, withAction)
		observed = withAction.ObservedOutcome
		policy.Observe(step, observed)

		if outcome.Done {
			break
		}
	}
	return episode, nil
}
