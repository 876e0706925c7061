package types

// ObservedOutcome is the agent visible version of an Outcome.
// Only the state is replaced by an observation, reward, done and info are kept as is
type ObservedOutcome[O Observation] struct {
	Observation O
	Reward      Reward
	Done        bool
	Info        any
}

// ObservedOutcomeWithAction additionally records the action that resulted in the outcome
type ObservedOutcomeWithAction[O Observation, A Action] struct {
	ObservedOutcome[O]
	Action A
}

// ObserveOutcome converts an outcome into an observed outcome with the given observation
func ObserveOutcome[S State, O Observation](o Outcome[S], observation O) ObservedOutcome[O] {
	return ObservedOutcome[O]{
		Observation: observation,
		Reward:      o.Reward.Clone(),
		Done:        o.Done,
		Info:        o.Info,
	}
}

// AttachAction extends an observed outcome with the action that produced it
func AttachAction[O Observation, A Action](oo ObservedOutcome[O], a A) ObservedOutcomeWithAction[O, A] {
	return ObservedOutcomeWithAction[O, A]{
		ObservedOutcome: ObservedOutcome[O]{
			Observation: oo.Observation,
			Reward:      oo.Reward.Clone(),
			Done:        oo.Done,
			Info:        oo.Info,
		},
		Action: a,
	}
}

// ObserveContext is the extra information passed along to observers
type ObserveContext struct {
	// Agent for which the observation is made
	Agent int
	// Step of the episode
	Step int
	// Any additional values custom observers need
	Extra map[string]any
}

// Observer projects the ground truth outcome to what an agent can see
// Observers should not modify the outcome
type Observer[S State, O Observation] func(Outcome[S], ObserveContext) ObservedOutcome[O]

// ActionObserver is an observer that also attaches the action taken
type ActionObserver[S State, O Observation, A Action] func(Outcome[S], A, ObserveContext) ObservedOutcomeWithAction[O, A]

// FullObserver observes the entire state
func FullObserver[S State](o Outcome[S], _ ObserveContext) ObservedOutcome[S] {
	return ObserveOutcome(o, o.State)
}

// ProjectObserver creates an observer from a projection of the state
func ProjectObserver[S State, O Observation](project func(S, ObserveContext) O) Observer[S, O] {
	return func(o Outcome[S], ctx ObserveContext) ObservedOutcome[O] {
		return ObserveOutcome(o, project(o.State, ctx))
	}
}

// WithAction wraps the observer to attach the action to its result
// The nested observer is invoked with the same outcome and context
func WithAction[S State, O Observation, A Action](nested Observer[S, O]) ActionObserver[S, O, A] {
	return func(o Outcome[S], a A, ctx ObserveContext) ObservedOutcomeWithAction[O, A] {
		return AttachAction(nested(o, ctx), a)
	}
}
