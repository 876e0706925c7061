package types

// ActionTransformer converts the agent's representation of an action into the
// action expected by the engine
type ActionTransformer[AA AgentAction, A Action] func(AA) A

// IdentityTransformer for agents that already use the engine's actions
func IdentityTransformer[A Action](a A) A {
	return a
}

// ChainTransformers applies first and then second
func ChainTransformers[X AgentAction, Y any, A Action](first ActionTransformer[X, Y], second ActionTransformer[Y, A]) ActionTransformer[X, A] {
	return func(x X) A {
		return second(first(x))
	}
}
