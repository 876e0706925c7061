package rps

import "github.com/zeu5/gearbox/types"

// Choices are the discrete choices of both players, indices into AllMoves
type Choices struct {
	P1 int
	P2 int
}

// ChoiceToken converts a choice index to a move token.
// Indices outside AllMoves produce a token that the engine rejects
func ChoiceToken(choice int) string {
	if choice < 0 || choice >= len(AllMoves) {
		return "invalid"
	}
	return string(AllMoves[choice])
}

// ChoiceTransformer maps the agents' choices to an engine action
var ChoiceTransformer types.ActionTransformer[Choices, Action] = func(c Choices) Action {
	return Action{
		P1: ChoiceToken(c.P1),
		P2: ChoiceToken(c.P2),
	}
}
