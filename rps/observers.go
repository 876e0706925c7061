package rps

import "github.com/zeu5/gearbox/types"

// PlayerView is the score from the point of view of one player
type PlayerView struct {
	BestOf   int
	Own      int
	Opponent int
	Rounds   int
}

// View of the state for player 0 (p1) or 1 (p2)
func (s State) View(agent int) PlayerView {
	if agent == 1 {
		return PlayerView{BestOf: s.BestOf, Own: s.P2Win, Opponent: s.P1Win, Rounds: s.Rounds}
	}
	return PlayerView{BestOf: s.BestOf, Own: s.P1Win, Opponent: s.P2Win, Rounds: s.Rounds}
}

// PlayerObserver observes the score of the agent in the context
var PlayerObserver types.Observer[State, PlayerView] = types.ProjectObserver(
	func(s State, ctx types.ObserveContext) PlayerView {
		return s.View(ctx.Agent)
	},
)

// Views of both players, indexed by agent
type Views [2]PlayerView

// JointObserver combines the observations of a per player observer
func JointObserver(player types.Observer[State, PlayerView]) types.Observer[State, Views] {
	return func(o types.Outcome[State], ctx types.ObserveContext) types.ObservedOutcome[Views] {
		var views Views
		for agent := range views {
			pctx := ctx
			pctx.Agent = agent
			views[agent] = player(o, pctx).Observation
		}
		return types.ObserveOutcome(o, views)
	}
}
