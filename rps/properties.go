package rps

import "github.com/zeu5/gearbox/types"

func roundWonBy(player int) types.MonitorCondition[State, Action] {
	return func(_ State, _ Action, o types.Outcome[State]) bool {
		info, ok := o.Info.(Info)
		return ok && info.RoundWinner == player
	}
}

func gameWonBy(player int) types.MonitorCondition[State, Action] {
	return func(_ State, _ Action, o types.Outcome[State]) bool {
		info, ok := o.Info.(Info)
		return ok && o.Done && info.Winner == player
	}
}

// SweepMonitor is satisfied when p1 wins the game without dropping a round
func SweepMonitor() *types.Monitor[State, Action] {
	monitor := types.NewMonitor[State, Action]()
	monitor.Build().On(gameWonBy(Player1), "Swept").MarkSuccess()
	monitor.Build().On(roundWonBy(Player1).Not(), "Dropped")
	return monitor
}

// ComebackMonitor is satisfied when a player wins the game after losing the first round
func ComebackMonitor(player int) *types.Monitor[State, Action] {
	opponent := Player1
	if player == Player1 {
		opponent = Player2
	}
	monitor := types.NewMonitor[State, Action]()
	monitor.Build().
		On(roundWonBy(opponent), "Behind").
		On(gameWonBy(player), "Comeback").MarkSuccess()
	monitor.Build().On(roundWonBy(opponent).Not(), "NoComeback")
	return monitor
}
