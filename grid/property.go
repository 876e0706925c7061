package grid

import "github.com/zeu5/gearbox/types"

func InPosition(i, j, k int) types.MonitorCondition[Position, Movement] {
	return func(_ Position, _ Movement, o types.Outcome[Position]) bool {
		return o.State.Eq(Position{i, j, k})
	}
}

// GridReached is satisfied once the agent enters grid k
func GridReached(k int) *types.Monitor[Position, Movement] {
	monitor := types.NewMonitor[Position, Movement]()
	monitor.Build().On(InPosition(0, 0, k), "GridReached").MarkSuccess()
	return monitor
}
