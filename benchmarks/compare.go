package benchmarks

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/zeu5/gearbox/rps"
	"github.com/zeu5/gearbox/types"
)

type rpsComparison = types.Comparison[rps.State, rps.Action, rps.Views, rps.Choices]

// NewRPSComparison sets up the policy comparison of best-of games
func NewRPSComparison(episodes, bestOf int, saveFile string, seed uint64, out io.Writer) *rpsComparison {
	coverage := &types.SeriesPlotter{
		PlotPath: saveFile,
		FileName: "coverage.png",
		Title:    "Comparison",
		YLabel:   "States covered",
		Out:      out,
	}
	c := types.NewComparison[rps.State, rps.Action, rps.Views, rps.Choices](
		types.Analyzers(rps.WinAnalyzer, types.CoverageAnalyzer[rps.State, rps.Action]()),
		types.Comparators(rps.WinComparator(saveFile, out), coverage.Comparator()),
	)

	properties := func() []*types.Monitor[rps.State, rps.Action] {
		return []*types.Monitor[rps.State, rps.Action]{
			rps.SweepMonitor(),
			rps.ComebackMonitor(rps.Player1),
		}
	}
	// distinct seeds so that the players do not mirror each other
	random := func(offset uint64) types.Policy[rps.PlayerView, int] {
		if seed == 0 {
			return types.NewRandomPolicy[rps.PlayerView](len(rps.AllMoves), 0)
		}
		return types.NewRandomPolicy[rps.PlayerView](len(rps.AllMoves), seed+offset)
	}
	weighted := func(offset uint64) types.Policy[rps.PlayerView, int] {
		if seed == 0 {
			return types.NewWeightedPolicy[rps.PlayerView]([]float64{0.5, 0.3, 0.2}, 0)
		}
		return types.NewWeightedPolicy[rps.PlayerView]([]float64{0.5, 0.3, 0.2}, seed+offset)
	}

	c.AddExperiment(types.NewExperimentWithProperties(
		"Random-Random",
		rps.NewConfig(bestOf, episodes, random(1), random(2)),
		properties(),
	))
	c.AddExperiment(types.NewExperimentWithProperties(
		"Rock-Random",
		rps.NewConfig(bestOf, episodes, types.NewConstantPolicy[rps.PlayerView](0), random(3)),
		properties(),
	))
	c.AddExperiment(types.NewExperimentWithProperties(
		"Weighted-Random",
		rps.NewConfig(bestOf, episodes, weighted(4), random(5)),
		properties(),
	))
	c.AddExperiment(types.NewExperimentWithProperties(
		"Paper-Weighted",
		rps.NewConfig(bestOf, episodes, types.NewConstantPolicy[rps.PlayerView](1), weighted(6)),
		properties(),
	))
	return c
}

func CompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare fixed policies playing rock-paper-scissors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRPSComparison(episodes, bestOf, saveFile, seed, cmd.OutOrStdout()).Run(cmd.OutOrStdout())
		},
	}
}
