package benchmarks

import (
	"io"
	"path"

	"github.com/spf13/cobra"
	"github.com/zeu5/gearbox/grid"
	"github.com/zeu5/gearbox/types"
)

type gridComparison = types.Comparison[grid.Position, grid.Movement, grid.Local, int]

// NewGridComparison compares uniform and biased random walks on the grid
func NewGridComparison(episodes, horizon int, saveFile string, height, width, grids int, seed uint64, out io.Writer) *gridComparison {
	g := grid.NewGrid(height, width, grids, grid.Position{I: height - 1, J: width - 1, K: grids - 1})
	config := func(policy types.Policy[grid.Local, int]) *types.AgentConfig[grid.Position, grid.Movement, grid.Local, int] {
		return &types.AgentConfig[grid.Position, grid.Movement, grid.Local, int]{
			Episodes:     episodes,
			Horizon:      horizon,
			InitialState: g.Start(),
			Engine:       g.Engine,
			Observer:     grid.LocalObserver,
			Transformer:  grid.MovementTransformer,
			Policy:       policy,
		}
	}
	coverage := &types.SeriesPlotter{
		PlotPath: saveFile,
		FileName: "grid_coverage.png",
		Title:    "Comparison",
		YLabel:   "States covered",
		Out:      out,
	}
	heatMaps := ""
	if saveFile != "" {
		heatMaps = path.Join(saveFile, "grid")
	}
	c := types.NewComparison[grid.Position, grid.Movement, grid.Local, int](
		types.Analyzers(types.CoverageAnalyzer[grid.Position, grid.Movement](), grid.GridAnalyzer),
		types.Comparators(coverage.Comparator(), grid.GridHeatMapComparator(heatMaps)),
	)
	properties := func() []*types.Monitor[grid.Position, grid.Movement] {
		monitors := make([]*types.Monitor[grid.Position, grid.Movement], 0, grids-1)
		for k := 1; k < grids; k++ {
			monitors = append(monitors, grid.GridReached(k))
		}
		return monitors
	}

	c.AddExperiment(types.NewExperimentWithProperties(
		"Random",
		config(types.NewRandomPolicy[grid.Local](len(grid.AllMovements), seed)),
		properties(),
	))
	// Up, Down, Left, Right, Nothing, Next
	c.AddExperiment(types.NewExperimentWithProperties(
		"UpRight-Biased",
		config(types.NewWeightedPolicy[grid.Local]([]float64{0.3, 0.1, 0.1, 0.3, 0.05, 0.15}, seed)),
		properties(),
	))
	return c
}

func GridCommand() *cobra.Command {
	var height int
	var width int
	var grids int
	var horizon int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Compare random walks on connected grids",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewGridComparison(episodes, horizon, saveFile, height, width, grids, seed, cmd.OutOrStdout()).Run(cmd.OutOrStdout())
		},
	}
	cmd.PersistentFlags().IntVar(&height, "height", 5, "Height of each grid")
	cmd.PersistentFlags().IntVar(&width, "width", 5, "Width of each grid")
	cmd.PersistentFlags().IntVar(&grids, "grids", 2, "Number of grids")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	return cmd
}
