package rps

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/zeu5/gearbox/types"
	"github.com/zeu5/gearbox/util"
)

// WinDataSet holds the cumulative number of games won by each player after each episode
type WinDataSet struct {
	P1    []int
	P2    []int
	Draws []int
	// Rounds played in each episode
	Rounds []int
}

// Games played
func (w *WinDataSet) Games() int {
	return len(w.P1)
}

// P1Rate is the fraction of games won by p1 after each episode
func (w *WinDataSet) P1Rate() []float64 {
	rates := make([]float64, len(w.P1))
	for i, wins := range w.P1 {
		rates[i] = float64(wins) / float64(i+1)
	}
	return rates
}

func winnerOf(trace *types.Trace[State, Action]) int {
	_, _, outcome, ok := trace.Last()
	if !ok || !outcome.Done {
		return NoWinner
	}
	info, ok := outcome.Info.(Info)
	if !ok {
		return NoWinner
	}
	return info.Winner
}

// WinAnalyzer counts the games won by each player
func WinAnalyzer(_ string, traces []*types.Trace[State, Action]) types.DataSet {
	ds := &WinDataSet{
		P1:     make([]int, len(traces)),
		P2:     make([]int, len(traces)),
		Draws:  make([]int, len(traces)),
		Rounds: make([]int, len(traces)),
	}
	p1, p2, draws := 0, 0, 0
	for i, trace := range traces {
		switch winnerOf(trace) {
		case Player1:
			p1 += 1
		case Player2:
			p2 += 1
		default:
			draws += 1
		}
		ds.P1[i] = p1
		ds.P2[i] = p2
		ds.Draws[i] = draws
		ds.Rounds[i] = trace.Len()
	}
	return ds
}

// WinComparator prints the final tally of each experiment and plots the p1 win rate.
// The tally is also written to summary.txt when plotPath is set
func WinComparator(plotPath string, out io.Writer) types.Comparator {
	plotter := &types.SeriesPlotter{
		PlotPath: plotPath,
		FileName: "p1_win_rate.png",
		Title:    "Comparison",
		YLabel:   "P1 win rate",
	}
	plotRates := plotter.Comparator()
	return func(names []string, datasets []types.DataSet) error {
		lines := make([]string, 0, len(names))
		rates := make([]types.DataSet, len(names))
		for i, name := range names {
			ds := datasets[i].(*WinDataSet)
			rates[i] = ds.P1Rate()
			games := ds.Games()
			if games == 0 {
				lines = append(lines, fmt.Sprintf("%s: no games", name))
				continue
			}
			rounds := 0
			for _, r := range ds.Rounds {
				rounds += r
			}
			lines = append(lines, fmt.Sprintf("%s: P1 %d, P2 %d, Draws %d, Avg rounds %.2f",
				name, ds.P1[games-1], ds.P2[games-1], ds.Draws[games-1], float64(rounds)/float64(games)))
		}
		fmt.Fprintln(out, strings.Join(lines, "\n"))
		if err := plotRates(names, rates); err != nil {
			return err
		}
		if plotPath == "" {
			return nil
		}
		return util.WriteToFile(path.Join(plotPath, "summary.txt"), lines...)
	}
}
