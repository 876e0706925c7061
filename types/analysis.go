package types

import (
	"fmt"
	"io"
	"os"
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CoverageAnalyzer counts the unique states visited after each episode.
// States and actions that do not implement Hasher are formatted with %v
func CoverageAnalyzer[S State, A Action]() Analyzer[S, A] {
	return func(_ string, traces []*Trace[S, A]) DataSet {
		graph := NewVisitGraph()
		numUniqueStates := make([]int, 0, len(traces))
		for _, trace := range traces {
			for j := 0; j < trace.Len(); j++ {
				s, a, o, _ := trace.Get(j)
				graph.Update(hasherOf(s), hasherOf(a).Hash(), hasherOf(o.State))
			}
			numUniqueStates = append(numUniqueStates, len(graph.Nodes))
		}
		return numUniqueStates
	}
}

type formatHash struct {
	v any
}

func (f formatHash) Hash() string {
	return fmt.Sprintf("%v", f.v)
}

func hasherOf(v any) Hasher {
	if h, ok := v.(Hasher); ok {
		return h
	}
	return formatHash{v}
}

// SeriesPlotter plots one line per experiment.
// Each dataset must be a []int or []float64 indexed by episode
type SeriesPlotter struct {
	// Folder where the plots are saved, nothing is saved when empty
	PlotPath string
	FileName string
	Title    string
	YLabel   string
	// Where the last value of each series is printed
	Out io.Writer
}

func toFloats(d DataSet) ([]float64, error) {
	switch vals := d.(type) {
	case []float64:
		return vals, nil
	case []int:
		res := make([]float64, len(vals))
		for i, v := range vals {
			res[i] = float64(v)
		}
		return res, nil
	}
	return nil, fmt.Errorf("unsupported dataset type %T", d)
}

// Comparator returns the comparator saving the plot
func (sp *SeriesPlotter) Comparator() Comparator {
	return func(names []string, ds []DataSet) error {
		p := plot.New()
		p.Title.Text = sp.Title
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = sp.YLabel
		for i := 0; i < len(names); i++ {
			series, err := toFloats(ds[i])
			if err != nil {
				return fmt.Errorf("experiment %s: %w", names[i], err)
			}
			if len(series) == 0 {
				continue
			}
			if sp.Out != nil {
				fmt.Fprintf(sp.Out, "%s: %v for experiment: %s\n", sp.YLabel, series[len(series)-1], names[i])
			}
			points := make(plotter.XYs, len(series))
			for j, v := range series {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		if sp.PlotPath == "" {
			return nil
		}
		if _, err := os.Stat(sp.PlotPath); err != nil {
			if err := os.MkdirAll(sp.PlotPath, os.ModePerm); err != nil {
				return err
			}
		}
		return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(sp.PlotPath, sp.FileName))
	}
}
