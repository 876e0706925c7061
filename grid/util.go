package grid

import (
	"fmt"
	"os"
	"path"

	"github.com/zeu5/gearbox/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GridDataSet counts the visits to every (i, j) cell, all grids merged
type GridDataSet struct {
	Visits map[int]map[int]int
	Height int
	Width  int
}

var _ plotter.GridXYZ = &GridDataSet{}

func (g *GridDataSet) Dims() (int, int) {
	return g.Width, g.Height
}

func (g *GridDataSet) Z(j, i int) float64 {
	return float64(g.Visits[i][j])
}

func (g *GridDataSet) X(j int) float64 {
	return float64(j)
}

func (g *GridDataSet) Y(i int) float64 {
	return float64(i)
}

func (g *GridDataSet) Min() float64 {
	return 0.0
}

func (g *GridDataSet) Max() float64 {
	max := 0
	for _, vals := range g.Visits {
		for _, count := range vals {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

func GridAnalyzer(_ string, traces []*types.Trace[Position, Movement]) types.DataSet {
	dataSet := &GridDataSet{
		Visits: make(map[int]map[int]int),
		Height: 0,
		Width:  0,
	}
	for _, trace := range traces {
		for i := 0; i < trace.Len(); i++ {
			pos, _, _, _ := trace.Get(i)
			if _, ok := dataSet.Visits[pos.I]; !ok {
				dataSet.Visits[pos.I] = make(map[int]int)
			}
			if pos.I+1 > dataSet.Height {
				dataSet.Height = pos.I + 1
			}
			if pos.J+1 > dataSet.Width {
				dataSet.Width = pos.J + 1
			}
			dataSet.Visits[pos.I][pos.J] += 1
		}
	}
	return dataSet
}

// GridHeatMapComparator saves one heat map of the visits per experiment
func GridHeatMapComparator(figPath string) types.Comparator {
	return func(names []string, ds []types.DataSet) error {
		if figPath == "" {
			return nil
		}
		if err := os.MkdirAll(figPath, os.ModePerm); err != nil {
			return err
		}
		for i := 0; i < len(names); i++ {
			dataSet := ds[i].(*GridDataSet)
			if dataSet.Height < 2 || dataSet.Width < 2 {
				continue
			}
			p := plot.New()
			p.Title.Text = names[i]
			p.Add(plotter.NewHeatMap(dataSet, palette.Heat(20, 1)))
			if err := p.Save(4*vg.Inch, 4*vg.Inch, path.Join(figPath, names[i]+"_visits.png")); err != nil {
				return fmt.Errorf("saving heat map of %s: %w", names[i], err)
			}
		}
		return nil
	}
}
