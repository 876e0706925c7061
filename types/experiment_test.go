package types

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestComparison(t *testing.T) {
	reached := NewMonitor[counter, increment]()
	reached.Build().On(countReached(3), "Three").MarkSuccess()

	var names []string
	var datasets []DataSet
	c := NewComparison[counter, increment, counter, int](
		Analyzers(CoverageAnalyzer[counter, increment]()),
		Comparators(func(n []string, ds []DataSet) error {
			names = n
			datasets = ds
			return nil
		}),
	)
	c.AddExperiment(NewExperimentWithProperties("ones", counterConfig(3, 0, NewConstantPolicy[counter](1)), []*Monitor[counter, increment]{reached}))
	c.AddExperiment(NewExperiment("threes", counterConfig(2, 0, NewConstantPolicy[counter](3))))

	out := &bytes.Buffer{}
	if err := c.Run(out); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !reflect.DeepEqual(names, []string{"ones", "threes"}) {
		t.Errorf("unexpected names %v", names)
	}
	// 0 -> 1 -> 2 -> 3 visits 4 states, 0 -> 3 visits 2
	if !reflect.DeepEqual(datasets[0], []int{4, 4, 4}) {
		t.Errorf("unexpected coverage %v", datasets[0])
	}
	if !reflect.DeepEqual(datasets[1], []int{2, 2}) {
		t.Errorf("unexpected coverage %v", datasets[1])
	}
	if c.Experiments[0].PropertiesStats[0] != 3 {
		t.Errorf("expected property satisfied in 3 episodes, got %d", c.Experiments[0].PropertiesStats[0])
	}
	if !strings.Contains(out.String(), "Property 1 satisfied in 3 episodes") {
		t.Errorf("missing property report in %q", out.String())
	}
}

func TestExperimentFailsOnInvalidAction(t *testing.T) {
	e := NewExperiment("negative", counterConfig(1, 0, NewConstantPolicy[counter](-1)))
	if err := e.Run(&bytes.Buffer{}); err == nil {
		t.Errorf("expected the experiment to fail")
	}
}

func TestSeriesPlotter(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	sp := &SeriesPlotter{
		PlotPath: dir,
		FileName: "series.png",
		Title:    "Test",
		YLabel:   "Value",
		Out:      out,
	}
	err := sp.Comparator()([]string{"a", "b"}, []DataSet{[]int{1, 2, 3}, []float64{0.5, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "series.png")); err != nil {
		t.Errorf("plot not saved: %s", err)
	}
	if !strings.Contains(out.String(), "Value: 3 for experiment: a") {
		t.Errorf("unexpected output %q", out.String())
	}
	if err := sp.Comparator()([]string{"a"}, []DataSet{"bad"}); err == nil {
		t.Errorf("expected an error for unsupported datasets")
	}
}
