package grid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeu5/gearbox/types"
)

func TestGridEngine(t *testing.T) {
	g := NewGrid(3, 3, 2, Position{1, 1, 1})
	env := types.NewEnvironment[Position, Movement](g.Start(), g.Engine)
	moves := []Movement{MovementUp, MovementUp, MovementUp, MovementRight, MovementRight, NextGridMovement, MovementUp, MovementRight}
	var outcome types.Outcome[Position]
	var err error
	for i, m := range moves {
		outcome, err = env.Step(m)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if i < len(moves)-1 && outcome.Done {
			t.Fatalf("done too early at %d: %+v", i, outcome.State)
		}
	}
	if !outcome.Done || outcome.Reward.Agent(0) != 1 {
		t.Errorf("expected the goal to be reached, got %+v", outcome)
	}
	if env.State() != (Position{1, 1, 1}) {
		t.Errorf("unexpected position %+v", env.State())
	}
}

func TestGridDoorsAndBounds(t *testing.T) {
	g := NewGrid(4, 4, 3, Position{3, 3, 2}, Door{From: Position{0, 0, 0}, To: Position{0, 0, 2}})
	o, err := g.Engine(g.Start(), NextGridMovement)
	if err != nil || o.State != (Position{0, 0, 2}) {
		t.Errorf("door not taken: %+v %v", o.State, err)
	}
	o, _ = g.Engine(g.Start(), MovementLeft)
	if o.State != g.Start() || o.Reward.Agent(0) != 0 {
		t.Errorf("moved out of bounds: %+v", o.State)
	}
}

func TestGridInvalidMovement(t *testing.T) {
	g := NewGrid(2, 2, 1, Position{1, 1, 0})
	_, err := g.Engine(g.Start(), MovementTransformer(17))
	if !errors.Is(err, types.ErrInvalidAction) {
		t.Errorf("expected invalid action, got %v", err)
	}
}

func TestLocalObserverHidesGrid(t *testing.T) {
	o := types.Outcome[Position]{State: Position{2, 1, 3}, Reward: types.SingleReward(0)}
	observed := LocalObserver(o, types.ObserveContext{})
	if observed.Observation != (Local{I: 2, J: 1}) {
		t.Errorf("unexpected observation %+v", observed.Observation)
	}
}

func TestGridAgentAndAnalysis(t *testing.T) {
	g := NewGrid(2, 2, 2, Position{1, 1, 1})
	moves := []int{0, 3, 5, 0, 3}
	agent := types.NewAgent(&types.AgentConfig[Position, Movement, Local, int]{
		Episodes:     2,
		Horizon:      10,
		InitialState: g.Start(),
		Engine:       g.Engine,
		Observer:     LocalObserver,
		Transformer:  MovementTransformer,
		Policy:       types.NewSequencePolicy[Local](moves...),
	})
	if err := agent.Run(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	traces := agent.Traces()
	for _, trace := range traces {
		if trace.Len() != 5 {
			t.Errorf("expected 5 steps, got %d", trace.Len())
		}
		if _, ok := GridReached(1).Check(trace); !ok {
			t.Errorf("expected grid 1 to be reached")
		}
	}

	ds := GridAnalyzer("seq", traces).(*GridDataSet)
	if ds.Height != 2 || ds.Width != 2 {
		t.Errorf("unexpected dims %d x %d", ds.Height, ds.Width)
	}
	// (0, 0) is left twice per episode, once in each grid
	if ds.Visits[0][0] != 4 {
		t.Errorf("expected 4 visits to (0, 0), got %d", ds.Visits[0][0])
	}
	if ds.Max() != 4 {
		t.Errorf("unexpected max %f", ds.Max())
	}

	dir := t.TempDir()
	if err := GridHeatMapComparator(dir)([]string{"seq"}, []types.DataSet{ds}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "seq_visits.png")); err != nil {
		t.Errorf("heat map not saved: %s", err)
	}
}
