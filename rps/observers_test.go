package rps

import (
	"reflect"
	"testing"

	"github.com/zeu5/gearbox/types"
)

func TestPlayerObserver(t *testing.T) {
	outcome, err := Engine(State{BestOf: 5, P1Win: 2, P2Win: 1, Rounds: 4}, Action{P1: "rock", P2: "paper"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	p1 := PlayerObserver(outcome, types.ObserveContext{Agent: 0})
	p2 := PlayerObserver(outcome, types.ObserveContext{Agent: 1})
	if p1.Observation != (PlayerView{BestOf: 5, Own: 2, Opponent: 2, Rounds: 5}) {
		t.Errorf("unexpected p1 view %+v", p1.Observation)
	}
	if p2.Observation != (PlayerView{BestOf: 5, Own: 2, Opponent: 2, Rounds: 5}) {
		t.Errorf("unexpected p2 view %+v", p2.Observation)
	}
	if !reflect.DeepEqual(p1.Reward, outcome.Reward) || p1.Done != outcome.Done || p1.Info != outcome.Info {
		t.Errorf("observer changed reward, done or info")
	}
}

func TestJointObserver(t *testing.T) {
	outcome, err := Engine(NewState(3), Action{P1: "rock", P2: "scissors"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	observed := JointObserver(PlayerObserver)(outcome, types.ObserveContext{Step: 1})
	if observed.Observation[0].Own != 1 || observed.Observation[1].Opponent != 1 || observed.Observation[1].Own != 0 {
		t.Errorf("unexpected views %+v", observed.Observation)
	}

	withAction := types.WithAction[State, Views, Action](JointObserver(PlayerObserver))(outcome, Action{P1: "rock", P2: "scissors"}, types.ObserveContext{})
	if withAction.Action.P2 != "scissors" || withAction.Observation != observed.Observation {
		t.Errorf("unexpected observation with action %+v", withAction)
	}
}

func TestChoiceTransformer(t *testing.T) {
	a := ChoiceTransformer(Choices{P1: 0, P2: 2})
	if a != (Action{P1: "rock", P2: "scissors"}) {
		t.Errorf("unexpected action %+v", a)
	}
	invalid := ChoiceTransformer(Choices{P1: 3, P2: -1})
	if _, err := Engine(NewState(1), invalid); err == nil {
		t.Errorf("out of range choices should be rejected by the engine")
	}
}
