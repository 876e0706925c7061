package types

import (
	"reflect"
	"testing"
)

func sampleOutcome() Outcome[counter] {
	return Outcome[counter]{
		State:  counter{Count: 4},
		Reward: Reward{1, -1},
		Done:   true,
		Info:   map[string]int{"winner": 1},
	}
}

func TestFullObserver(t *testing.T) {
	o := sampleOutcome()
	observed := FullObserver(o, ObserveContext{})
	if observed.Observation != o.State {
		t.Errorf("observation %+v differs from state %+v", observed.Observation, o.State)
	}
	if !reflect.DeepEqual(observed.Reward, o.Reward) {
		t.Errorf("reward changed: %v", observed.Reward)
	}
	if observed.Done != o.Done {
		t.Errorf("done changed")
	}
	if !reflect.DeepEqual(observed.Info, o.Info) {
		t.Errorf("info changed: %v", observed.Info)
	}
}

func TestObserversDoNotShareReward(t *testing.T) {
	o := sampleOutcome()
	observed := FullObserver(o, ObserveContext{})
	observed.Reward[0] = 100
	if o.Reward[0] != 1 {
		t.Errorf("observer result shares the reward of the outcome")
	}
}

func TestWithAction(t *testing.T) {
	parity := ProjectObserver(func(s counter, ctx ObserveContext) int {
		return (s.Count + ctx.Agent) % 2
	})
	o := sampleOutcome()
	ctx := ObserveContext{Agent: 1, Step: 3}
	action := increment{By: 2}

	withAction := WithAction[counter, int, increment](parity)(o, action, ctx)
	plain := parity(o, ctx)

	if withAction.Action != action {
		t.Errorf("expected action %+v, got %+v", action, withAction.Action)
	}
	if !reflect.DeepEqual(withAction.ObservedOutcome, plain) {
		t.Errorf("nested observation %+v differs from %+v", withAction.ObservedOutcome, plain)
	}
	if withAction.Observation != 1 {
		t.Errorf("context not forwarded to the nested observer")
	}
}

func TestWithActionComposesFullObserver(t *testing.T) {
	o := sampleOutcome()
	observer := WithAction[counter, counter, increment](FullObserver[counter])
	result := observer(o, increment{By: 1}, ObserveContext{})
	if result.Observation != o.State || result.Action.By != 1 || !result.Done {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestAttachAction(t *testing.T) {
	oo := ObservedOutcome[string]{Observation: "obs", Reward: SingleReward(1), Info: 5}
	with := AttachAction(oo, "act")
	if with.Action != "act" || with.Observation != "obs" || with.Info != 5 {
		t.Errorf("unexpected result %+v", with)
	}
}
