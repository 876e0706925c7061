package rps

import "github.com/zeu5/gearbox/types"

// JointPolicy lets two single player policies play against each other
type JointPolicy struct {
	players [2]types.Policy[PlayerView, int]
}

var _ types.Policy[Views, Choices] = &JointPolicy{}

func NewJointPolicy(p1, p2 types.Policy[PlayerView, int]) *JointPolicy {
	return &JointPolicy{
		players: [2]types.Policy[PlayerView, int]{p1, p2},
	}
}

func (j *JointPolicy) Reset() {
	for _, p := range j.players {
		p.Reset()
	}
}

func (j *JointPolicy) NextAction(step int, views Views) (Choices, bool) {
	c1, ok := j.players[0].NextAction(step, views[0])
	if !ok {
		return Choices{}, false
	}
	c2, ok := j.players[1].NextAction(step, views[1])
	if !ok {
		return Choices{}, false
	}
	return Choices{P1: c1, P2: c2}, true
}

func (j *JointPolicy) Observe(step int, observed types.ObservedOutcome[Views]) {
	for agent, p := range j.players {
		p.Observe(step, types.ObservedOutcome[PlayerView]{
			Observation: observed.Observation[agent],
			Reward:      observed.Reward,
			Done:        observed.Done,
			Info:        observed.Info,
		})
	}
}

// NewConfig creates the agent configuration of a best-of game between two policies
func NewConfig(bestOf, episodes int, p1, p2 types.Policy[PlayerView, int]) *types.AgentConfig[State, Action, Views, Choices] {
	return &types.AgentConfig[State, Action, Views, Choices]{
		Episodes:     episodes,
		Horizon:      0,
		InitialState: NewState(bestOf),
		Engine:       Engine,
		Observer:     JointObserver(PlayerObserver),
		Transformer:  ChoiceTransformer,
		Policy:       NewJointPolicy(p1, p2),
	}
}
