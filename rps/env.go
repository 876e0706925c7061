package rps

import (
	"fmt"

	"github.com/zeu5/gearbox/types"
)

type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// AllMoves in the order used by agent choices
var AllMoves = []Move{Rock, Paper, Scissors}

// Beats returns true if m wins against other
func (m Move) Beats(other Move) bool {
	switch m {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	}
	return false
}

// ParseMove validates a move token
func ParseMove(token string) (Move, bool) {
	for _, m := range AllMoves {
		if string(m) == token {
			return m, true
		}
	}
	return "", false
}

// Action holds the raw tokens thrown by both players.
// The engine rejects tokens that are not moves
type Action struct {
	P1 string
	P2 string
}

func (a Action) Hash() string {
	return a.P1 + "-" + a.P2
}

// State of a best-of game
type State struct {
	BestOf int
	P1Win  int
	P2Win  int
	// Rounds played including draws
	Rounds int
}

func NewState(bestOf int) State {
	return State{BestOf: bestOf}
}

func (s State) Hash() string {
	return fmt.Sprintf("(%d, %d, %d)", s.P1Win, s.P2Win, s.Rounds)
}

// Winners of a round or game
const (
	NoWinner = 0
	Player1  = 1
	Player2  = 2
)

// Info attached to every outcome
type Info struct {
	// Winner of the game, NoWinner while the game is running or drawn
	Winner int
	// Winner of the round that was just played
	RoundWinner int
}

var _ types.Engine[State, Action] = Engine
var _ types.Engine[State, Action] = RoundEngine

func parseAction(a Action) (Move, Move, error) {
	p1, ok := ParseMove(a.P1)
	if !ok {
		return "", "", types.NewInvalidActionError(a, fmt.Sprintf("%q is not a valid action. Valid actions are \"rock\" \"paper\" and \"scissors\"", a.P1))
	}
	p2, ok := ParseMove(a.P2)
	if !ok {
		return "", "", types.NewInvalidActionError(a, fmt.Sprintf("%q is not a valid action. Valid actions are \"rock\" \"paper\" and \"scissors\"", a.P2))
	}
	return p1, p2, nil
}

func roundWinner(p1, p2 Move) int {
	switch {
	case p1 == p2:
		return NoWinner
	case p1.Beats(p2):
		return Player1
	default:
		return Player2
	}
}

func rewardOf(winner int) types.Reward {
	switch winner {
	case Player1:
		return types.Reward{1, -1}
	case Player2:
		return types.Reward{-1, 1}
	default:
		return types.Reward{0, 0}
	}
}

// RoundEngine plays a single round, every outcome is terminal.
// The state is returned as is
func RoundEngine(s State, a Action) (types.Outcome[State], error) {
	p1, p2, err := parseAction(a)
	if err != nil {
		return types.Outcome[State]{}, err
	}
	winner := roundWinner(p1, p2)
	return types.Outcome[State]{
		State:  s,
		Reward: rewardOf(winner),
		Done:   true,
		Info:   Info{Winner: winner, RoundWinner: winner},
	}, nil
}

// Engine plays a round of a best-of game.
// The game ends when a player won more than half of BestOf rounds
// or when BestOf rounds were played
func Engine(s State, a Action) (types.Outcome[State], error) {
	round, err := RoundEngine(s, a)
	if err != nil {
		return types.Outcome[State]{}, err
	}
	info := round.Info.(Info)

	// s is a copy, the caller's state is untouched
	next := s
	next.Rounds += 1
	switch info.RoundWinner {
	case Player1:
		next.P1Win += 1
	case Player2:
		next.P2Win += 1
	}

	outcome := types.Outcome[State]{
		State:  next,
		Reward: rewardOf(NoWinner),
		Done:   false,
		Info:   Info{Winner: NoWinner, RoundWinner: info.RoundWinner},
	}
	if next.P1Win > s.BestOf/2 || next.P2Win > s.BestOf/2 {
		outcome.Reward = round.Reward
		outcome.Info = Info{Winner: info.RoundWinner, RoundWinner: info.RoundWinner}
		outcome.Done = true
	} else if next.Rounds >= s.BestOf {
		outcome.Done = true
	}
	return outcome, nil
}
