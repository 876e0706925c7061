package grid

import (
	"fmt"

	"github.com/zeu5/gearbox/types"
)

// Grid is a stack of Height x Width grids connected through doors.
// The agent starts at (0, 0, 0) and the episode ends at the Goal
type Grid struct {
	Height int
	Width  int
	Grids  int
	Doors  []Door
	Goal   Position
}

type Door struct {
	From Position
	To   Position
}

func NewGrid(height, width, grids int, goal Position, doors ...Door) *Grid {
	return &Grid{
		Height: height,
		Width:  width,
		Grids:  grids,
		Doors:  doors,
		Goal:   goal,
	}
}

// Start position of every episode
func (g *Grid) Start() Position {
	return Position{0, 0, 0}
}

// Engine moves the agent, the reward is 1 when reaching the goal and 0 otherwise
func (g *Grid) Engine(p Position, m Movement) (types.Outcome[Position], error) {
	next, err := g.move(p, m)
	if err != nil {
		return types.Outcome[Position]{}, err
	}
	reached := next.Eq(g.Goal)
	reward := float64(0)
	if reached {
		reward = 1
	}
	return types.Outcome[Position]{
		State:  next,
		Reward: types.SingleReward(reward),
		Done:   reached,
		Info:   nil,
	}, nil
}

func (g *Grid) move(p Position, m Movement) (Position, error) {
	newPos := p
	if m.Direction == "Next" {
		for _, d := range g.Doors {
			if d.From.Eq(p) {
				return d.To, nil
			}
		}
	}

	switch m.Direction {
	case "Nothing":
	case "Up":
		newPos.I = min(g.Height-1, p.I+1)
	case "Down":
		newPos.I = max(0, p.I-1)
	case "Left":
		newPos.J = max(0, p.J-1)
	case "Right":
		newPos.J = min(g.Width-1, p.J+1)
	case "Next":
		// the top right corner leads to the next grid
		if p.I == g.Height-1 && p.J == g.Width-1 && p.K < g.Grids-1 {
			newPos = Position{0, 0, p.K + 1}
		}
	default:
		return p, types.NewInvalidActionError(m, fmt.Sprintf("unknown direction %q", m.Direction))
	}
	return newPos, nil
}

type Position struct {
	I int
	J int
	K int
}

func (p Position) Hash() string {
	return fmt.Sprintf("(%d, %d, %d)", p.I, p.J, p.K)
}

func (p Position) Eq(other Position) bool {
	return p.I == other.I && p.J == other.J && p.K == other.K
}

type Movement struct {
	Direction string
}

func (m Movement) Hash() string {
	return m.Direction
}

var (
	MovementUp       = Movement{"Up"}
	MovementDown     = Movement{"Down"}
	MovementLeft     = Movement{"Left"}
	MovementRight    = Movement{"Right"}
	NoMovement       = Movement{"Nothing"}
	NextGridMovement = Movement{"Next"}
	AllMovements     = []Movement{
		MovementUp,
		MovementDown,
		MovementLeft,
		MovementRight,
		NoMovement,
		NextGridMovement,
	}
)

// MovementTransformer maps a choice index to a movement
var MovementTransformer types.ActionTransformer[int, Movement] = func(i int) Movement {
	if i < 0 || i >= len(AllMovements) {
		return Movement{"Invalid"}
	}
	return AllMovements[i]
}

// Local is what the agent sees: its position in the current grid, not which grid it is in
type Local struct {
	I int
	J int
}

var LocalObserver types.Observer[Position, Local] = types.ProjectObserver(
	func(p Position, _ types.ObserveContext) Local {
		return Local{I: p.I, J: p.J}
	},
)
