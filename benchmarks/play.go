package benchmarks

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeu5/gearbox/rps"
	"github.com/zeu5/gearbox/types"
)

// humanMove is what the human typed along with the computer's choice
type humanMove struct {
	token    string
	computer int
}

var humanTransformer types.ActionTransformer[humanMove, rps.Action] = func(m humanMove) rps.Action {
	return rps.Action{
		P1: strings.ToLower(strings.TrimSpace(m.token)),
		P2: rps.ChoiceToken(m.computer),
	}
}

// Play a best-of game between the human reading from in and a random computer player
func Play(in io.Reader, out io.Writer, bestOf int, seed uint64) error {
	env := types.NewEnvironment[rps.State, rps.Action](rps.NewState(bestOf), rps.Engine)
	computer := types.NewRandomPolicy[rps.PlayerView](len(rps.AllMoves), seed)
	observer := types.WithAction[rps.State, rps.PlayerView, rps.Action](rps.PlayerObserver)

	fmt.Fprintf(out, "You're playing best of %d\n", env.State().BestOf)

	scanner := bufio.NewScanner(in)
	var observed types.ObservedOutcomeWithAction[rps.PlayerView, rps.Action]
	for step := 0; ; step++ {
		fmt.Fprint(out, "ACTION> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}
		choice, _ := computer.NextAction(step, env.State().View(1))
		action := humanTransformer(humanMove{token: scanner.Text(), computer: choice})

		outcome, err := env.Step(action)
		if errors.Is(err, types.ErrInvalidAction) {
			fmt.Fprintf(out, "%s\n\n", err)
			continue
		} else if err != nil {
			return err
		}
		observed = observer(outcome, action, types.ObserveContext{Agent: 0, Step: step})
		info := observed.Info.(rps.Info)

		fmt.Fprintf(out, "You threw %s\n", observed.Action.P1)
		fmt.Fprintf(out, "The computer threw %s\n", observed.Action.P2)
		switch info.RoundWinner {
		case rps.Player1:
			fmt.Fprintln(out, "You win!")
		case rps.Player2:
			fmt.Fprintln(out, "You lose!")
		default:
			fmt.Fprintln(out, "It's a draw!")
		}
		fmt.Fprintf(out, "You: %d | Computer: %d\n\n", observed.Observation.Own, observed.Observation.Opponent)

		if observed.Done {
			break
		}
	}

	switch observed.Info.(rps.Info).Winner {
	case rps.Player1:
		fmt.Fprintln(out, "You win it all!")
	case rps.Player2:
		fmt.Fprintln(out, "You lost it all!")
	default:
		fmt.Fprintln(out, "It's a draw!")
	}
	return nil
}

func PlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play rock-paper-scissors against the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Play(cmd.InOrStdin(), cmd.OutOrStdout(), bestOf, seed)
		},
	}
}
