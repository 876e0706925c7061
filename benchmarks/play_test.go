package benchmarks

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPlayRejectsInvalidMoves(t *testing.T) {
	out := &bytes.Buffer{}
	// a best of one game ends after its first valid round
	input := "lizard\n" + strings.Repeat("rock\npaper\nscissors\n", 30)
	if err := Play(strings.NewReader(input), out, 1, 11); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	output := out.String()
	if !strings.Contains(output, "You're playing best of 1") {
		t.Errorf("missing greeting in %q", output)
	}
	if !strings.Contains(output, `invalid action: "lizard" is not a valid action`) {
		t.Errorf("invalid move not reported in %q", output)
	}
	if strings.Count(output, "You threw") != 1 {
		t.Errorf("expected a single round to be played: %q", output)
	}
}

func TestPlayEndOfInput(t *testing.T) {
	err := Play(strings.NewReader("rock\n"), &bytes.Buffer{}, 101, 3)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}

func TestPlayCommand(t *testing.T) {
	root := GetRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetIn(strings.NewReader(strings.Repeat("paper\n", 100)))
	root.SetArgs([]string{"play", "--best-of", "3", "--seed", "5"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out.String(), "You're playing best of 3") {
		t.Errorf("unexpected output %q", out.String())
	}
}
