package types

import "testing"

func TestRandomPolicyDeterministicWithSeed(t *testing.T) {
	p1 := NewRandomPolicy[counter](3, 42)
	p2 := NewRandomPolicy[counter](3, 42)
	for i := 0; i < 50; i++ {
		a1, ok1 := p1.NextAction(i, counter{})
		a2, ok2 := p2.NextAction(i, counter{})
		if !ok1 || !ok2 {
			t.Fatalf("random policy refused to act")
		}
		if a1 != a2 {
			t.Fatalf("same seed produced different choices at step %d", i)
		}
		if a1 < 0 || a1 >= 3 {
			t.Fatalf("choice %d out of range", a1)
		}
	}
	if _, ok := NewRandomPolicy[counter](0, 1).NextAction(0, counter{}); ok {
		t.Errorf("policy without choices should refuse")
	}
}

func TestWeightedPolicy(t *testing.T) {
	p := NewWeightedPolicy[counter]([]float64{0, 1, 0}, 7)
	for i := 0; i < 20; i++ {
		a, ok := p.NextAction(i, counter{})
		if !ok || a != 1 {
			t.Fatalf("expected choice 1, got %d (%v)", a, ok)
		}
	}
	if _, ok := NewWeightedPolicy[counter](nil, 1).NextAction(0, counter{}); ok {
		t.Errorf("policy without weights should refuse")
	}
}

func TestSequencePolicyReset(t *testing.T) {
	p := NewSequencePolicy[counter]("a", "b")
	a, _ := p.NextAction(0, counter{})
	b, _ := p.NextAction(1, counter{})
	if a != "a" || b != "b" {
		t.Errorf("unexpected sequence %s %s", a, b)
	}
	if _, ok := p.NextAction(2, counter{}); ok {
		t.Errorf("exhausted sequence should refuse")
	}
	p.Reset()
	if a, ok := p.NextAction(0, counter{}); !ok || a != "a" {
		t.Errorf("reset should rewind the sequence")
	}
}
