package evaluator

import (
	"errors"
	"testing"

	"github.com/chaincalc/chaincalc/pkg/mathutil"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   float64
	}{
		{"chained operations", []string{"10", "add", "5", "multiply", "2", "subtract", "3"}, 27},
		{"symbol aliases", []string{"10", "+", "5", "x", "2", "-", "3"}, 27},
		{"short aliases", []string{"100", "div", "4", "mul", "2"}, 50},
		{"single value", []string{"42"}, 42},
		{"division", []string{"100", "/", "4"}, 25},
		{"no precedence", []string{"2", "+", "3", "x", "4"}, 20},
		{"uppercase operation", []string{"1", "ADD", "2"}, 3},
		{"negative operand", []string{"5", "add", "-7"}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := Evaluate(tt.tokens)
			if err != nil {
				t.Fatalf("Evaluate(%v) returned error: %v", tt.tokens, err)
			}

			if got := calc.Value(); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"no tokens", nil},
		{"bad initial value", []string{"abc"}},
		{"missing operand", []string{"1", "add"}},
		{"unknown operation", []string{"1", "pow", "2"}},
		{"bad operand", []string{"1", "add", "xyz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.tokens); err == nil {
				t.Errorf("Evaluate(%v) expected error, got none", tt.tokens)
			}
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate([]string{"1", "/", "0"})
	if err == nil {
		t.Fatal("expected error, got none")
	}

	if !errors.Is(err, mathutil.ErrDivisionByZero) {
		t.Errorf("error = %v, want ErrDivisionByZero", err)
	}
}

func TestApplyStopsAtFailingStep(t *testing.T) {
	initial, steps, err := Parse([]string{"10", "add", "5", "div", "0", "add", "100"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if initial != 10 {
		t.Fatalf("initial = %v, want 10", initial)
	}

	calc, err := Evaluate([]string{"10", "add", "5"})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	if err := Apply(calc, steps[1:]); err == nil {
		t.Fatal("expected division error, got none")
	}

	// The value before the failing step is preserved; the trailing add
	// never runs.
	if got := calc.Value(); got != 15 {
		t.Errorf("value after failed chain = %v, want 15", got)
	}
}

func TestParseSteps(t *testing.T) {
	_, steps, err := Parse([]string{"1", "add", "2", "x", "3"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []Step{
		{Op: OpAdd, Operand: 2},
		{Op: OpMultiply, Operand: 3},
	}

	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}

	for i, step := range steps {
		if step != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, step, want[i])
		}
	}
}
