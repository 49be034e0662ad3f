// Package evaluator applies token sequences to a calculator.
//
// Input has the shape VALUE OP VALUE OP VALUE ... and is applied
// strictly left to right. There is no operator precedence and no
// expression grammar; each step feeds the next step's receiver, exactly
// like chained Calculator calls.
package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chaincalc/chaincalc/pkg/calculator"
)

// Op identifies a calculator operation.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Step is one operation together with its right-hand operand.
type Step struct {
	Op      Op
	Operand float64
}

// opAliases maps accepted spellings to operations. "x" is accepted for
// multiplication so chains survive shell globbing.
var opAliases = map[string]Op{
	"add":      OpAdd,
	"+":        OpAdd,
	"sub":      OpSubtract,
	"subtract": OpSubtract,
	"-":        OpSubtract,
	"mul":      OpMultiply,
	"multiply": OpMultiply,
	"x":        OpMultiply,
	"*":        OpMultiply,
	"div":      OpDivide,
	"divide":   OpDivide,
	"/":        OpDivide,
}

// Parse reads a token list and returns the initial value and the steps
// to apply. Operation names are case-insensitive.
func Parse(tokens []string) (float64, []Step, error) {
	if len(tokens) == 0 {
		return 0, nil, fmt.Errorf("no tokens to evaluate")
	}

	initial, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid initial value %q: %w", tokens[0], err)
	}

	rest := tokens[1:]
	if len(rest)%2 != 0 {
		return 0, nil, fmt.Errorf("operation %q is missing an operand", rest[len(rest)-1])
	}

	steps := make([]Step, 0, len(rest)/2)

	for i := 0; i < len(rest); i += 2 {
		op, ok := opAliases[strings.ToLower(rest[i])]
		if !ok {
			return 0, nil, fmt.Errorf("unknown operation %q", rest[i])
		}

		operand, err := strconv.ParseFloat(rest[i+1], 64)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid operand %q: %w", rest[i+1], err)
		}

		steps = append(steps, Step{Op: op, Operand: operand})
	}

	return initial, steps, nil
}

// Apply runs the steps against calc in order. On a division failure the
// calculator keeps the value it had before the failing step.
func Apply(calc *calculator.Calculator, steps []Step) error {
	for _, step := range steps {
		switch step.Op {
		case OpAdd:
			calc.Add(step.Operand)
		case OpSubtract:
			calc.Subtract(step.Operand)
		case OpMultiply:
			calc.Multiply(step.Operand)
		case OpDivide:
			if _, err := calc.Divide(step.Operand); err != nil {
				return fmt.Errorf("divide by %v: %w", step.Operand, err)
			}
		default:
			return fmt.Errorf("unknown operation %q", step.Op)
		}
	}

	return nil
}

// Evaluate parses tokens and applies them to a fresh calculator.
func Evaluate(tokens []string) (*calculator.Calculator, error) {
	initial, steps, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	calc := calculator.NewWithValue(initial)
	if err := Apply(calc, steps); err != nil {
		return nil, err
	}

	return calc, nil
}
