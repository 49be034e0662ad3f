package server

import (
	"context"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chaincalc/chaincalc/internal/evaluator"
)

// total adapts an arithmetic function that cannot fail to the common
// tool function shape.
func total(fn func(a, b float64) float64) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) {
		return fn(a, b), nil
	}
}

// formatResult renders a tool result value with the shortest exact
// representation.
func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// binaryTool wraps one two-operand arithmetic function as an MCP tool.
type binaryTool struct {
	name string
	desc string
	fn   func(a, b float64) (float64, error)
}

func newBinaryTool(name, desc string, fn func(a, b float64) (float64, error)) *binaryTool {
	return &binaryTool{
		name: name,
		desc: desc,
		fn:   fn,
	}
}

// GetTool returns the MCP tool definition.
func (t *binaryTool) GetTool() mcp.Tool {
	return mcp.NewTool(t.name,
		mcp.WithDescription(t.desc),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
	)
}

// Handle processes the tool request.
func (t *binaryTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := req.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := t.fn(a, b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatResult(result)), nil
}

// chainTool applies a whitespace-separated operation chain to a fresh
// calculator, left to right.
type chainTool struct{}

func newChainTool() *chainTool {
	return &chainTool{}
}

// GetTool returns the MCP tool definition.
func (t *chainTool) GetTool() mcp.Tool {
	return mcp.NewTool("calc_chain",
		mcp.WithDescription("Apply a chain of operations to a starting value, left to right with no precedence"),
		mcp.WithString("expression", mcp.Required(),
			mcp.Description(`Chain of the form "VALUE OP VALUE OP VALUE", e.g. "10 add 5 multiply 2 subtract 3"`)),
	)
}

// Handle processes the tool request.
func (t *chainTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression, err := req.RequireString("expression")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calc, err := evaluator.Evaluate(strings.Fields(expression))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatResult(calc.Value())), nil
}
