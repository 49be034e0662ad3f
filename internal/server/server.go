// Package server exposes the calculator over the Model Context Protocol.
package server

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/chaincalc/chaincalc/internal/config"
	"github.com/chaincalc/chaincalc/pkg/mathutil"
)

const (
	serverName    = "chaincalc"
	serverVersion = "0.1.0"
)

// CalcServer represents the chaincalc MCP server.
type CalcServer struct {
	mcpServer *server.MCPServer
	config    *config.Config
}

// New creates a new chaincalc MCP server.
func New(cfg *config.Config) *CalcServer {
	return &CalcServer{
		mcpServer: server.NewMCPServer(serverName, serverVersion),
		config:    cfg,
	}
}

// Start registers the tools and serves MCP over stdio until the client
// disconnects.
func (s *CalcServer) Start() error {
	if s.config.Verbose {
		log.Printf("Starting chaincalc MCP server")
	}

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	for _, tool := range []*binaryTool{
		newBinaryTool("calc_add", "Add two numbers", total(mathutil.Add)),
		newBinaryTool("calc_subtract", "Subtract the second number from the first", total(mathutil.Subtract)),
		newBinaryTool("calc_multiply", "Multiply two numbers", total(mathutil.Multiply)),
		newBinaryTool("calc_divide", "Divide the first number by the second; near-zero divisors are rejected", mathutil.Divide),
	} {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}

	chain := newChainTool()
	s.mcpServer.AddTool(chain.GetTool(), chain.Handle)
}
