// Package main provides the CLI interface for the chaincalc calculator.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/chaincalc/chaincalc/internal/config"
	"github.com/chaincalc/chaincalc/internal/evaluator"
	"github.com/chaincalc/chaincalc/internal/server"
)

var (
	configFile string
	verbose    bool
	precision  int
	format     string
)

var rootCmd = &cobra.Command{
	Use:   "chaincalc",
	Short: "A chainable floating-point calculator",
	Long: `chaincalc applies a sequence of arithmetic operations to a starting
value, strictly left to right with no operator precedence.

Examples:
  chaincalc eval 10 add 5 multiply 2 subtract 3
  chaincalc eval 1 / 3 --precision 5
  chaincalc serve`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

var evalCmd = &cobra.Command{
	Use:   "eval VALUE [OP VALUE]...",
	Short: "Evaluate an operation chain",
	Long: `Evaluate a chain of the form VALUE OP VALUE OP VALUE.

Operations: add (+), subtract/sub (-), multiply/mul (x, *), divide/div (/).
Steps apply left to right; a near-zero divisor aborts the chain and leaves
no partial result. Negative operands must follow a -- separator so they
are not parsed as flags.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over MCP stdio",
	Long: `Expose the arithmetic operations as Model Context Protocol tools on
standard input/output, for use by MCP-capable clients.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		srv := server.New(cfg)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("MCP server failed: %w", err)
		}

		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("chaincalc version 0.1.0")
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chaincalc configuration",
	Long:  "Commands for managing chaincalc configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new chaincalc configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		filename := ".chaincalc.yaml"

		// Check if file already exists
		if _, err := os.Stat(filename); err == nil && !force {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", filename)
		}

		cfg := config.Default()
		if err := cfg.Save(filename); err != nil {
			return err
		}

		fmt.Printf("✅ Created %s\n", filename)
		fmt.Printf("💡 Edit the file to customize precision and output format\n")

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	RunE: func(_ *cobra.Command, args []string) error {
		configFile := ""
		if len(args) > 0 {
			configFile = args[0]
		}

		_, err := config.Load(configFile)
		if err != nil {
			fmt.Printf("❌ Configuration validation failed: %v\n", err)

			return err
		}

		fmt.Printf("✅ Configuration is valid\n")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .chaincalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	// Config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	// Config init flags
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")

	// Eval flags, shared by the root command
	for _, cmd := range []*cobra.Command{rootCmd, evalCmd} {
		cmd.Flags().IntVar(&precision, "precision", 2, "fractional digits in the rendered result")
		cmd.Flags().StringVar(&format, "format", "", "output format (text, json)")
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Verbose = true
	}

	return cfg, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}

	if format != "" {
		cfg.Format = format
	}

	calc, err := evaluator.Evaluate(args)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if cfg.Verbose {
		log.Printf("Evaluated %d tokens", len(args))
	}

	if cfg.Format == "json" {
		result := struct {
			Value     float64 `json:"value"`
			Formatted string  `json:"formatted"`
		}{
			Value:     calc.Value(),
			Formatted: calc.StringFixed(cfg.Precision),
		}

		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}

		fmt.Println(string(data))

		return nil
	}

	fmt.Println(calc.StringFixed(cfg.Precision))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
