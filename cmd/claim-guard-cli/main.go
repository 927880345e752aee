// Package main is the entry point for the claim-guard-cli application.
// It initializes the root command and registers the analyze, report and
// simulation sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Mahi-sheth/final-ClaimGuard/cmd/claim-guard-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "claim-guard-cli",
		Short: "Insurance policy analysis CLI tool",
		Long: `claim-guard-cli is a command-line tool for analyzing insurance policy PDFs.
It extracts policy terms, scores claim risk, simulates claim payouts against the
document's cost-sharing terms and renders professional analysis reports.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAnalyzeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize analyze commands: %w", err)
	}

	if err := commands.InitReportCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize report commands: %w", err)
	}

	if err := commands.InitSimulateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize simulate commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
