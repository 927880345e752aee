package commands

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/analysis"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/extraction"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SimulateCommandHandler encapsulates logic for simulating claims via CLI.
type SimulateCommandHandler struct {
	extractor policies.DocumentExtractor
	predictor policies.RiskPredictor
	logger    logger.Logger
}

// NewSimulateCommandHandler initializes and returns a SimulateCommandHandler instance with
// configured logger and extraction pipeline.
func NewSimulateCommandHandler() (*SimulateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	extractor, err := extraction.NewPdfExtractor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF extractor: %w", err)
	}

	predictor, err := analysis.NewRiskPredictor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create risk predictor: %w", err)
	}

	return &SimulateCommandHandler{
		extractor: extractor,
		predictor: predictor,
		logger:    loggerInstance,
	}, nil
}

// SimulateClaimCmd extracts the cost-sharing terms from a policy PDF and
// applies them to a hypothetical claim amount
func (commandHandler *SimulateCommandHandler) SimulateClaimCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	claimAmount, err := cmd.Flags().GetFloat64("claim-amount")
	if err != nil {
		commandHandler.logger.Error("invalid claim-amount flag ", err)
		return
	}
	if claimAmount <= 0 {
		claimAmount = policies.DefaultClaimAmount
	}

	content, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	text, _, err := commandHandler.extractor.Extract(content)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	coPay := commandHandler.predictor.ExtractCoPayPercentage(text)
	deductible := commandHandler.predictor.ExtractDeductible(text)

	// The deductible is applied before the co-pay percentage.
	remaining := claimAmount
	deductibleApplied := math.Min(float64(deductible), remaining)
	remaining -= deductibleApplied
	coPayApplied := remaining * float64(coPay) / 100
	remaining -= coPayApplied

	commandHandler.logger.Info("Claim amount: ", claimAmount)
	commandHandler.logger.Info("Deductible applied: ", deductibleApplied)
	commandHandler.logger.Info("Co-pay applied (", coPay, "%): ", math.Round(coPayApplied))
	commandHandler.logger.Info("Insurance pays: ", math.Round(remaining))
	commandHandler.logger.Info("Out of pocket: ", math.Round(claimAmount-remaining))
	commandHandler.logger.Info("Coverage percentage: ", math.Round(remaining/claimAmount*1000)/10, "%")
}

// InitSimulateCommands registers simulation-related commands
func InitSimulateCommands(rootCmd *cobra.Command) error {
	handler, err := NewSimulateCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create simulate command handler %w", err)
	}

	var simulateClaimCmd = &cobra.Command{
		Use:   "simulate-claim",
		Short: "Apply a policy's cost-sharing terms to a hypothetical claim",
		Run:   handler.SimulateClaimCmd,
	}
	simulateClaimCmd.Flags().StringP("input-file", "", "", "Path to the policy PDF")
	simulateClaimCmd.Flags().Float64P("claim-amount", "", policies.DefaultClaimAmount, "Hypothetical claim amount in rupees")
	rootCmd.AddCommand(simulateClaimCmd)

	return nil
}
