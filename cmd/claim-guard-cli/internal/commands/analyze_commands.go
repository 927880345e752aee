package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/analysis"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/extraction"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AnalyzeCommandHandler encapsulates logic for analyzing policy PDFs via CLI.
type AnalyzeCommandHandler struct {
	extractor policies.DocumentExtractor
	predictor policies.RiskPredictor
	analyzer  policies.Analyzer
	logger    logger.Logger
}

// NewAnalyzeCommandHandler initializes and returns an AnalyzeCommandHandler instance with
// configured logger and analysis pipeline.
func NewAnalyzeCommandHandler() (*AnalyzeCommandHandler, error) {
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

	analyzer, err := analysis.NewAnalyzer(predictor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	return &AnalyzeCommandHandler{
		extractor: extractor,
		predictor: predictor,
		analyzer:  analyzer,
		logger:    loggerInstance,
	}, nil
}

// AnalyzePolicyCmd analyzes a policy PDF and writes the result as JSON
func (commandHandler *AnalyzeCommandHandler) AnalyzePolicyCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	age, err := cmd.Flags().GetInt("age")
	if err != nil {
		commandHandler.logger.Error("invalid age flag ", err)
		return
	}
	disease, err := cmd.Flags().GetString("disease")
	if err != nil {
		commandHandler.logger.Error("invalid disease flag ", err)
		return
	}
	policyType, err := cmd.Flags().GetString("policy-type")
	if err != nil {
		commandHandler.logger.Error("invalid policy-type flag ", err)
		return
	}

	content, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	text, pageCount, err := commandHandler.extractor.Extract(content)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	policy, err := analyzeDocument(commandHandler.predictor, commandHandler.analyzer, inputFilePath, text, pageCount, policies.AnalysisInput{
		Age:        age,
		Disease:    disease,
		PolicyType: policyType,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encoded, err := json.MarshalIndent(policy, "", "  ")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputFilePath == "" {
		fmt.Println(string(encoded))
		return
	}

	err = os.WriteFile(outputFilePath, encoded, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Analysis saved to ", outputFilePath)
}

// InitAnalyzeCommands registers analysis-related commands
func InitAnalyzeCommands(rootCmd *cobra.Command) error {
	handler, err := NewAnalyzeCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create analyze command handler %w", err)
	}

	var analyzePolicyCmd = &cobra.Command{
		Use:   "analyze-policy",
		Short: "Analyze a policy PDF and print the result as JSON",
		Run:   handler.AnalyzePolicyCmd,
	}
	analyzePolicyCmd.Flags().StringP("input-file", "", "", "Path to the policy PDF")
	analyzePolicyCmd.Flags().StringP("output-file", "", "", "Path to the JSON output file (prints to stdout when omitted)")
	analyzePolicyCmd.Flags().IntP("age", "", 35, "Age of the insured person")
	analyzePolicyCmd.Flags().StringP("disease", "", "", "Pre-existing disease of the insured person")
	analyzePolicyCmd.Flags().StringP("policy-type", "", policies.PolicyTypeHealth, "Policy type the document is analyzed as")
	rootCmd.AddCommand(analyzePolicyCmd)

	return nil
}
