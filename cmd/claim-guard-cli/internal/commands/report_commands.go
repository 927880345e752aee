package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/analysis"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/extraction"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/report"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ReportCommandHandler encapsulates logic for rendering policy reports via CLI.
type ReportCommandHandler struct {
	extractor policies.DocumentExtractor
	predictor policies.RiskPredictor
	analyzer  policies.Analyzer
	renderer  policies.ReportRenderer
	logger    logger.Logger
}

// NewReportCommandHandler initializes and returns a ReportCommandHandler instance with
// configured logger, analysis pipeline and PDF renderer.
func NewReportCommandHandler() (*ReportCommandHandler, error) {
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

	renderer, err := report.NewPdfReportRenderer(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}

	return &ReportCommandHandler{
		extractor: extractor,
		predictor: predictor,
		analyzer:  analyzer,
		renderer:  renderer,
		logger:    loggerInstance,
	}, nil
}

// GenerateReportCmd analyzes a policy PDF and renders the analysis report
func (commandHandler *ReportCommandHandler) GenerateReportCmd(cmd *cobra.Command, _ []string) {
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

	reportBytes, err := commandHandler.renderer.Render(policy)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputFilePath == "" {
		outputFilePath = fmt.Sprintf("ClaimGuard_Report_%s.pdf", policy.ID)
	}

	err = os.WriteFile(outputFilePath, reportBytes, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Report saved to ", outputFilePath)
}

// InitReportCommands registers report-related commands
func InitReportCommands(rootCmd *cobra.Command) error {
	handler, err := NewReportCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create report command handler %w", err)
	}

	var generateReportCmd = &cobra.Command{
		Use:   "generate-report",
		Short: "Analyze a policy PDF and render the analysis report as PDF",
		Run:   handler.GenerateReportCmd,
	}
	generateReportCmd.Flags().StringP("input-file", "", "", "Path to the policy PDF")
	generateReportCmd.Flags().StringP("output-file", "", "", "Path to the report PDF output file")
	generateReportCmd.Flags().IntP("age", "", 35, "Age of the insured person")
	generateReportCmd.Flags().StringP("disease", "", "", "Pre-existing disease of the insured person")
	generateReportCmd.Flags().StringP("policy-type", "", policies.PolicyTypeHealth, "Policy type the document is analyzed as")
	rootCmd.AddCommand(generateReportCmd)

	return nil
}
