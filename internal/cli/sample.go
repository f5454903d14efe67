package cli

import (
	"fmt"

	"resumecraft/internal/common"
	"resumecraft/internal/export"
	"resumecraft/internal/intake"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Create a populated sample resume document",
	Long: `Create a sample resume document as structured JSON. This is the
document an external resume-parsing service would return for an uploaded
file; use it as a starting point for editing and export.`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

var sampleConfig common.CommandConfig

func init() {
	sampleCmd.Flags().StringVarP(&sampleConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
}

func runSample(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	doc := intake.SampleDocument()
	artifact, err := export.GlobalRegistry.Export(doc, "json")
	if err != nil {
		return fmt.Errorf("failed to create sample document: %w", err)
	}

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleArtifact(artifact, sampleConfig); err != nil {
		return err
	}

	logger.Info("Sample document created", "name", doc.PersonalInfo.FullName)
	return nil
}
