package cli

import (
	"fmt"

	"resumecraft/internal/common"
	"resumecraft/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [document-file]",
	Short: "Export a resume document to an output format",
	Long: `Export a resume document to one of the supported output formats.
The command takes the path to a structured resume document (JSON). Use
--format to pick the output format, -o to write to a specific file, or
-d to write into a directory under the format's default filename.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if exportConfig.OutputFormat == "" {
			exportConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(exportConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runExport,
}

var exportConfig common.CommandConfig

func init() {
	exportCmd.Flags().StringVarP(&exportConfig.OutputFile, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVarP(&exportConfig.OutputDir, "dir", "d", "", "Output directory (uses the default filename)")
	exportCmd.Flags().StringVar(&exportConfig.OutputFormat, "format", "", "Output format: json, pdf, or docx")

	// Add completion for format flag
	_ = exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return cfg.App.SupportedFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	doc, err := fileProcessor.LoadDocument(args[0])
	if err != nil {
		return err
	}

	logger.Info("Starting export",
		"document", args[0],
		"format", exportConfig.OutputFormat)

	artifact, err := export.GlobalRegistry.Export(doc, exportConfig.OutputFormat)
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleArtifact(artifact, exportConfig); err != nil {
		return err
	}

	logger.Info("Export completed successfully", "format", artifact.Format)
	return nil
}
