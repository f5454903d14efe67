package common

import (
	"fmt"
	"os"
	"path/filepath"

	"resumecraft/internal/errors"
	"resumecraft/internal/export"
	"resumecraft/internal/utils"
)

// CommandConfig holds common output configuration for commands
type CommandConfig struct {
	OutputFile   string
	OutputDir    string
	OutputFormat string
}

// OutputHandler writes exported artifacts to the configured destination
type OutputHandler struct {
	fileProcessor *FileProcessor
	registry      *export.Registry
	logger        *errors.Logger
}

// NewOutputHandler creates a new output handler
func NewOutputHandler(logger *errors.Logger) *OutputHandler {
	return &OutputHandler{
		fileProcessor: NewFileProcessor(logger),
		registry:      export.GlobalRegistry,
		logger:        logger,
	}
}

// HandleArtifact writes an artifact to the output file, the output directory
// under the artifact's default filename, or stdout when neither is set.
func (oh *OutputHandler) HandleArtifact(artifact export.Artifact, config CommandConfig) error {
	switch {
	case config.OutputFile != "":
		if err := oh.fileProcessor.ValidateOutputFile(config.OutputFile); err != nil {
			return err
		}
		if err := oh.fileProcessor.WriteFile(config.OutputFile, artifact.Data); err != nil {
			return err
		}
		oh.logger.Info("Output written successfully",
			"file", config.OutputFile, "format", artifact.Format)

	case config.OutputDir != "":
		if err := utils.ValidateOutputDir(config.OutputDir); err != nil {
			return errors.NewValidationError("INVALID_OUTPUT_DIR",
				fmt.Sprintf("Invalid output directory: %s", config.OutputDir), err)
		}
		target := filepath.Join(config.OutputDir, artifact.Filename)
		if err := oh.fileProcessor.WriteFile(target, artifact.Data); err != nil {
			return err
		}
		oh.logger.Info("Output written successfully",
			"file", target, "format", artifact.Format)

	default:
		// Text formats print; binary ones fall back to the default filename
		if artifact.Format == "json" {
			fmt.Println(string(artifact.Data))
			return nil
		}
		if err := oh.fileProcessor.WriteFile(artifact.Filename, artifact.Data); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%s)\n", artifact.Filename, utils.FormatFileSize(int64(len(artifact.Data))))
	}

	return nil
}

// GetSupportedFormats returns all supported output formats
func (oh *OutputHandler) GetSupportedFormats() []string {
	return oh.registry.SupportedFormats()
}
